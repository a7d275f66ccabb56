// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single source of truth for the shape checks used by the
//    constructors and kernels.
//  - Return sentinel errors tagged with the validator name so call sites can
//    add their own operation tag on top.
//
// Note:
//  - Validators are pure and never mutate their inputs.
//  - CheckOperands (impl_linear_algebra.go) is the one policy that does mutate:
//    it broadcasts an empty operand into a zero matrix.

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Returns ErrNilMatrix if m == nil. Complexity: O(1).
func ValidateNotNil[E any](m *Square[E]) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateBinaryNotNil checks a, then b, for nil.
func ValidateBinaryNotNil[E any](a, b *Square[E]) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateBinaryNotNil", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateBinaryNotNil", err)
	}

	return nil
}

// ValidateSquareGrid checks that g has n rows of exactly n cells each.
// An empty grid (no rows) is the legal 0×0 matrix.
//
// Errors: ErrMalformedLiteral for a ragged or non-square grid.
// Complexity: O(n).
func ValidateSquareGrid[E any](g [][]E) error {
	n := len(g)
	for i, row := range g {
		if len(row) != n {
			return validatorErrorf("ValidateSquareGrid",
				fmt.Errorf("row %d has %d cells, want %d: %w", i, len(row), n, ErrMalformedLiteral))
		}
	}

	return nil
}

// ValidateIndex checks 0 ≤ i,j < n.
// Errors: ErrOutOfRange. Complexity: O(1).
func ValidateIndex(n, i, j int) error {
	if i < 0 || i >= n || j < 0 || j >= n {
		return validatorErrorf("ValidateIndex", ErrOutOfRange)
	}

	return nil
}
