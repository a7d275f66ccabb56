// SPDX-License-Identifier: MIT
// Package matrix provides the square-matrix algebra shared by every element
// kind: the CheckOperands policy, element-wise addition and subtraction, the
// transpose-based product and symbolic evaluation.
//
// Purpose:
//   - Write each algorithm once against Kind; IntKind computes values while
//     TermKind grows expression trees.
//   - Keep compound forms (AddAssign, SubAssign, MulAssign) all-or-nothing: the
//     operand is copied and checked before the receiver is touched.
//
// Determinism:
//   - Fixed i→j (→k) loop orders; symbolic sums fold left in k order, so the
//     rendered trees are reproducible.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/symatrix/term"
)

// Operation name constants for unified error wrapping.
const (
	opAdd       = "Add"
	opSub       = "Sub"
	opMul       = "Mul"
	opTranspose = "Transpose"
	opEvaluate  = "Evaluate"
	opCheck     = "CheckOperands"
)

// matrixErrorf wraps err with an operation tag, preserving it via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// CheckOperands is the size policy run before every binary operation.
//
// Behavior:
//   - both a and b empty          → ErrEmptyOperands.
//   - exactly one of them empty   → that one is replaced in place by a zero
//     matrix of the other's size.
//   - both non-empty, sizes differ → ErrDimensionMismatch.
//   - otherwise                   → no-op.
//
// Neither matrix is modified when an error is returned.
// Complexity: O(1), or O(n²) when broadcasting.
func CheckOperands[E any](a, b *Square[E]) error {
	if err := ValidateBinaryNotNil(a, b); err != nil {
		return matrixErrorf(opCheck, err)
	}
	switch {
	case a.n == 0 && b.n == 0:
		return matrixErrorf(opCheck, ErrEmptyOperands)
	case a.n == 0:
		a.fill(b.n)
	case b.n == 0:
		b.fill(a.n)
	case a.n != b.n:
		return matrixErrorf(opCheck, fmt.Errorf("%d×%d vs %d×%d: %w", a.n, a.n, b.n, b.n, ErrDimensionMismatch))
	}

	return nil
}

// AddAssign sets m = m + o cell by cell.
// Integer cells are summed; symbolic cells become (m_ij+o_ij) composites.
// An empty side is treated as zeros of the other's size (see CheckOperands).
func (m *Square[E]) AddAssign(o *Square[E]) error { return m.elementwise(o, term.OpAdd, opAdd) }

// SubAssign sets m = m - o cell by cell; symbolic cells become (m_ij-o_ij).
func (m *Square[E]) SubAssign(o *Square[E]) error { return m.elementwise(o, term.OpSub, opSub) }

// elementwise is the shared kernel of AddAssign/SubAssign.
//
// Implementation:
//   - Stage 1: take a private copy of o (o may alias m) and run CheckOperands.
//   - Stage 2: replace every cell with Combine(op, m_ij, o_ij) in i→j order.
//
// Complexity: O(n²) Combine calls.
func (m *Square[E]) elementwise(o *Square[E], op term.Op, tag string) error {
	if err := ValidateBinaryNotNil(m, o); err != nil {
		return matrixErrorf(tag, err)
	}
	rhs := o.Clone()
	if err := CheckOperands(m, rhs); err != nil {
		return matrixErrorf(tag, err)
	}

	k := m.elemKind()
	for i := 0; i < m.n; i++ {
		for j := 0; j < m.n; j++ {
			m.cells[i][j] = k.Combine(op, m.cells[i][j], rhs.cells[i][j])
		}
	}

	return nil
}

// MulAssign sets m = m × o (standard matrix product).
//
// Implementation:
//   - Stage 1: copy o, run CheckOperands, transpose the copy so both factors
//     are walked row-wise.
//   - Stage 2: for each (i,j) build the products p_k = m_ik * oᵀ_jk and fold
//     them left: (((p0+p1)+p2)+...). With n == 1 the cell is p0.
//   - Stage 3: swap the new grid in.
//
// For IntKind the fold is the ordinary running sum. For TermKind it fixes the
// tree shape, which matters because symbolic equality compares renderings.
//
// Complexity: O(n³) Combine calls.
func (m *Square[E]) MulAssign(o *Square[E]) error {
	if err := ValidateBinaryNotNil(m, o); err != nil {
		return matrixErrorf(opMul, err)
	}
	rhs := o.Clone()
	if err := CheckOperands(m, rhs); err != nil {
		return matrixErrorf(opMul, err)
	}
	bt := rhs.Transpose()

	k := m.elemKind()
	n := m.n
	out := make([][]E, n)
	products := make([]E, n)
	for i := 0; i < n; i++ {
		out[i] = make([]E, n)
		for j := 0; j < n; j++ {
			for l := 0; l < n; l++ {
				products[l] = k.Combine(term.OpMul, m.cells[i][l], bt.cells[j][l])
			}
			out[i][j] = foldLeft(k, term.OpAdd, products)
		}
	}
	m.cells = out

	return nil
}

// foldLeft combines xs left to right under op. xs must be non-empty.
func foldLeft[E any](k Kind[E], op term.Op, xs []E) E {
	acc := xs[0]
	for _, x := range xs[1:] {
		acc = k.Combine(op, acc, x)
	}

	return acc
}

// Add returns a + b without modifying either operand.
func Add[E any](a, b *Square[E]) (*Square[E], error) {
	return binary(a, b, (*Square[E]).AddAssign, opAdd)
}

// Sub returns a - b without modifying either operand.
func Sub[E any](a, b *Square[E]) (*Square[E], error) {
	return binary(a, b, (*Square[E]).SubAssign, opSub)
}

// Mul returns a × b without modifying either operand.
func Mul[E any](a, b *Square[E]) (*Square[E], error) {
	return binary(a, b, (*Square[E]).MulAssign, opMul)
}

// binary runs a compound operator on a clone of a.
func binary[E any](a, b *Square[E], assign func(*Square[E], *Square[E]) error, tag string) (*Square[E], error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(tag, err)
	}
	res := a.Clone()
	if err := assign(res, b); err != nil {
		return nil, err
	}

	return res, nil
}

// Transpose returns mᵀ as a new matrix.
// Errors: ErrNilMatrix.
func Transpose[E any](m *Square[E]) (*Square[E], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	return m.Transpose(), nil
}

// Evaluate resolves every cell of s under v and returns the integer matrix.
// Cells are visited in row-major order; the first unbound variable aborts
// with ErrUnboundVariable and no partial result is returned.
// v is only read.
//
// Complexity: O(total tree size).
func Evaluate(s *Symbolic, v term.Valuation) (*Concrete, error) {
	if err := ValidateNotNil(s); err != nil {
		return nil, matrixErrorf(opEvaluate, err)
	}

	grid := make([][]term.Int, s.n)
	for i := 0; i < s.n; i++ {
		grid[i] = make([]term.Int, s.n)
		for j := 0; j < s.n; j++ {
			x, err := s.cells[i][j].Evaluate(v)
			if err != nil {
				return nil, matrixErrorf(opEvaluate, squareErrorf(ctxAt, i, j, err))
			}
			grid[i][j] = term.NewInt(x)
		}
	}

	return ConcreteFromGrid(grid)
}
