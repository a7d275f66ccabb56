// SPDX-License-Identifier: MIT
// Package matrix - public API facades.
//
// Purpose:
//   - Provide thin, intention-revealing entry points next to the canonical
//     kernels (Add/Sub/Mul/Transpose/Evaluate).
//   - Avoid logic duplication; each facade delegates to one kernel.
//
// Determinism & Policy:
//   - Facades never change loop orders, the CheckOperands policy or the
//     symbolic tree shapes produced by the kernels.

package matrix

import "github.com/katalvlaran/symatrix/term"

// Sum is an alias for Add: element-wise a + b.
func Sum[E any](a, b *Square[E]) (*Square[E], error) { return Add(a, b) }

// Diff is an alias for Sub: element-wise a − b.
func Diff[E any](a, b *Square[E]) (*Square[E], error) { return Sub(a, b) }

// Product is an alias for Mul: matrix product a × b.
func Product[E any](a, b *Square[E]) (*Square[E], error) { return Mul(a, b) }

// T is an alias for Transpose.
func T[E any](m *Square[E]) (*Square[E], error) { return Transpose(m) }

// CloneMatrix returns a deep copy of m, or nil for a nil input.
func CloneMatrix[E any](m *Square[E]) *Square[E] {
	if m == nil {
		return nil
	}

	return m.Clone()
}

// ZerosLike returns a zero matrix of m's kind and size.
// Errors: ErrNilMatrix.
func ZerosLike[E any](m *Square[E]) (*Square[E], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("ZerosLike", err)
	}

	return New(m.elemKind(), m.n)
}

// ApplyOp dispatches op to Add, Sub or Mul.
// Errors: term.ErrUnknownOp for any other operator, plus the kernel errors.
func ApplyOp[E any](op term.Op, a, b *Square[E]) (*Square[E], error) {
	switch op {
	case term.OpAdd:
		return Add(a, b)
	case term.OpSub:
		return Sub(a, b)
	case term.OpMul:
		return Mul(a, b)
	default:
		return nil, matrixErrorf("ApplyOp("+op.String()+")", term.ErrUnknownOp)
	}
}

// EvaluateString parses a symbolic literal and evaluates it under v.
func EvaluateString(s string, v term.Valuation) (*Concrete, error) {
	m, err := ParseSymbolic(s)
	if err != nil {
		return nil, err
	}

	return Evaluate(m, v)
}
