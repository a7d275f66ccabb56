// SPDX-License-Identifier: MIT

// Package matrix: element kinds.
// This file defines the capability set an element family must provide for the
// generic engine (Kind), the two kinds shipped with the package, and the
// Concrete / Symbolic aliases built on them.
//
// The two kinds differ only in Combine:
//   - IntKind computes the result right away (a new Int holding a op b).
//   - TermKind builds a Composite node that owns clones of both operands.
//
// Everything else (CheckOperands, elementwise loops, the transpose-based
// product, serialization) is written once against Kind.

package matrix

import (
	"strconv"

	"github.com/katalvlaran/symatrix/literal"
	"github.com/katalvlaran/symatrix/term"
)

// Kind is the capability set of one element family.
type Kind[E any] interface {
	// Variant is the literal grammar accepted by Parse for this kind.
	Variant() literal.Variant

	// Zero returns the additive identity used to fill new or broadcast cells.
	Zero() E

	// FromToken converts a cell token that already passed Variant().Accepts.
	FromToken(tok string) E

	// Clone returns an independent copy of e.
	Clone(e E) E

	// Format renders e in canonical literal form.
	Format(e E) string

	// Combine returns a op b without mutating either operand.
	Combine(op term.Op, a, b E) E

	// Valid reports whether e may be stored in a cell.
	Valid(e E) bool
}

// IntKind is the integer-only element family: cells are term.Int.
type IntKind struct{}

// TermKind is the symbolic element family: cells are any term.Term.
type TermKind struct{}

// Compile-time conformance.
var (
	_ Kind[term.Int]  = IntKind{}
	_ Kind[term.Term] = TermKind{}
)

// Concrete is a square matrix whose cells are statically integer leaves.
type Concrete = Square[term.Int]

// Symbolic is a square matrix whose cells may be any Term variant.
type Symbolic = Square[term.Term]

// ---------- IntKind ----------

// Variant returns literal.Integer: only integer tokens are accepted.
func (IntKind) Variant() literal.Variant { return literal.Integer }

// Zero returns Int{0}.
func (IntKind) Zero() term.Int { return term.Int{} }

// Clone returns e; Int is a plain value.
func (IntKind) Clone(e term.Int) term.Int { return e }

// Format renders e in decimal.
func (IntKind) Format(e term.Int) string { return e.String() }

// Valid always reports true: every int is a legal cell.
func (IntKind) Valid(term.Int) bool { return true }

// FromToken parses a validated integer token.
func (IntKind) FromToken(tok string) term.Int {
	v, _ := strconv.Atoi(tok) // validated by literal.IsInteger

	return term.NewInt(v)
}

// Combine computes a op b (wraparound).
func (IntKind) Combine(op term.Op, a, b term.Int) term.Int { return a.Apply(op, b) }

// ---------- TermKind ----------

// Variant returns literal.Mixed: integer or single-letter tokens.
func (TermKind) Variant() literal.Variant { return literal.Mixed }

// Zero returns the Int leaf 0.
func (TermKind) Zero() term.Term { return term.Int{} }

// Clone deep-copies e. e must be valid.
func (TermKind) Clone(e term.Term) term.Term { return e.Clone() }

// Format renders e in canonical form.
func (TermKind) Format(e term.Term) string { return e.String() }

// Valid rejects nil terms, nil or zero composites and nameless variables,
// anywhere in the tree.
func (TermKind) Valid(e term.Term) bool { return term.Valid(e) }

// FromToken turns a single-letter token into a Var and anything else into an
// Int. Composite cells never come from literals.
func (TermKind) FromToken(tok string) term.Term {
	if literal.IsLetter(tok) {
		return term.MustVar(tok[0])
	}
	v, _ := strconv.Atoi(tok) // validated by literal.IsInteger

	return term.NewInt(v)
}

// Combine builds the Composite (a op b) from clones of a and b.
func (TermKind) Combine(op term.Op, a, b term.Term) term.Term { return term.Combine(a, b, op) }
