// SPDX-License-Identifier: MIT

// Package matrix - Square storage & safe accessors.
//
// Purpose:
//   - Own an n×n grid of elements exclusively; every copy is deep.
//   - Keep the public surface panic-free: At/Set return errors.
//   - Render the canonical literal form "[[a,b][c,d]]".
//
// Complexity quicksheet:
//   - New: O(n²); At/Set: O(1) plus element clone; Clone/Transpose/String: O(n²) cells.

package matrix

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/symatrix/literal"
	"github.com/katalvlaran/symatrix/term"
)

// ---------- error context tags ----------

const (
	ctxAt       = "At"
	ctxSet      = "Set"
	ctxNew      = "New"
	ctxParse    = "Parse"
	ctxFromGrid = "FromGrid"
)

// squareErrorf wraps err with a uniform Square context and callsite indices.
func squareErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Square.%s(%d,%d): %w", method, row, col, err)
}

// Square is an n×n matrix over elements of one Kind.
//   - n == 0 is the explicit empty matrix, distinct from a nil *Square.
//   - cells holds n rows of n elements; no two matrices share an element.
type Square[E any] struct {
	n     int
	cells [][]E
	kind  Kind[E]
}

// Compile-time assertion for fmt.Stringer conformance.
var (
	_ fmt.Stringer = (*Concrete)(nil)
	_ fmt.Stringer = (*Symbolic)(nil)
)

// New returns an n×n matrix of kind k filled with k.Zero().
// n == 0 yields the empty matrix.
//
// Errors: ErrInvalidDimensions for n < 0.
// Complexity: O(n²).
func New[E any](k Kind[E], n int) (*Square[E], error) {
	if n < 0 {
		return nil, matrixErrorf(ctxNew, ErrInvalidDimensions)
	}

	return &Square[E]{n: n, cells: zeroGrid(k, n), kind: k}, nil
}

// Parse validates s against k's grammar and converts it cell by cell.
//
// Errors: ErrMalformedLiteral (the *literal.SyntaxError is kept in the chain
// for errors.As).
// Complexity: O(len(s)).
func Parse[E any](k Kind[E], s string) (*Square[E], error) {
	if err := literal.Validate(s, k.Variant()); err != nil {
		return nil, matrixErrorf(ctxParse, err)
	}
	toks := literal.Tokens(s)

	cells := make([][]E, len(toks))
	for i, row := range toks {
		cells[i] = make([]E, len(row))
		for j, tok := range row {
			cells[i][j] = k.FromToken(tok)
		}
	}

	return &Square[E]{n: len(cells), cells: cells, kind: k}, nil
}

// FromGrid builds a matrix from a pre-built grid. The grid is deep-copied, so
// the caller keeps ownership of its own elements.
//
// Errors:
//   - ErrMalformedLiteral when g is ragged or not square.
//   - ErrInvalidElement when k rejects a cell (nil Term).
//
// Complexity: O(n²).
func FromGrid[E any](k Kind[E], g [][]E) (*Square[E], error) {
	if err := ValidateSquareGrid(g); err != nil {
		return nil, matrixErrorf(ctxFromGrid, err)
	}

	n := len(g)
	cells := make([][]E, n)
	for i := 0; i < n; i++ {
		cells[i] = make([]E, n)
		for j := 0; j < n; j++ {
			if !k.Valid(g[i][j]) {
				return nil, matrixErrorf(ctxFromGrid, squareErrorf(ctxFromGrid, i, j, ErrInvalidElement))
			}
			cells[i][j] = k.Clone(g[i][j])
		}
	}

	return &Square[E]{n: n, cells: cells, kind: k}, nil
}

// zeroGrid allocates an n×n grid of k.Zero().
func zeroGrid[E any](k Kind[E], n int) [][]E {
	g := make([][]E, n)
	for i := range g {
		g[i] = make([]E, n)
		for j := range g[i] {
			g[i][j] = k.Zero()
		}
	}

	return g
}

// ---------- Concrete / Symbolic constructors ----------

// NewConcrete returns the empty integer matrix.
func NewConcrete() *Concrete { return &Concrete{kind: IntKind{}} }

// NewSymbolic returns the empty symbolic matrix.
func NewSymbolic() *Symbolic { return &Symbolic{kind: TermKind{}} }

// NewConcreteSize returns an n×n integer matrix of zeros.
func NewConcreteSize(n int) (*Concrete, error) { return New[term.Int](IntKind{}, n) }

// NewSymbolicSize returns an n×n symbolic matrix of zeros.
func NewSymbolicSize(n int) (*Symbolic, error) { return New[term.Term](TermKind{}, n) }

// ParseConcrete parses an integer-only literal such as "[[1,2][3,4]]".
func ParseConcrete(s string) (*Concrete, error) { return Parse[term.Int](IntKind{}, s) }

// ParseSymbolic parses a mixed literal such as "[[x,2][3,y]]".
func ParseSymbolic(s string) (*Symbolic, error) { return Parse[term.Term](TermKind{}, s) }

// ConcreteFromGrid builds an integer matrix from rows of Int leaves.
func ConcreteFromGrid(g [][]term.Int) (*Concrete, error) { return FromGrid[term.Int](IntKind{}, g) }

// SymbolicFromGrid builds a symbolic matrix from rows of Terms.
func SymbolicFromGrid(g [][]term.Term) (*Symbolic, error) { return FromGrid[term.Term](TermKind{}, g) }

// MustParseConcrete is ParseConcrete for literals known to be valid; it panics otherwise.
func MustParseConcrete(s string) *Concrete {
	m, err := ParseConcrete(s)
	if err != nil {
		panic(err)
	}

	return m
}

// MustParseSymbolic is ParseSymbolic for literals known to be valid; it panics otherwise.
func MustParseSymbolic(s string) *Symbolic {
	m, err := ParseSymbolic(s)
	if err != nil {
		panic(err)
	}

	return m
}

// Lift promotes an integer matrix into a symbolic one with the same cells.
// A nil input yields nil.
func Lift(c *Concrete) *Symbolic {
	if c == nil {
		return nil
	}
	cells := make([][]term.Term, c.n)
	for i := 0; i < c.n; i++ {
		cells[i] = make([]term.Term, c.n)
		for j := 0; j < c.n; j++ {
			cells[i][j] = c.cells[i][j]
		}
	}

	return &Symbolic{n: c.n, cells: cells, kind: TermKind{}}
}

// ---------- accessors ----------

// Size returns n. Complexity: O(1).
func (m *Square[E]) Size() int { return m.n }

// IsEmpty reports whether m is the 0×0 matrix.
func (m *Square[E]) IsEmpty() bool { return m.n == 0 }

// At returns a copy of the element at (row, col) or ErrOutOfRange.
func (m *Square[E]) At(row, col int) (E, error) {
	if err := ValidateIndex(m.n, row, col); err != nil {
		var zero E
		return zero, squareErrorf(ctxAt, row, col, err)
	}

	return m.elemKind().Clone(m.cells[row][col]), nil
}

// Set stores a copy of e at (row, col).
//
// Errors: ErrOutOfRange for bad indices, ErrInvalidElement when the kind
// rejects e.
func (m *Square[E]) Set(row, col int, e E) error {
	if err := ValidateIndex(m.n, row, col); err != nil {
		return squareErrorf(ctxSet, row, col, err)
	}
	if !m.elemKind().Valid(e) {
		return squareErrorf(ctxSet, row, col, ErrInvalidElement)
	}
	m.cells[row][col] = m.elemKind().Clone(e)

	return nil
}

// Rows returns a deep copy of the grid in row-major order.
func (m *Square[E]) Rows() [][]E {
	out := make([][]E, m.n)
	for i := 0; i < m.n; i++ {
		out[i] = make([]E, m.n)
		for j := 0; j < m.n; j++ {
			out[i][j] = m.elemKind().Clone(m.cells[i][j])
		}
	}

	return out
}

// Clone returns a deep copy; mutations of either matrix never reach the other.
// Complexity: O(n²) element clones.
func (m *Square[E]) Clone() *Square[E] {
	return &Square[E]{n: m.n, cells: m.Rows(), kind: m.elemKind()}
}

// Transpose returns a new matrix with cell (i,j) = clone of m(j,i).
// The receiver is not modified.
func (m *Square[E]) Transpose() *Square[E] {
	cells := make([][]E, m.n)
	for i := 0; i < m.n; i++ {
		cells[i] = make([]E, m.n)
		for j := 0; j < m.n; j++ {
			cells[i][j] = m.elemKind().Clone(m.cells[j][i])
		}
	}

	return &Square[E]{n: m.n, cells: cells, kind: m.elemKind()}
}

// String renders the canonical literal: "[" + "[c00,c01]" + ... + "]".
// The empty matrix renders as "[]".
func (m *Square[E]) String() string {
	if m == nil {
		return "<nil>"
	}
	var b strings.Builder
	b.WriteByte('[')
	for i := 0; i < m.n; i++ {
		b.WriteByte('[')
		for j := 0; j < m.n; j++ {
			if j > 0 {
				b.WriteByte(',')
			}
			b.WriteString(m.elemKind().Format(m.cells[i][j]))
		}
		b.WriteByte(']')
	}
	b.WriteByte(']')

	return b.String()
}

// Equal reports whether m and o have the same size and identical renderings.
// Two nil matrices are equal.
func (m *Square[E]) Equal(o *Square[E]) bool {
	if m == nil || o == nil {
		return m == nil && o == nil
	}

	return m.n == o.n && m.String() == o.String()
}

// elemKind returns the matrix kind. A zero-value Concrete or Symbolic has no
// kind set and falls back to IntKind / TermKind, so `var m matrix.Concrete`
// is a usable empty matrix.
func (m *Square[E]) elemKind() Kind[E] {
	if m.kind != nil {
		return m.kind
	}
	if k, ok := any(IntKind{}).(Kind[E]); ok {
		return k
	}
	if k, ok := any(TermKind{}).(Kind[E]); ok {
		return k
	}
	panic(fmt.Sprintf("matrix: no Kind for %T", m))
}

// fill replaces the grid with n×n zeros (used by CheckOperands broadcasting).
func (m *Square[E]) fill(n int) {
	m.n = n
	m.cells = zeroGrid(m.elemKind(), n)
}
