// Package matrix implements n×n matrices whose cells are integers or symbolic
// expression trees.
//
// The engine is written once over Square[E] and a Kind[E] strategy:
//
//   - Concrete (Square[term.Int], IntKind) computes results immediately.
//   - Symbolic (Square[term.Term], TermKind) builds Composite terms instead,
//     e.g. [[x]] + [[1]] is [[(x+1)]].
//
// Matrices are created from the literal form "[[a,b][c,d]]" (ParseConcrete,
// ParseSymbolic), from a pre-built grid (ConcreteFromGrid, SymbolicFromGrid)
// or by size (NewConcreteSize, NewSymbolicSize). The 0×0 matrix is a real
// value: in any binary operation it stands in for a zero matrix of the other
// operand's size (CheckOperands).
//
// Evaluate turns a Symbolic matrix into a Concrete one given a term.Valuation.
//
// Equality (Equal) compares canonical renderings, so it is structural, not
// algebraic.
//
// The package is single-threaded by design: no locks, and every matrix owns
// its cells exclusively.
package matrix
