// Package symatrix is a small algebra of square matrices whose cells are
// integers, single-letter variables, or expression trees built from them.
//
// Two flavours of matrix share one engine:
//
//	Concrete  cells are ints; + - * compute immediately.
//	Symbolic  cells are terms; + - * build trees such as ((x*1)+(1*y)),
//	          which Evaluate later reduces under a variable valuation.
//
// Subpackages:
//
//	term/          Int, Var and Composite terms, operators, valuations
//	literal/       the [[a,b][c,d]] literal grammar, validation and tokens
//	matrix/        generic Square[E] with Add/Sub/Mul/Transpose/Evaluate
//	internal/calc  the stack calculator behind cmd/symatrix
//	cmd/symatrix   command-line calculator (REPL and one-shot exec)
//
// Quick example:
//
//	a := matrix.MustParseSymbolic("[[x,1][2,y]]")
//	b := matrix.MustParseSymbolic("[[1,0][0,1]]")
//	p, _ := matrix.Mul(a, b)
//	r, _ := matrix.Evaluate(p, term.Values{'x': 3, 'y': 4})
//	fmt.Println(r) // [[3,1][2,4]]
//
// Runnable walk-throughs live under examples/.
//
//	go get github.com/katalvlaran/symatrix
package symatrix
