// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/symatrix/matrix"
	"github.com/katalvlaran/symatrix/term"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestConcreteArithmetic covers the integer reference results.
func TestConcreteArithmetic(t *testing.T) {
	tests := []struct {
		name string
		op   term.Op
		a, b string
		want string
	}{
		{"add", term.OpAdd, "[[1,2][3,4]]", "[[4,3][2,1]]", "[[5,5][5,5]]"},
		{"sub", term.OpSub, "[[1,2][3,4]]", "[[4,3][2,1]]", "[[-3,-1][1,3]]"},
		{"mul2", term.OpMul, "[[1,2][3,4]]", "[[4,3][2,1]]", "[[8,5][20,13]]"},
		{"mul3", term.OpMul, "[[1,2,3][4,5,6][7,8,9]]", "[[9,8,7][6,5,4][3,2,1]]", "[[30,24,18][84,69,54][138,114,90]]"},
		{"mul1", term.OpMul, "[[3]]", "[[-4]]", "[[-12]]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, b := mustConcrete(t, tt.a), mustConcrete(t, tt.b)
			got, err := matrix.ApplyOp(tt.op, a, b)
			require.NoError(t, err)
			requireString(t, tt.want, got)
			requireString(t, tt.a, a) // operands untouched
			requireString(t, tt.b, b)
		})
	}
}

func TestCompoundAssign(t *testing.T) {
	m := mustConcrete(t, "[[1,2][3,4]]")
	require.NoError(t, m.AddAssign(mustConcrete(t, "[[1,1][1,1]]")))
	requireString(t, "[[2,3][4,5]]", m)
	require.NoError(t, m.SubAssign(mustConcrete(t, "[[2,2][2,2]]")))
	requireString(t, "[[0,1][2,3]]", m)
	require.NoError(t, m.MulAssign(mustConcrete(t, "[[1,0][0,1]]")))
	requireString(t, "[[0,1][2,3]]", m)

	// Self-aliasing works on a private copy of the operand.
	require.NoError(t, m.AddAssign(m))
	requireString(t, "[[0,2][4,6]]", m)
	require.NoError(t, m.MulAssign(m))
	requireString(t, "[[8,12][24,44]]", m)
}

func TestZeroBroadcast(t *testing.T) {
	m := mustConcrete(t, "[[1,2][3,4]]")

	empty := matrix.NewConcrete()
	sum, err := matrix.Add(empty, m)
	require.NoError(t, err)
	requireString(t, "[[1,2][3,4]]", sum)
	assert.True(t, empty.IsEmpty(), "non-mutating Add must not grow its operand")

	sum, err = matrix.Add(m, matrix.NewConcrete())
	require.NoError(t, err)
	requireString(t, "[[1,2][3,4]]", sum)

	prod, err := matrix.Mul(matrix.NewConcrete(), m)
	require.NoError(t, err)
	requireString(t, "[[0,0][0,0]]", prod)

	diff, err := matrix.Sub(matrix.NewConcrete(), m)
	require.NoError(t, err)
	requireString(t, "[[-1,-2][-3,-4]]", diff)

	_, err = matrix.Add(matrix.NewConcrete(), matrix.NewConcrete())
	assert.ErrorIs(t, err, matrix.ErrEmptyOperands)
	_, err = matrix.Mul(matrix.NewSymbolic(), matrix.NewSymbolic())
	assert.ErrorIs(t, err, matrix.ErrEmptyOperands)
}

// TestCompoundAssign_EmptyReceiverGrows checks that += on an empty receiver
// adopts the operand's size.
func TestCompoundAssign_EmptyReceiverGrows(t *testing.T) {
	s := matrix.NewSymbolic()
	require.NoError(t, s.AddAssign(mustSymbolic(t, "[[x]]")))
	requireString(t, "[[(0+x)]]", s)
}

func TestDimensionMismatch_LeavesReceiver(t *testing.T) {
	m := mustConcrete(t, "[[1,2][3,4]]")
	other := mustConcrete(t, "[[1]]")
	for _, f := range []func(*matrix.Concrete) error{m.AddAssign, m.SubAssign, m.MulAssign} {
		assert.ErrorIs(t, f(other), matrix.ErrDimensionMismatch)
		requireString(t, "[[1,2][3,4]]", m)
	}
	requireString(t, "[[1]]", other)
}

func TestCheckOperands(t *testing.T) {
	a, b := matrix.NewConcrete(), mustConcrete(t, "[[1,2][3,4]]")
	require.NoError(t, matrix.CheckOperands(a, b))
	requireString(t, "[[0,0][0,0]]", a)

	a, b = mustConcrete(t, "[[7]]"), matrix.NewConcrete()
	require.NoError(t, matrix.CheckOperands(a, b))
	requireString(t, "[[0]]", b)

	require.NoError(t, matrix.CheckOperands(mustConcrete(t, "[[1]]"), mustConcrete(t, "[[2]]")))
	assert.ErrorIs(t, matrix.CheckOperands(matrix.NewConcrete(), matrix.NewConcrete()), matrix.ErrEmptyOperands)
	assert.ErrorIs(t, matrix.CheckOperands(mustConcrete(t, "[[1]]"), mustConcrete(t, "[[1,2][3,4]]")), matrix.ErrDimensionMismatch)
	assert.ErrorIs(t, matrix.CheckOperands(nil, mustConcrete(t, "[[1]]")), matrix.ErrNilMatrix)
}

func TestNilOperands(t *testing.T) {
	m := mustConcrete(t, "[[1]]")
	_, err := matrix.Add(nil, m)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = matrix.Mul(m, nil)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
	assert.ErrorIs(t, m.SubAssign(nil), matrix.ErrNilMatrix)
	_, err = matrix.Evaluate(nil, xyab)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestSymbolicAddSub(t *testing.T) {
	one, two := mustSymbolic(t, "[[x,y][a,b]]"), mustSymbolic(t, "[[1,2][3,4]]")

	sum, err := matrix.Add(one, two)
	require.NoError(t, err)
	requireString(t, "[[(x+1),(y+2)][(a+3),(b+4)]]", sum)
	got, err := matrix.Evaluate(sum, xyab)
	require.NoError(t, err)
	requireString(t, "[[2,4][6,8]]", got)

	diff, err := matrix.Sub(one, two)
	require.NoError(t, err)
	requireString(t, "[[(x-1),(y-2)][(a-3),(b-4)]]", diff)
	got, err = matrix.Evaluate(diff, xyab)
	require.NoError(t, err)
	requireString(t, "[[0,0][0,0]]", got)

	// Expressions keep growing; nothing is simplified.
	require.NoError(t, sum.AddAssign(two))
	requireString(t, "[[((x+1)+1),((y+2)+2)][((a+3)+3),((b+4)+4)]]", sum)
}

func TestSymbolicMul(t *testing.T) {
	one, two := mustSymbolic(t, "[[x,y][a,b]]"), mustSymbolic(t, "[[1,2][3,4]]")

	prod, err := matrix.Mul(one, two)
	require.NoError(t, err)
	requireString(t, "[[((x*1)+(y*3)),((x*2)+(y*4))][((a*1)+(b*3)),((a*2)+(b*4))]]", prod)

	got, err := matrix.Evaluate(prod, xyab)
	require.NoError(t, err)
	requireString(t, "[[7,10][15,22]]", got)
}

// TestSymbolicMul_LeftFold pins the (((p0+p1)+p2)) tree shape.
func TestSymbolicMul_LeftFold(t *testing.T) {
	m := mustSymbolic(t, "[[a,b,c][d,e,f][g,h,i]]")
	id := mustSymbolic(t, "[[1,0,0][0,1,0][0,0,1]]")
	prod, err := matrix.Mul(m, id)
	require.NoError(t, err)

	cell, err := prod.At(0, 0)
	require.NoError(t, err)
	assert.Equal(t, "(((a*1)+(b*0))+(c*0))", cell.String())

	cell, err = prod.At(2, 1)
	require.NoError(t, err)
	assert.Equal(t, "(((g*0)+(h*1))+(i*0))", cell.String())

	vals := term.Values{}
	for c := byte('a'); c <= 'i'; c++ {
		require.NoError(t, vals.Set(c, int(c-'a')+1))
	}
	got, err := matrix.Evaluate(prod, vals)
	require.NoError(t, err)
	requireString(t, "[[1,2,3][4,5,6][7,8,9]]", got)
}

func TestSymbolicMul_SingleCell(t *testing.T) {
	prod, err := matrix.Mul(mustSymbolic(t, "[[x]]"), mustSymbolic(t, "[[2]]"))
	require.NoError(t, err)
	requireString(t, "[[(x*2)]]", prod)
}

// TestSymbolicMatchesConcrete checks both kinds agree after evaluation.
func TestSymbolicMatchesConcrete(t *testing.T) {
	a, b := "[[1,-2,3][4,5,-6][7,8,9]]", "[[2,0,1][-1,3,2][0,4,-5]]"
	for _, op := range []term.Op{term.OpAdd, term.OpSub, term.OpMul} {
		c, err := matrix.ApplyOp(op, mustConcrete(t, a), mustConcrete(t, b))
		require.NoError(t, err)
		s, err := matrix.ApplyOp(op, mustSymbolic(t, a), mustSymbolic(t, b))
		require.NoError(t, err)
		ev, err := matrix.Evaluate(s, nil)
		require.NoError(t, err)
		assert.True(t, c.Equal(ev), "op %s: %s vs %s", op, c, ev)
	}
}

func TestEvaluate_Unbound(t *testing.T) {
	m := mustSymbolic(t, "[[x,q][r,y]]")
	_, err := matrix.Evaluate(m, xyab)
	require.ErrorIs(t, err, matrix.ErrUnboundVariable)
	assert.Contains(t, err.Error(), "(0,1)", "row-major scan reports q before r")

	sum, err := matrix.Add(m, mustSymbolic(t, "[[1,1][1,1]]"))
	require.NoError(t, err)
	_, err = matrix.Evaluate(sum, xyab)
	assert.ErrorIs(t, err, term.ErrUnboundVariable)
}

// countingValuation records every Lookup.
type countingValuation struct {
	vs    term.Values
	calls map[byte]int
}

func (c *countingValuation) Lookup(name byte) (int, bool) {
	c.calls[name]++
	return c.vs.Lookup(name)
}

// TestEvaluate_LooksUpEachVariableOnce checks one Lookup per Var leaf visited.
func TestEvaluate_LooksUpEachVariableOnce(t *testing.T) {
	p, err := matrix.Mul(mustSymbolic(t, "[[x,y][a,b]]"), mustSymbolic(t, "[[1,0][0,1]]"))
	require.NoError(t, err)

	v := &countingValuation{vs: xyab, calls: map[byte]int{}}
	got, err := matrix.Evaluate(p, v)
	require.NoError(t, err)
	requireString(t, "[[1,2][3,4]]", got)
	assert.Equal(t, map[byte]int{'x': 2, 'y': 2, 'a': 2, 'b': 2}, v.calls)

	// A failing scan stops at the first unbound leaf.
	v = &countingValuation{vs: term.Values{}, calls: map[byte]int{}}
	_, err = matrix.Evaluate(p, v)
	require.ErrorIs(t, err, matrix.ErrUnboundVariable)
	assert.Equal(t, map[byte]int{'x': 1}, v.calls)
}

func TestEvaluate_Empty(t *testing.T) {
	got, err := matrix.Evaluate(matrix.NewSymbolic(), nil)
	require.NoError(t, err)
	assert.True(t, got.IsEmpty())
}

func TestEvaluateString(t *testing.T) {
	got, err := matrix.EvaluateString("[[x,2][3,y]]", xyab)
	require.NoError(t, err)
	requireString(t, "[[1,2][3,2]]", got)

	_, err = matrix.EvaluateString("[[x,2]]", xyab)
	assert.ErrorIs(t, err, matrix.ErrMalformedLiteral)
}

func TestApplyOp_Unknown(t *testing.T) {
	_, err := matrix.ApplyOp(term.Op('/'), mustConcrete(t, "[[1]]"), mustConcrete(t, "[[1]]"))
	assert.ErrorIs(t, err, term.ErrUnknownOp)
}

func TestFacades(t *testing.T) {
	a, b := mustConcrete(t, "[[1,2][3,4]]"), mustConcrete(t, "[[4,3][2,1]]")

	s, err := matrix.Sum(a, b)
	require.NoError(t, err)
	requireString(t, "[[5,5][5,5]]", s)

	d, err := matrix.Diff(a, b)
	require.NoError(t, err)
	requireString(t, "[[-3,-1][1,3]]", d)

	p, err := matrix.Product(a, b)
	require.NoError(t, err)
	requireString(t, "[[8,5][20,13]]", p)

	tr, err := matrix.T(a)
	require.NoError(t, err)
	requireString(t, "[[1,3][2,4]]", tr)

	z, err := matrix.ZerosLike(a)
	require.NoError(t, err)
	requireString(t, "[[0,0][0,0]]", z)
	_, err = matrix.ZerosLike[term.Int](nil)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)

	assert.True(t, matrix.CloneMatrix(a).Equal(a))
	assert.Nil(t, matrix.CloneMatrix[term.Term](nil))
}
