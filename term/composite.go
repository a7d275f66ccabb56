// SPDX-License-Identifier: MIT

package term

import "strings"

// Composite is a binary node: left op right.
// Fields are unexported so the operands stay exclusively owned and the
// operator is fixed at construction.
type Composite struct {
	left  Term
	right Term
	op    Op
}

// NewComposite builds (left op right) from deep copies of both operands.
//
// Errors:
//   - ErrNilTerm when either operand is nil or holds a nil *Composite.
//   - ErrInvalidVariableName when an operand contains a nameless Var.
//   - ErrUnknownOp when op, or an operand's op, is not OpAdd, OpSub or OpMul.
func NewComposite(left, right Term, op Op) (*Composite, error) {
	if err := Check(left); err != nil {
		return nil, termErrorf("NewComposite", err)
	}
	if err := Check(right); err != nil {
		return nil, termErrorf("NewComposite", err)
	}
	if !op.Valid() {
		return nil, termErrorf("NewComposite", ErrUnknownOp)
	}

	return &Composite{left: left.Clone(), right: right.Clone(), op: op}, nil
}

// MustComposite is NewComposite that panics on error.
func MustComposite(left, right Term, op Op) *Composite {
	c, err := NewComposite(left, right, op)
	if err != nil {
		panic(err)
	}

	return c
}

// combine wraps already-owned operands without copying them.
// Callers must hand over terms nobody else references.
func combine(left, right Term, op Op) *Composite {
	return &Composite{left: left, right: right, op: op}
}

func (c *Composite) isTerm() {}

// Op returns the node operator.
func (c *Composite) Op() Op { return c.op }

// Left returns a copy of the left operand.
func (c *Composite) Left() Term { return c.left.Clone() }

// Right returns a copy of the right operand.
func (c *Composite) Right() Term { return c.right.Clone() }

// Clone copies the whole subtree.
func (c *Composite) Clone() Term {
	return combine(c.left.Clone(), c.right.Clone(), c.op)
}

// String renders "(" + left + symbol + right + ")".
func (c *Composite) String() string {
	var b strings.Builder
	c.write(&b)

	return b.String()
}

// write renders into b so deep trees build one buffer instead of one string
// per level.
func (c *Composite) write(b *strings.Builder) {
	b.WriteByte('(')
	writeTerm(b, c.left)
	b.WriteByte(c.op.Symbol())
	writeTerm(b, c.right)
	b.WriteByte(')')
}

func writeTerm(b *strings.Builder, t Term) {
	if c, ok := t.(*Composite); ok {
		c.write(b)
		return
	}
	b.WriteString(t.String())
}

// Evaluate evaluates left, then right, then applies the operator.
// A failure on the left operand is returned without touching the right one.
func (c *Composite) Evaluate(v Valuation) (int, error) {
	l, err := c.left.Evaluate(v)
	if err != nil {
		return 0, err
	}
	r, err := c.right.Evaluate(v)
	if err != nil {
		return 0, err
	}

	return c.op.Apply(l, r), nil
}

// Combine returns (left op right), cloning both operands.
// It is the symbolic counterpart of Int.Apply and never fails for a valid op.
func Combine(left, right Term, op Op) Term {
	if !op.Valid() {
		panic("term: Combine on invalid Op " + op.String())
	}

	return combine(left.Clone(), right.Clone(), op)
}
