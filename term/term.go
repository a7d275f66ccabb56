// SPDX-License-Identifier: MIT

package term

import (
	"fmt"
	"strconv"
)

// Term is a node of an expression tree: Int, Var or *Composite.
type Term interface {
	// String renders the canonical form: digits for Int, the letter for Var,
	// "(" + left + symbol + right + ")" for Composite.
	String() string

	// Clone returns a deep copy that shares nothing with the receiver.
	Clone() Term

	// Evaluate computes the integer value of the tree under v.
	// Errors: ErrUnboundVariable (wrapped) for a variable missing from v.
	Evaluate(v Valuation) (int, error)

	isTerm()
}

// Compile-time conformance.
var (
	_ Term = Int{}
	_ Term = Var{}
	_ Term = (*Composite)(nil)
)

// Equal reports whether a and b have identical renderings.
// Two nil terms are equal; a nil and a non-nil term are not.
func Equal(a, b Term) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	return a.String() == b.String()
}

// Check walks t and reports the first structural defect: a nil term or nil
// *Composite (ErrNilTerm), a Var whose name is not a letter
// (ErrInvalidVariableName) or a Composite with an unknown op (ErrUnknownOp).
// Zero values of Var and Composite are invalid.
func Check(t Term) error {
	switch t := t.(type) {
	case Int:
		return nil
	case Var:
		if !IsVarName(t.name) {
			return fmt.Errorf("variable %q: %w", t.name, ErrInvalidVariableName)
		}
		return nil
	case *Composite:
		if t == nil || t.left == nil || t.right == nil {
			return ErrNilTerm
		}
		if !t.op.Valid() {
			return ErrUnknownOp
		}
		if err := Check(t.left); err != nil {
			return err
		}
		return Check(t.right)
	default:
		return ErrNilTerm
	}
}

// Valid reports whether Check(t) passes.
func Valid(t Term) bool { return Check(t) == nil }

// ---------- Int ----------

// Int is an integer leaf.
type Int struct {
	Value int
}

// NewInt returns an Int leaf holding v.
func NewInt(v int) Int { return Int{Value: v} }

func (i Int) isTerm() {}

// String renders the value in decimal with a leading '-' when negative.
func (i Int) String() string { return strconv.Itoa(i.Value) }

// Clone returns a copy of i.
func (i Int) Clone() Term { return i }

// Evaluate returns the stored value; it never fails.
func (i Int) Evaluate(Valuation) (int, error) { return i.Value, nil }

// Add returns i + o.
func (i Int) Add(o Int) Int { return Int{Value: i.Value + o.Value} }

// Sub returns i - o.
func (i Int) Sub(o Int) Int { return Int{Value: i.Value - o.Value} }

// Mul returns i * o.
func (i Int) Mul(o Int) Int { return Int{Value: i.Value * o.Value} }

// Apply returns i op o using Op's integer semantics.
func (i Int) Apply(op Op, o Int) Int { return Int{Value: op.Apply(i.Value, o.Value)} }

// ---------- Var ----------

// Var is a variable leaf named by a single ASCII letter.
// The zero value has no name and is not produced by this package; build
// variables with NewVar.
type Var struct {
	name byte
}

// IsVarName reports whether c is an ASCII letter.
func IsVarName(c byte) bool {
	return (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')
}

// NewVar returns a Var named c or ErrInvalidVariableName.
func NewVar(c byte) (Var, error) {
	if !IsVarName(c) {
		return Var{}, fmt.Errorf("NewVar(%q): %w", c, ErrInvalidVariableName)
	}

	return Var{name: c}, nil
}

// MustVar is NewVar for literals known to be valid. It panics otherwise.
func MustVar(c byte) Var {
	v, err := NewVar(c)
	if err != nil {
		panic(err)
	}

	return v
}

func (v Var) isTerm() {}

// Name returns the variable letter.
func (v Var) Name() byte { return v.name }

// SetName renames the variable. On error the receiver is unchanged.
func (v *Var) SetName(c byte) error {
	if !IsVarName(c) {
		return fmt.Errorf("Var.SetName(%q): %w", c, ErrInvalidVariableName)
	}
	v.name = c

	return nil
}

// String returns the single-letter name.
func (v Var) String() string { return string(rune(v.name)) }

// Clone returns a copy of v.
func (v Var) Clone() Term { return v }

// Evaluate looks the name up in val exactly once.
func (v Var) Evaluate(val Valuation) (int, error) {
	if val != nil {
		if x, ok := val.Lookup(v.name); ok {
			return x, nil
		}
	}

	return 0, fmt.Errorf("variable %q: %w", v.name, ErrUnboundVariable)
}
