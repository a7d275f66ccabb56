// SPDX-License-Identifier: MIT

package term

// Op is a binary arithmetic operator. Its value is the display symbol, so the
// symbol and the arithmetic it selects cannot drift apart.
type Op byte

const (
	OpAdd Op = '+'
	OpSub Op = '-'
	OpMul Op = '*'
)

// Valid reports whether op is one of the supported operators.
func (op Op) Valid() bool {
	switch op {
	case OpAdd, OpSub, OpMul:
		return true
	default:
		return false
	}
}

// Symbol returns the character used when rendering a Composite.
func (op Op) Symbol() byte { return byte(op) }

// String implements fmt.Stringer.
func (op Op) String() string { return string(rune(op)) }

// Apply computes a op b with wraparound semantics.
// Apply panics on an invalid Op; callers go through NewComposite or ParseOp,
// which reject unknown operators first.
func (op Op) Apply(a, b int) int {
	switch op {
	case OpAdd:
		return a + b
	case OpSub:
		return a - b
	case OpMul:
		return a * b
	default:
		panic("term: Apply on invalid Op " + op.String())
	}
}

// ParseOp maps "+", "-" or "*" to its Op.
func ParseOp(s string) (Op, error) {
	if len(s) == 1 {
		if op := Op(s[0]); op.Valid() {
			return op, nil
		}
	}

	return 0, termErrorf("ParseOp("+s+")", ErrUnknownOp)
}
