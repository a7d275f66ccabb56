// SPDX-License-Identifier: MIT

package term

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidVariableName is returned when a Var is built or renamed with a
	// byte outside A–Z / a–z.
	ErrInvalidVariableName = errors.New("term: variable name must be an ASCII letter")

	// ErrUnboundVariable is returned by Evaluate when a variable has no entry in
	// the supplied Valuation.
	ErrUnboundVariable = errors.New("term: unbound variable")

	// ErrUnknownOp is returned when a Composite is built with an Op that is not
	// one of OpAdd, OpSub, OpMul.
	ErrUnknownOp = errors.New("term: unknown operator")

	// ErrNilTerm is returned when a nil Term is passed where an operand is required.
	ErrNilTerm = errors.New("term: nil term")
)

// termErrorf tags err with the failing operation, preserving it for errors.Is.
func termErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
