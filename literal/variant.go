// SPDX-License-Identifier: MIT

package literal

import (
	"strconv"

	"github.com/katalvlaran/symatrix/term"
)

// Variant selects which cell tokens a literal may contain.
type Variant int

const (
	// Integer accepts only integer cells.
	Integer Variant = iota
	// Mixed accepts integer cells and single-letter variable cells.
	Mixed
)

// String implements fmt.Stringer.
func (v Variant) String() string {
	switch v {
	case Integer:
		return "integer"
	case Mixed:
		return "mixed"
	default:
		return "Variant(" + strconv.Itoa(int(v)) + ")"
	}
}

// Accepts reports whether tok is a well-formed cell for v.
func (v Variant) Accepts(tok string) bool {
	switch v {
	case Integer:
		return IsInteger(tok)
	case Mixed:
		return IsInteger(tok) || IsLetter(tok)
	default:
		return false
	}
}

// IsInteger reports whether tok is an optional '-' followed by one or more
// ASCII digits whose value fits in int.
func IsInteger(tok string) bool {
	digits := tok
	if len(digits) > 0 && digits[0] == '-' {
		digits = digits[1:]
	}
	if digits == "" {
		return false
	}
	for i := 0; i < len(digits); i++ {
		if digits[i] < '0' || digits[i] > '9' {
			return false
		}
	}
	_, err := strconv.Atoi(tok) // range check

	return err == nil
}

// IsLetter reports whether tok is exactly one ASCII letter.
func IsLetter(tok string) bool {
	return len(tok) == 1 && term.IsVarName(tok[0])
}
