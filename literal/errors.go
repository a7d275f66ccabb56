// SPDX-License-Identifier: MIT

package literal

import (
	"errors"
	"fmt"
)

// ErrMalformed is the sentinel behind every grammar violation.
var ErrMalformed = errors.New("literal: malformed matrix literal")

// Reasons reported in SyntaxError. Kept as constants for grep-ability.
const (
	reasonOpen       = "expected '['"
	reasonRowOpen    = "expected '[' opening the first row"
	reasonCell       = "invalid cell"
	reasonUnclosed   = "unterminated row"
	reasonWidth      = "row width differs from the first row"
	reasonRowSep     = "expected '[' or closing ']' after row"
	reasonMissing    = "missing closing ']'"
	reasonNotSquare  = "row count differs from row width"
	reasonTrailing   = "unexpected characters after closing ']'"
	reasonBadVariant = "unknown grammar variant"
)

// SyntaxError describes where and why a literal was rejected.
type SyntaxError struct {
	Offset int    // byte offset of the offending position
	Reason string // short description
}

// Error implements error.
func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s at offset %d: %s", ErrMalformed, e.Offset, e.Reason)
}

// Unwrap lets errors.Is(err, ErrMalformed) match.
func (e *SyntaxError) Unwrap() error { return ErrMalformed }

func syntaxErr(off int, reason string) error {
	return &SyntaxError{Offset: off, Reason: reason}
}

// quoteToken quotes a token for error messages, truncating long input.
func quoteToken(tok string) string {
	const maxShown = 16
	if len(tok) > maxShown {
		tok = tok[:maxShown] + "..."
	}

	return fmt.Sprintf("%q", tok)
}
