// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. Every operation returns one of these (possibly wrapped with an
// operation tag via matrixErrorf) and tests match them with errors.Is.
// No operation panics on user-triggered conditions; Must* helpers are the
// documented exception for literals known to be valid.

package matrix

import (
	"errors"

	"github.com/katalvlaran/symatrix/literal"
	"github.com/katalvlaran/symatrix/term"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ...". Wrapping adds "<Op>: " tags
// in front (e.g. "Add: CheckOperands: matrix: dimension mismatch"); the
// sentinel stays reachable through errors.Is.
//
// ERROR PRIORITY:
// nil operand -> empty operands -> dimension mismatch -> element evaluation.

var (
	// ErrInvalidDimensions is returned when a negative size is requested.
	ErrInvalidDimensions = errors.New("matrix: size must be >= 0")

	// ErrOutOfRange indicates that a row or column index is outside [0, n).
	// Public indexers (At/Set) return this instead of panicking.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch is returned by CheckOperands when both operands are
	// non-empty but have different sizes.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrEmptyOperands is returned by CheckOperands when both operands are 0×0.
	ErrEmptyOperands = errors.New("matrix: both operands are empty")

	// ErrNilMatrix indicates that a nil *Square (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrInvalidElement is returned when a cell value is rejected by the
	// element kind (a nil Term in a symbolic matrix).
	ErrInvalidElement = errors.New("matrix: invalid element")
)

// ALIASES to the sentinels owned by the lower layers, so callers of this
// package can match every failure kind without importing literal or term.

// ErrMalformedLiteral is returned by every constructor that validates a literal
// or a pre-built grid and finds it is not a well-formed square matrix.
var ErrMalformedLiteral = literal.ErrMalformed

// ErrUnboundVariable is returned by Evaluate when a variable has no value.
var ErrUnboundVariable = term.ErrUnboundVariable

// ErrInvalidVariableName is returned when a variable is named by a non-letter.
var ErrInvalidVariableName = term.ErrInvalidVariableName
