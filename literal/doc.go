// SPDX-License-Identifier: MIT

// Package literal validates and tokenizes the textual square-matrix literal.
//
// Grammar (no whitespace anywhere except after the final bracket):
//
//	matrix := "[" row+ "]"
//	row    := "[" cell ("," cell)* "]"
//	cell   := integer | letter        (letter only in the Mixed variant)
//
// The number of cells per row (the width) must be the same for every row and
// must equal the number of rows.
//
// Validation and conversion are separate steps: Validate reports the first
// violation as a *SyntaxError (errors.Is(err, ErrMalformed) holds), and
// Tokens splits an already validated literal into its row-major token grid.
// Parse runs both.
package literal
