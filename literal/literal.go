// SPDX-License-Identifier: MIT

package literal

import (
	"strings"
	"unicode"
)

// Validate checks s against the literal grammar for variant v.
// Checks run in this order and the first failure wins:
//
//  1. s opens with "[[".
//  2. cells are separated by ',' and a row ends with ']'; each cell must be
//     accepted by v.
//  3. every row is as wide as the first one.
//  4. a row is followed by '[' (next row) or the final ']'.
//  5. the row count equals the width.
//  6. only whitespace follows the final ']'.
//
// Complexity: O(len(s)), no allocations on success.
func Validate(s string, v Variant) error {
	if v != Integer && v != Mixed {
		return syntaxErr(0, reasonBadVariant)
	}
	if len(s) == 0 || s[0] != '[' {
		return syntaxErr(0, reasonOpen)
	}
	if len(s) < 2 || s[1] != '[' {
		return syntaxErr(1, reasonRowOpen)
	}

	p := 1 // at the '[' of the current row
	width, rows := -1, 0
	for {
		p++ // consume row '['
		cells := 0
		for {
			start := p
			for p < len(s) && s[p] != ',' && s[p] != ']' {
				p++
			}
			if tok := s[start:p]; !v.Accepts(tok) {
				return syntaxErr(start, reasonCell+" "+quoteToken(tok))
			}
			if p >= len(s) {
				return syntaxErr(p, reasonUnclosed)
			}
			cells++
			if s[p] == ']' {
				p++
				break
			}
			p++ // consume ','
		}

		if width == -1 {
			width = cells
		} else if cells != width {
			return syntaxErr(p-1, reasonWidth)
		}
		rows++

		if p >= len(s) {
			return syntaxErr(p, reasonMissing)
		}
		if s[p] == '[' {
			continue
		}
		if s[p] != ']' {
			return syntaxErr(p, reasonRowSep)
		}
		p++ // consume final ']'
		break
	}

	if rows != width {
		return syntaxErr(p-1, reasonNotSquare)
	}
	if i := strings.IndexFunc(s[p:], isNotSpace); i >= 0 {
		return syntaxErr(p+i, reasonTrailing)
	}

	return nil
}

// Tokens splits a literal that already passed Validate into its row-major
// cell tokens. The result for unvalidated input is unspecified.
func Tokens(s string) [][]string {
	s = strings.TrimRightFunc(s, unicode.IsSpace)
	inner := s[2 : len(s)-2] // drop "[[" and "]]"
	rows := strings.Split(inner, "][")

	out := make([][]string, len(rows))
	for i, row := range rows {
		out[i] = strings.Split(row, ",")
	}

	return out
}

// Parse validates s and returns its token grid.
func Parse(s string, v Variant) ([][]string, error) {
	if err := Validate(s, v); err != nil {
		return nil, err
	}

	return Tokens(s), nil
}

// Format renders a token grid in canonical literal form: "[" + "[a,b]"... + "]".
// An empty grid renders as "[]".
func Format(rows [][]string) string {
	var b strings.Builder
	b.WriteByte('[')
	for _, row := range rows {
		b.WriteByte('[')
		b.WriteString(strings.Join(row, ","))
		b.WriteByte(']')
	}
	b.WriteByte(']')

	return b.String()
}

func isNotSpace(r rune) bool { return !unicode.IsSpace(r) }
