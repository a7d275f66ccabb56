// SPDX-License-Identifier: MIT

package term

import (
	"fmt"
	"sort"
)

// Valuation maps variable letters to integers. Evaluate only reads from it.
type Valuation interface {
	// Lookup returns the value bound to name and whether a binding exists.
	Lookup(name byte) (int, bool)
}

// Values is the map-backed Valuation used by the calculator and tests.
type Values map[byte]int

var _ Valuation = Values(nil)

// Lookup implements Valuation. A nil Values has no bindings.
func (vs Values) Lookup(name byte) (int, bool) {
	x, ok := vs[name]
	return x, ok
}

// Set binds name to x, rejecting non-letter names.
func (vs Values) Set(name byte, x int) error {
	if !IsVarName(name) {
		return fmt.Errorf("Values.Set(%q): %w", name, ErrInvalidVariableName)
	}
	vs[name] = x

	return nil
}

// Names returns the bound letters in ascending byte order.
func (vs Values) Names() []byte {
	out := make([]byte, 0, len(vs))
	for c := range vs {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}
