// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers.

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/symatrix/matrix"
	"github.com/katalvlaran/symatrix/term"
	"github.com/stretchr/testify/require"
)

// mustConcrete parses an integer literal or fails the test.
func mustConcrete(t *testing.T, s string) *matrix.Concrete {
	t.Helper()
	m, err := matrix.ParseConcrete(s)
	require.NoError(t, err, "ParseConcrete(%q)", s)

	return m
}

// mustSymbolic parses a mixed literal or fails the test.
func mustSymbolic(t *testing.T, s string) *matrix.Symbolic {
	t.Helper()
	m, err := matrix.ParseSymbolic(s)
	require.NoError(t, err, "ParseSymbolic(%q)", s)

	return m
}

// requireString asserts the canonical rendering of m.
func requireString[E any](t *testing.T, want string, m *matrix.Square[E]) {
	t.Helper()
	require.NotNil(t, m)
	require.Equal(t, want, m.String())
}

// xyab is the valuation used by the symbolic scenarios.
var xyab = term.Values{'x': 1, 'y': 2, 'a': 3, 'b': 4}
