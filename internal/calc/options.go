// SPDX-License-Identifier: MIT

package calc

import (
	"io"
	"log/slog"

	"github.com/katalvlaran/symatrix/term"
)

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the session logger. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.log = l
		}
	}
}

// WithValues seeds the valuation. The map is copied.
func WithValues(vs term.Values) Option {
	return func(s *Session) {
		for c, x := range vs {
			s.values[c] = x
		}
	}
}

// discardLogger drops every record; it is the default.
func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
