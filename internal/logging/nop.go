package logging

import (
	"io"
	"log/slog"
)

// NewNopLogger creates a logger that discards all output. Useful for tests
// or when diagnostics need to be disabled entirely.
func NewNopLogger() Logger {
	return New(io.Discard, slog.LevelError)
}
