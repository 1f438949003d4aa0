// Package logger provides structured logging for dispatch components.
//
// It extends the standard library's log/slog with a JSON stdout logger and
// optional Sentry error reporting. If no Sentry DSN is configured, logging
// gracefully falls back to stdout only, so the same code path works in
// development and production.
package logger

import (
	"io"
	"log/slog"
	"os"
)

// New creates a JSON-formatted logger writing to stdout at the given level.
func New(level slog.Level) *slog.Logger {
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	}))
}

// NewNope creates a no-op logger that discards all output.
// Use this as a default when logging is not configured.
func NewNope() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
