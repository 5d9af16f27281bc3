// SPDX-License-Identifier: MIT

package batch

import (
	"io"
	"log/slog"
)

// Logger wraps slog.Logger with batch-specific context.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, the logger discards everything.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		return NoopLogger()
	}

	return &Logger{Logger: slog.New(handler)}
}

// NewTextLogger creates a Logger that writes human-readable text logs to w.
func NewTextLogger(w io.Writer, level slog.Level) *Logger {
	return NewLogger(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// NewJSONLogger creates a Logger that writes JSON-formatted logs to w.
func NewJSONLogger(w io.Writer, level slog.Level) *Logger {
	return NewLogger(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
		Level: slog.Level(1000), // unreachable level
	})

	return &Logger{Logger: slog.New(handler)}
}

// WithJob returns a logger carrying the job's name and op.
func (l *Logger) WithJob(j Job) *Logger {
	return &Logger{Logger: l.With(slog.String("job", j.Name), slog.String("op", string(j.Op)))}
}
