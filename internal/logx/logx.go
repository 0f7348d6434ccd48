// SPDX-License-Identifier: MIT

// Package logx wraps log/slog with the field names used by the vector file helpers.
package logx

import (
	"log/slog"
	"os"
)

// levelOff is above every level slog defines, so nothing passes the handler.
const levelOff = slog.Level(1000)

// Logger wraps slog.Logger with operation-specific helpers.
type Logger struct {
	*slog.Logger
}

// New wraps l; a nil l yields a no-op logger.
func New(l *slog.Logger) *Logger {
	if l == nil {
		return Noop()
	}

	return &Logger{Logger: l}
}

// Noop returns a Logger that discards all output.
func Noop() *Logger {
	return &Logger{Logger: slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: levelOff}))}
}

// WithPath adds a path field.
func (l *Logger) WithPath(path string) *Logger {
	return &Logger{Logger: l.Logger.With("path", path)}
}

// LogLoad logs the outcome of a load: debug on success, error otherwise.
func (l *Logger) LogLoad(capacity, read int, err error) {
	if err != nil {
		l.Error("load failed",
			"capacity", capacity,
			"read", read,
			"error", err,
		)
		return
	}
	l.Debug("load completed",
		"capacity", capacity,
		"read", read,
		"short", read < capacity,
	)
}

// LogStore logs the outcome of a store: debug on success, error otherwise.
func (l *Logger) LogStore(count int, err error) {
	if err != nil {
		l.Error("store failed",
			"count", count,
			"error", err,
		)
		return
	}
	l.Debug("store completed", "count", count)
}

// LogSuppressed records a failure that lenient mode does not report to the caller.
func (l *Logger) LogSuppressed(op string, err error) {
	l.Warn("failure suppressed in lenient mode",
		"op", op,
		"error", err,
	)
}
