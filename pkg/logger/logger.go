// Package logger provides structured logging for tsconfcheck.
package logger

import (
	"io"
	"log/slog"
)

// Logger provides structured logging interface.
type Logger interface {
	// Debug logs debug-level messages with optional key-value pairs.
	Debug(msg string, keysAndValues ...any)

	// Info logs info-level messages with optional key-value pairs.
	Info(msg string, keysAndValues ...any)

	// Error logs error-level messages with optional key-value pairs.
	Error(msg string, keysAndValues ...any)

	// With returns a new logger with additional key-value pairs.
	With(keysAndValues ...any) Logger
}

// SlogAdapter implements Logger on top of a slog.Logger.
type SlogAdapter struct {
	logger *slog.Logger
}

// NewSlogAdapter creates a Logger writing logfmt entries at or above level to w.
func NewSlogAdapter(w io.Writer, level Level) *SlogAdapter {
	return &SlogAdapter{logger: slog.New(NewWriterHandler(w, level))}
}

// NewSlogAdapterWithHandler creates a Logger backed by an arbitrary slog.Handler.
func NewSlogAdapterWithHandler(h slog.Handler) *SlogAdapter {
	return &SlogAdapter{logger: slog.New(h)}
}

// Debug logs debug-level messages.
func (l *SlogAdapter) Debug(msg string, keysAndValues ...any) {
	l.logger.Debug(msg, keysAndValues...)
}

// Info logs info-level messages.
func (l *SlogAdapter) Info(msg string, keysAndValues ...any) {
	l.logger.Info(msg, keysAndValues...)
}

// Error logs error-level messages.
func (l *SlogAdapter) Error(msg string, keysAndValues ...any) {
	l.logger.Error(msg, keysAndValues...)
}

// With returns a new logger with additional key-value pairs.
//
//nolint:ireturn // With is intended to return an interface for chaining
func (l *SlogAdapter) With(keysAndValues ...any) Logger {
	return &SlogAdapter{logger: l.logger.With(keysAndValues...)}
}

// NoOpLogger is a logger that does nothing.
type NoOpLogger struct{}

// NewNoOpLogger creates a new NoOpLogger.
func NewNoOpLogger() *NoOpLogger {
	return &NoOpLogger{}
}

// Debug does nothing.
func (*NoOpLogger) Debug(string, ...any) {}

// Info does nothing.
func (*NoOpLogger) Info(string, ...any) {}

// Error does nothing.
func (*NoOpLogger) Error(string, ...any) {}

// With returns the same NoOpLogger.
//
//nolint:ireturn // With is intended to return an interface for chaining
func (n *NoOpLogger) With(...any) Logger {
	return n
}
