// Package logging provides the logging seam of the library. It abstracts the
// underlying zerolog backend behind a small interface so the core stays
// silent by default and a consumer can opt in to structured logs.
package logging

import (
	"sync"

	"github.com/rs/zerolog"
)

// Logger is the logging interface used across the library.
type Logger interface {
	// Debug logs a debug message.
	Debug(msg string, fields ...Field)

	// Info logs an informational message.
	Info(msg string, fields ...Field)

	// Error logs an error message with the associated error.
	Error(msg string, err error, fields ...Field)
}

// Field represents a key-value pair for structured logging.
type Field struct {
	Key   string
	Value any
}

// String creates a string field.
func String(key, value string) Field { return Field{Key: key, Value: value} }

// Uint64 creates a uint64 field.
func Uint64(key string, value uint64) Field { return Field{Key: key, Value: value} }

// ZerologAdapter adapts a zerolog.Logger to the Logger interface.
type ZerologAdapter struct {
	logger zerolog.Logger
}

// NewZerologAdapter creates a Logger backed by zerolog.
func NewZerologAdapter(logger zerolog.Logger) *ZerologAdapter {
	return &ZerologAdapter{logger: logger}
}

func applyFields(ev *zerolog.Event, fields []Field) *zerolog.Event {
	for _, f := range fields {
		ev = ev.Interface(f.Key, f.Value)
	}
	return ev
}

// Debug implements Logger.
func (a *ZerologAdapter) Debug(msg string, fields ...Field) {
	applyFields(a.logger.Debug(), fields).Msg(msg)
}

// Info implements Logger.
func (a *ZerologAdapter) Info(msg string, fields ...Field) {
	applyFields(a.logger.Info(), fields).Msg(msg)
}

// Error implements Logger.
func (a *ZerologAdapter) Error(msg string, err error, fields ...Field) {
	applyFields(a.logger.Error().Err(err), fields).Msg(msg)
}

// NopLogger discards everything. It is the default.
type NopLogger struct{}

// Debug implements Logger.
func (NopLogger) Debug(string, ...Field) {}

// Info implements Logger.
func (NopLogger) Info(string, ...Field) {}

// Error implements Logger.
func (NopLogger) Error(string, error, ...Field) {}

var (
	mu      sync.RWMutex
	current Logger = NopLogger{}
)

// SetDefault installs the process-wide logger.
func SetDefault(l Logger) {
	if l == nil {
		l = NopLogger{}
	}
	mu.Lock()
	current = l
	mu.Unlock()
}

// Default returns the process-wide logger.
func Default() Logger {
	mu.RLock()
	defer mu.RUnlock()
	return current
}
