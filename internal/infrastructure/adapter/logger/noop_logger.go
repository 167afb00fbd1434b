package logger

import (
	"github.com/amirhossein-jamali/user-leveling/internal/domain/port/core"
)

// NoopLogger implements the Logger interface but doesn't do anything
// Useful for testing or when logging is disabled
type NoopLogger struct {
	level core.LogLevel
}

// NewNoopLogger creates a new no-op logger
func NewNoopLogger() core.Logger {
	return &NoopLogger{
		level: core.LogLevelInfo,
	}
}

// SetLevel sets the minimum log level to output
func (l *NoopLogger) SetLevel(level core.LogLevel) {
	l.level = level
}

// GetLevel gets the current log level
func (l *NoopLogger) GetLevel() core.LogLevel {
	return l.level
}

// With returns the same logger, fields are dropped anyway
func (l *NoopLogger) With(map[string]any) core.Logger {
	return l
}

// Debug logs debug messages
func (l *NoopLogger) Debug(string, map[string]any) {}

// Info logs informational messages
func (l *NoopLogger) Info(string, map[string]any) {}

// Warn logs warning messages
func (l *NoopLogger) Warn(string, map[string]any) {}

// Error logs errors messages
func (l *NoopLogger) Error(string, map[string]any) {}

// Flush ensures all buffered logs are written to their destination
func (l *NoopLogger) Flush() error {
	return nil
}
