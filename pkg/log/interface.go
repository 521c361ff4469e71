// Package log provides the structured logging interface used across linefit.
//
// The interface is slog-shaped (message plus alternating key/value fields) and
// is backed by zerolog in production. Attribute keys live in attributes.go so
// that every component reports the same field names.
//
// Example usage:
//
//	logger := log.GetLogger().With(log.ComponentKey, "linear")
//	logger.Info("fit complete",
//	    log.SamplesKey, 9,
//	    log.SlopeKey, 0.69,
//	)
package log

import (
	"context"
	"fmt"
	"strings"
)

// Logger defines a structured logging interface compatible with Go's log/slog.
//
// Fields are alternating key/value pairs. If the first field passed to Error
// is an error value, it is recorded under the "error" key together with its
// stack trace when one is available.
type Logger interface {
	// Debug logs diagnostic information, normally disabled.
	Debug(msg string, fields ...any)

	// Info logs general operational information.
	Info(msg string, fields ...any)

	// Warn logs a condition that does not stop execution, such as a
	// non-finite fit result.
	Warn(msg string, fields ...any)

	// Error logs an error condition.
	Error(msg string, fields ...any)

	// With returns a Logger that adds fields to every record.
	With(fields ...any) Logger

	// Enabled reports whether records at level are emitted.
	Enabled(ctx context.Context, level Level) bool
}

// Level represents a logging level, compatible with slog.Level.
type Level int

// Standard logging levels, values are compatible with slog.Level.
const (
	LevelDebug Level = -4
	LevelInfo  Level = 0
	LevelWarn  Level = 4
	LevelError Level = 8
)

// String returns the string representation of the log level.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel converts a level name ("debug", "info", "warn", "error") into a
// Level. Matching is case-insensitive.
func ParseLevel(name string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return LevelDebug, nil
	case "info", "":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	default:
		return LevelInfo, fmt.Errorf("invalid log level: %q", name)
	}
}
