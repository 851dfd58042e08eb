package logger

import (
	"log/slog"
	"strings"

	"github.com/cockroachdb/errors"
)

// ErrInvalidLevel is returned when a log level name is not recognized.
var ErrInvalidLevel = errors.New("invalid log level")

// Level represents the log level.
type Level int

const (
	// LevelDebug represents debug-level logging (most verbose).
	LevelDebug Level = iota

	// LevelInfo represents info-level logging (standard verbosity).
	LevelInfo

	// LevelError represents error-level logging (least verbose).
	LevelError
)

// String returns the lowercase level name.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "debug"
	case LevelInfo:
		return "info"
	case LevelError:
		return "error"
	default:
		return "unknown"
	}
}

// ParseLevel parses a level name, case-insensitively.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug, nil
	case "info":
		return LevelInfo, nil
	case "error":
		return LevelError, nil
	default:
		return LevelError, errors.Wrapf(ErrInvalidLevel, "%q", s)
	}
}

// ToSlogLevel converts Level to slog.Level.
func (l Level) ToSlogLevel() slog.Level {
	switch l {
	case LevelDebug:
		return slog.LevelDebug
	case LevelInfo:
		return slog.LevelInfo
	case LevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// LevelFromFlags determines the log level from the debug flag, falling back to configured.
func LevelFromFlags(debug bool, configured Level) Level {
	if debug {
		return LevelDebug
	}

	return configured
}
