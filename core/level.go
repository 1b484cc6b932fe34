package core

import (
	"errors"
	"fmt"

	"golang.org/x/text/cases"
)

// Level is the severity rank of a log message. Higher ranks are more
// verbose; a Logger accepts every level whose rank is at or below its
// threshold.
type Level int8

const (
	// OffLevel is lower than every real rank and disables all output
	OffLevel Level = -1
	// ErrorLevel for error messages, accepted unless logging is off
	ErrorLevel Level = 1
	// InfoLevel for general informational messages (default)
	InfoLevel Level = 2
	// WarnLevel for warning messages
	WarnLevel Level = 3
	// DebugLevel for detailed debugging information
	DebugLevel Level = 4
	// TraceLevel for very verbose tracing
	TraceLevel Level = 5
)

// ErrInvalidLevel is returned when a level name or rank is not recognised.
var ErrInvalidLevel = errors.New("invalid log level")

var levelNames = [...]string{
	ErrorLevel: "error",
	InfoLevel:  "info",
	WarnLevel:  "warn",
	DebugLevel: "debug",
	TraceLevel: "trace",
}

// String returns the lowercase name of the level
func (l Level) String() string {
	if l == OffLevel {
		return "off"
	}
	if !l.Valid() {
		return "unknown"
	}
	return levelNames[l]
}

// Valid reports whether l is one of the five message levels.
func (l Level) Valid() bool {
	return l >= ErrorLevel && l <= TraceLevel
}

// Levels returns the message levels in rank order.
func Levels() []Level {
	return []Level{ErrorLevel, InfoLevel, WarnLevel, DebugLevel, TraceLevel}
}

// LevelFromRank converts an integer rank to a message level.
func LevelFromRank(rank int) (Level, bool) {
	if rank < int(ErrorLevel) || rank > int(TraceLevel) {
		return 0, false
	}
	return Level(rank), true
}

// ParseLevel converts a case-insensitive level name to a Level.
// "off" yields OffLevel and "warning" is accepted as an alias for warn.
func ParseLevel(s string) (Level, error) {
	switch cases.Fold().String(s) {
	case "error":
		return ErrorLevel, nil
	case "info":
		return InfoLevel, nil
	case "warn", "warning":
		return WarnLevel, nil
	case "debug":
		return DebugLevel, nil
	case "trace":
		return TraceLevel, nil
	case "off":
		return OffLevel, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidLevel, s)
	}
}
