package logger

import (
	"github.com/philipp01105/simplylog/core"
)

// Level Re-export type and constants for convenience
type Level = core.Level

const (
	OFF   = core.OffLevel
	ERROR = core.ErrorLevel
	INFO  = core.InfoLevel
	WARN  = core.WarnLevel
	DEBUG = core.DebugLevel
	TRACE = core.TraceLevel
)

const (
	OffLevel   = core.OffLevel
	ErrorLevel = core.ErrorLevel
	InfoLevel  = core.InfoLevel
	WarnLevel  = core.WarnLevel
	DebugLevel = core.DebugLevel
	TraceLevel = core.TraceLevel
)

// ErrInvalidLevel is returned for unrecognised level names
var ErrInvalidLevel = core.ErrInvalidLevel

// ParseLevel converts a case-insensitive level name to a Level
func ParseLevel(s string) (Level, error) {
	return core.ParseLevel(s)
}
