// Package zerologappender forwards simplylog messages to a zerolog.Logger.
package zerologappender

import (
	"github.com/rs/zerolog"

	"github.com/philipp01105/simplylog/core"
)

// Appender writes to a zerolog.Logger
type Appender struct {
	logger zerolog.Logger
}

// New creates an appender writing to l
func New(l zerolog.Logger) *Appender {
	return &Appender{logger: l}
}

// Append forwards the message with a "logger" field.
func (a *Appender) Append(loggerName, levelName string, args []any) {
	lvl, ok := zerologLevel(levelName)
	if !ok {
		return
	}
	e := a.logger.WithLevel(lvl)
	if e == nil {
		// disabled by the zerolog logger's level
		return
	}
	e.Str("logger", loggerName).Msg(core.RenderArgs(args))
}

func zerologLevel(levelName string) (zerolog.Level, bool) {
	l, err := core.ParseLevel(levelName)
	if err != nil {
		return zerolog.NoLevel, false
	}
	switch l {
	case core.ErrorLevel:
		return zerolog.ErrorLevel, true
	case core.WarnLevel:
		return zerolog.WarnLevel, true
	case core.InfoLevel:
		return zerolog.InfoLevel, true
	case core.DebugLevel:
		return zerolog.DebugLevel, true
	case core.TraceLevel:
		return zerolog.TraceLevel, true
	default:
		return zerolog.NoLevel, false
	}
}
