// Package charmappender forwards simplylog messages to a charmbracelet
// log.Logger, which renders styled, human-friendly terminal output.
package charmappender

import (
	"github.com/charmbracelet/log"

	"github.com/philipp01105/simplylog/core"
)

// Appender writes to a charmbracelet log.Logger
type Appender struct {
	logger *log.Logger
}

// New creates an appender writing to l. A nil logger uses log.Default().
func New(l *log.Logger) *Appender {
	if l == nil {
		l = log.Default()
	}
	return &Appender{logger: l}
}

// Append forwards the message with a "logger" key. Trace is logged at
// debug level since charmbracelet/log has no finer level.
func (a *Appender) Append(loggerName, levelName string, args []any) {
	lvl, ok := charmLevel(levelName)
	if !ok || lvl < a.logger.GetLevel() {
		return
	}
	a.logger.Log(lvl, core.RenderArgs(args), "logger", loggerName)
}

func charmLevel(levelName string) (log.Level, bool) {
	l, err := core.ParseLevel(levelName)
	if err != nil {
		return 0, false
	}
	switch l {
	case core.ErrorLevel:
		return log.ErrorLevel, true
	case core.WarnLevel:
		return log.WarnLevel, true
	case core.InfoLevel:
		return log.InfoLevel, true
	case core.DebugLevel, core.TraceLevel:
		return log.DebugLevel, true
	default:
		return 0, false
	}
}
