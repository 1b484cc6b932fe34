// Package logrusappender forwards simplylog messages to a logrus.Logger.
package logrusappender

import (
	"github.com/sirupsen/logrus"

	"github.com/philipp01105/simplylog/core"
)

// Appender writes to a logrus.Logger
type Appender struct {
	logger *logrus.Logger
}

// New creates an appender writing to l. A nil logger uses logrus.StandardLogger().
func New(l *logrus.Logger) *Appender {
	if l == nil {
		l = logrus.StandardLogger()
	}
	return &Appender{logger: l}
}

// Append forwards the message with a "logger" field.
func (a *Appender) Append(loggerName, levelName string, args []any) {
	lvl, ok := logrusLevel(levelName)
	if !ok || !a.logger.IsLevelEnabled(lvl) {
		return
	}
	a.logger.WithField("logger", loggerName).Log(lvl, core.RenderArgs(args))
}

func logrusLevel(levelName string) (logrus.Level, bool) {
	l, err := core.ParseLevel(levelName)
	if err != nil {
		return 0, false
	}
	switch l {
	case core.ErrorLevel:
		return logrus.ErrorLevel, true
	case core.WarnLevel:
		return logrus.WarnLevel, true
	case core.InfoLevel:
		return logrus.InfoLevel, true
	case core.DebugLevel:
		return logrus.DebugLevel, true
	case core.TraceLevel:
		return logrus.TraceLevel, true
	default:
		return 0, false
	}
}
