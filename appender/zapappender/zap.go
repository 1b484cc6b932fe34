// Package zapappender forwards simplylog messages to a zap.Logger.
//
// The rendered arguments become the zap message and the logger name is
// attached as a "logger" field. Trace maps to zap's debug level.
package zapappender

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/philipp01105/simplylog/core"
)

// Appender writes to a zap.Logger
type Appender struct {
	logger *zap.Logger
}

// New creates an appender writing to l. A nil logger yields a no-op logger.
func New(l *zap.Logger) *Appender {
	if l == nil {
		l = zap.NewNop()
	}
	return &Appender{logger: l}
}

// Append forwards the message if zap has the level enabled.
func (a *Appender) Append(loggerName, levelName string, args []any) {
	lvl, ok := zapLevel(levelName)
	if !ok || !a.logger.Core().Enabled(lvl) {
		return
	}
	if ce := a.logger.Check(lvl, core.RenderArgs(args)); ce != nil {
		ce.Write(zap.String("logger", loggerName))
	}
}

// Close flushes the zap logger.
func (a *Appender) Close() error {
	return a.logger.Sync()
}

func zapLevel(levelName string) (zapcore.Level, bool) {
	l, err := core.ParseLevel(levelName)
	if err != nil {
		return 0, false
	}
	switch l {
	case core.ErrorLevel:
		return zapcore.ErrorLevel, true
	case core.WarnLevel:
		return zapcore.WarnLevel, true
	case core.InfoLevel:
		return zapcore.InfoLevel, true
	case core.DebugLevel, core.TraceLevel:
		return zapcore.DebugLevel, true
	default:
		return 0, false
	}
}
