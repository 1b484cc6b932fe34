// Package slogappender forwards simplylog messages to a log/slog Handler.
package slogappender

import (
	"context"
	"log/slog"

	"github.com/philipp01105/simplylog/core"
)

// LevelTrace is the slog level used for trace messages.
const LevelTrace = slog.LevelDebug - 4

// Appender writes records to a slog.Handler
type Appender struct {
	handler slog.Handler
}

// New creates an appender writing to h. A nil handler uses slog.Default().Handler().
func New(h slog.Handler) *Appender {
	if h == nil {
		h = slog.Default().Handler()
	}
	return &Appender{handler: h}
}

// Append builds a record carrying a "logger" attribute and hands it to
// the handler. Handler errors drop the record.
func (a *Appender) Append(loggerName, levelName string, args []any) {
	lvl, ok := slogLevel(levelName)
	ctx := context.Background()
	if !ok || !a.handler.Enabled(ctx, lvl) {
		return
	}
	r := slog.NewRecord(core.Now(), lvl, core.RenderArgs(args), 0)
	r.AddAttrs(slog.String("logger", loggerName))
	_ = a.handler.Handle(ctx, r)
}

func slogLevel(levelName string) (slog.Level, bool) {
	l, err := core.ParseLevel(levelName)
	if err != nil {
		return 0, false
	}
	switch l {
	case core.ErrorLevel:
		return slog.LevelError, true
	case core.WarnLevel:
		return slog.LevelWarn, true
	case core.InfoLevel:
		return slog.LevelInfo, true
	case core.DebugLevel:
		return slog.LevelDebug, true
	case core.TraceLevel:
		return LevelTrace, true
	default:
		return 0, false
	}
}
