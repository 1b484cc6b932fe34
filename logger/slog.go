package logger

import (
	"context"
	"log/slog"
	"strings"

	"github.com/philipp01105/simplylog/core"
)

// SlogHandler implements slog.Handler on top of a Logger, so code written
// against log/slog feeds the Logger's threshold and appenders.
//
// The record message is the first argument handed to appenders, followed
// by one "key=value" string per attribute.
type SlogHandler struct {
	logger *Logger
	attrs  []string
	group  string
}

// NewSlogHandler creates a new slog.Handler writing to l
func NewSlogHandler(l *Logger) *SlogHandler {
	return &SlogHandler{logger: l}
}

// Enabled reports whether the logger accepts records at the given level.
func (s *SlogHandler) Enabled(_ context.Context, level slog.Level) bool {
	return s.logger.IsLogged(slogLevelToCore(level))
}

// Handle converts the record into arguments and logs them.
func (s *SlogHandler) Handle(_ context.Context, record slog.Record) error {
	level := slogLevelToCore(record.Level)
	if !s.logger.IsLogged(level) {
		return nil
	}

	args := make([]any, 0, 1+len(s.attrs)+record.NumAttrs())
	args = append(args, record.Message)
	for _, a := range s.attrs {
		args = append(args, a)
	}
	record.Attrs(func(a slog.Attr) bool {
		for _, kv := range appendAttr(nil, s.group, a) {
			args = append(args, kv)
		}
		return true
	})

	s.logger.Log(level, args...)
	return nil
}

// WithAttrs returns a new SlogHandler with additional attributes.
func (s *SlogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	merged := make([]string, len(s.attrs), len(s.attrs)+len(attrs))
	copy(merged, s.attrs)
	for _, a := range attrs {
		merged = appendAttr(merged, s.group, a)
	}
	return &SlogHandler{
		logger: s.logger,
		attrs:  merged,
		group:  s.group,
	}
}

// WithGroup returns a new SlogHandler with the given group name.
func (s *SlogHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return s
	}
	newGroup := name
	if s.group != "" {
		newGroup = s.group + "." + name
	}
	return &SlogHandler{
		logger: s.logger,
		attrs:  s.attrs,
		group:  newGroup,
	}
}

// slogLevelToCore converts a slog.Level to a core.Level. Anything below
// debug is trace.
func slogLevelToCore(level slog.Level) core.Level {
	switch {
	case level >= slog.LevelError:
		return core.ErrorLevel
	case level >= slog.LevelWarn:
		return core.WarnLevel
	case level >= slog.LevelInfo:
		return core.InfoLevel
	case level >= slog.LevelDebug:
		return core.DebugLevel
	default:
		return core.TraceLevel
	}
}

// appendAttr renders a as "key=value", prefixing the key with group.
// Group values are flattened one level at a time.
func appendAttr(dst []string, group string, a slog.Attr) []string {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return dst
	}
	key := a.Key
	if group != "" && key != "" {
		key = group + "." + key
	} else if key == "" {
		key = group
	}

	if a.Value.Kind() == slog.KindGroup {
		for _, ga := range a.Value.Group() {
			dst = appendAttr(dst, key, ga)
		}
		return dst
	}

	var sb strings.Builder
	sb.WriteString(key)
	sb.WriteByte('=')
	sb.WriteString(a.Value.String())
	return append(dst, sb.String())
}
