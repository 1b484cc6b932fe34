package logger

import (
	"fmt"
	"sync/atomic"

	"github.com/philipp01105/simplylog/appender"
	"github.com/philipp01105/simplylog/core"
)

// Logger is a named severity threshold with an ordered set of appenders.
// All methods are safe for concurrent use.
type Logger struct {
	name      string
	threshold atomic.Int32
	appenders *appender.Set
	stats     *appender.Stats
}

// Builder provides a fluent API for building standalone Logger instances
// that are not registered in any Registry
type Builder struct {
	name      string
	level     core.Level
	appenders []appender.Appender
}

// NewBuilder creates a new logger builder
func NewBuilder() *Builder {
	return &Builder{
		level: core.InfoLevel, // Default level
	}
}

// WithName sets the logger name
func (b *Builder) WithName(name string) *Builder {
	b.name = name
	return b
}

// WithLevel sets the threshold
func (b *Builder) WithLevel(level core.Level) *Builder {
	b.level = level
	return b
}

// WithAppenders adds appenders in order; duplicates are dropped
func (b *Builder) WithAppenders(appenders ...appender.Appender) *Builder {
	b.appenders = append(b.appenders, appenders...)
	return b
}

// Build creates the Logger instance
func (b *Builder) Build() *Logger {
	return newLogger(b.name, b.level, b.appenders)
}

func newLogger(name string, level core.Level, appenders []appender.Appender) *Logger {
	l := &Logger{
		name:      name,
		appenders: appender.NewSet(appenders...),
		stats:     appender.NewStats(),
	}
	l.threshold.Store(int32(level))
	return l
}

// Name returns the logger's name
func (l *Logger) Name() string {
	return l.name
}

// Level returns the current threshold
func (l *Logger) Level() core.Level {
	return core.Level(l.threshold.Load())
}

// SetLevel replaces the threshold unconditionally
func (l *Logger) SetLevel(level core.Level) *Logger {
	l.threshold.Store(int32(level))
	return l
}

// SetLevelName parses name and sets it as the threshold. The threshold
// is left unchanged when the name is not recognised.
func (l *Logger) SetLevelName(name string) error {
	level, err := core.ParseLevel(name)
	if err != nil {
		return err
	}
	l.SetLevel(level)
	return nil
}

// IsLogged reports whether a message at level would reach the appenders.
// Use it to skip building expensive arguments.
func (l *Logger) IsLogged(level core.Level) bool {
	return level.Valid() && int32(level) <= l.threshold.Load()
}

// AddAppender attaches a at the end of the appender list. Adding an
// appender that is already attached, or nil, does nothing.
func (l *Logger) AddAppender(a appender.Appender) *Logger {
	l.appenders.Add(a)
	return l
}

// HasAppender reports whether a is attached
func (l *Logger) HasAppender(a appender.Appender) bool {
	return l.appenders.Contains(a)
}

// Appenders returns the attached appenders in dispatch order
func (l *Logger) Appenders() []appender.Appender {
	return l.appenders.Snapshot()
}

// Stats returns delivery counters for this logger's appenders
func (l *Logger) Stats() appender.Snapshot {
	return l.stats.GetSnapshot()
}

// Log sends args to every appender if level is accepted
func (l *Logger) Log(level core.Level, args ...any) {
	// Level check before touching args
	if !l.IsLogged(level) {
		return
	}
	l.appenders.Dispatch(l.name, level, args, l.stats)
}

// Error logs at error level
func (l *Logger) Error(args ...any) {
	if !l.IsLogged(core.ErrorLevel) {
		return
	}
	l.appenders.Dispatch(l.name, core.ErrorLevel, args, l.stats)
}

// Info logs at info level
func (l *Logger) Info(args ...any) {
	if !l.IsLogged(core.InfoLevel) {
		return
	}
	l.appenders.Dispatch(l.name, core.InfoLevel, args, l.stats)
}

// Warn logs at warn level
func (l *Logger) Warn(args ...any) {
	if !l.IsLogged(core.WarnLevel) {
		return
	}
	l.appenders.Dispatch(l.name, core.WarnLevel, args, l.stats)
}

// Debug logs at debug level
func (l *Logger) Debug(args ...any) {
	if !l.IsLogged(core.DebugLevel) {
		return
	}
	l.appenders.Dispatch(l.name, core.DebugLevel, args, l.stats)
}

// Trace logs at trace level
func (l *Logger) Trace(args ...any) {
	if !l.IsLogged(core.TraceLevel) {
		return
	}
	l.appenders.Dispatch(l.name, core.TraceLevel, args, l.stats)
}

// logf formats only after the level check; appenders receive the
// formatted string as their single argument.
func (l *Logger) logf(level core.Level, format string, args []any) {
	if !l.IsLogged(level) {
		return
	}
	l.appenders.Dispatch(l.name, level, []any{fmt.Sprintf(format, args...)}, l.stats)
}

// Errorf logs a formatted message at error level
func (l *Logger) Errorf(format string, args ...any) {
	l.logf(core.ErrorLevel, format, args)
}

// Infof logs a formatted message at info level
func (l *Logger) Infof(format string, args ...any) {
	l.logf(core.InfoLevel, format, args)
}

// Warnf logs a formatted message at warn level
func (l *Logger) Warnf(format string, args ...any) {
	l.logf(core.WarnLevel, format, args)
}

// Debugf logs a formatted message at debug level
func (l *Logger) Debugf(format string, args ...any) {
	l.logf(core.DebugLevel, format, args)
}

// Tracef logs a formatted message at trace level
func (l *Logger) Tracef(format string, args ...any) {
	l.logf(core.TraceLevel, format, args)
}
