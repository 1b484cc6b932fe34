package logger

import (
	"io"
	"sort"
	"sync"
	"sync/atomic"

	"github.com/philipp01105/simplylog/appender"
	"github.com/philipp01105/simplylog/appender/consoleappender"
	"github.com/philipp01105/simplylog/core"
	"github.com/philipp01105/simplylog/formatter"
)

// RegistryConfig holds configuration for a Registry
type RegistryConfig struct {
	// DefaultLevel seeds new loggers (default: InfoLevel)
	DefaultLevel core.Level
	// Writer and ErrWriter back the console appender (default: stdout / stderr)
	Writer    io.Writer
	ErrWriter io.Writer
	// UseColors enables coloured console prefixes
	UseColors bool
	// Palette maps levels to colours (default: formatter.DefaultPalette())
	Palette *formatter.Palette
	// CoarseClock timestamps entries from a clock cached every 500µs
	// instead of calling time.Now for each message. It is process-wide.
	CoarseClock bool
}

// applyRegistryDefaults fills in zero-value fields with defaults.
func applyRegistryDefaults(cfg *RegistryConfig) {
	if cfg.DefaultLevel == 0 {
		cfg.DefaultLevel = core.InfoLevel
	}
	if cfg.Palette == nil {
		cfg.Palette = formatter.DefaultPalette()
	}
}

// Registry maps names to Logger instances and holds the defaults that
// seed loggers created later. A name is bound to one Logger for the
// lifetime of the registry.
type Registry struct {
	mu           sync.Mutex // protects loggers, defaults and defaultLevel
	loggers      map[string]*Logger
	defaults     []appender.Appender
	defaultLevel core.Level

	useColors atomic.Bool
	palette   *formatter.Palette
	console   *consoleappender.Appender
}

// NewRegistry creates an empty registry
func NewRegistry(cfg RegistryConfig) *Registry {
	applyRegistryDefaults(&cfg)
	if cfg.CoarseClock {
		core.StartCoarseClock()
	}
	r := &Registry{
		loggers:      make(map[string]*Logger),
		defaultLevel: cfg.DefaultLevel,
		palette:      cfg.Palette,
	}
	r.useColors.Store(cfg.UseColors)
	r.console = consoleappender.New(consoleappender.Config{
		Writer:    cfg.Writer,
		ErrWriter: cfg.ErrWriter,
		Palette:   cfg.Palette,
		Colors:    r.UseColors,
	})
	return r
}

// GetLogger returns the logger registered under name, creating it on
// first use. A new logger starts with the current default level and a
// copy of the current default appenders; later changes to the defaults
// do not reach it.
func (r *Registry) GetLogger(name string) *Logger {
	r.mu.Lock()
	defer r.mu.Unlock()

	if l, ok := r.loggers[name]; ok {
		return l
	}
	l := newLogger(name, r.defaultLevel, r.defaults)
	r.loggers[name] = l
	return l
}

// ConsoleLogger is GetLogger plus the registry's console appender,
// attached at most once however often it is called.
func (r *Registry) ConsoleLogger(name string) *Logger {
	return r.GetLogger(name).AddAppender(r.console)
}

// Lookup returns the logger registered under name without creating it
func (r *Registry) Lookup(name string) (*Logger, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	l, ok := r.loggers[name]
	return l, ok
}

// Loggers returns the registered names in sorted order
func (r *Registry) Loggers() []string {
	r.mu.Lock()
	names := make([]string, 0, len(r.loggers))
	for name := range r.loggers {
		names = append(names, name)
	}
	r.mu.Unlock()

	sort.Strings(names)
	return names
}

// AddDefaultAppender appends a to the appenders given to loggers created
// from now on. Existing loggers are unaffected. Nil and repeated
// appenders are ignored.
func (r *Registry) AddDefaultAppender(a appender.Appender) *Registry {
	if a == nil {
		return r
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, d := range r.defaults {
		if appender.Same(d, a) {
			return r
		}
	}
	r.defaults = append(r.defaults, a)
	return r
}

// DefaultAppenders returns a copy of the default appender list
func (r *Registry) DefaultAppenders() []appender.Appender {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]appender.Appender, len(r.defaults))
	copy(out, r.defaults)
	return out
}

// SetDefaultLevel sets the level given to loggers created from now on.
// Existing loggers keep their threshold.
func (r *Registry) SetDefaultLevel(level core.Level) *Registry {
	r.mu.Lock()
	r.defaultLevel = level
	r.mu.Unlock()
	return r
}

// DefaultLevel returns the level new loggers start with
func (r *Registry) DefaultLevel() core.Level {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.defaultLevel
}

// Color returns the console colour for a level name or numeric rank
func (r *Registry) Color(key string) (string, bool) {
	return r.palette.Color(key)
}

// SetColor sets the console colour for a level and returns the value now
// in effect. Colours shorter than three characters are ignored.
func (r *Registry) SetColor(key, color string) (string, bool) {
	return r.palette.SetColor(key, color)
}

// SetUseColors toggles coloured console output. It applies immediately
// to every logger using the console appender.
func (r *Registry) SetUseColors(on bool) *Registry {
	r.useColors.Store(on)
	return r
}

// UseColors reports whether console output is coloured
func (r *Registry) UseColors() bool {
	return r.useColors.Load()
}

// Palette returns the registry's colour palette
func (r *Registry) Palette() *formatter.Palette {
	return r.palette
}

// ConsoleAppender returns the appender ConsoleLogger attaches
func (r *Registry) ConsoleAppender() *consoleappender.Appender {
	return r.console
}

// Close closes every distinct closable appender reachable from the
// registry. Loggers remain usable; closed appenders decide themselves
// what to do with later messages.
func (r *Registry) Close() error {
	r.mu.Lock()
	all := make([]appender.Appender, 0, len(r.defaults)+len(r.loggers)+1)
	all = append(all, r.console)
	all = append(all, r.defaults...)
	for _, l := range r.loggers {
		all = append(all, l.Appenders()...)
	}
	r.mu.Unlock()

	return appender.Close(all...)
}
