package logger

import (
	"sync"

	"github.com/philipp01105/simplylog/appender"
	"github.com/philipp01105/simplylog/core"
)

var (
	defaultRegistry *Registry
	defaultMu       sync.RWMutex
)

func init() {
	// Initialize default registry: info level, console to stdout/stderr, no colours
	defaultRegistry = NewRegistry(RegistryConfig{})
}

// Default returns the default registry
func Default() *Registry {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultRegistry
}

// SetDefault sets the default registry. Loggers already handed out keep
// belonging to the previous one.
func SetDefault(r *Registry) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultRegistry = r
}

// Package-level convenience functions using the default registry

// GetLogger returns the named logger from the default registry
func GetLogger(name string) *Logger {
	return Default().GetLogger(name)
}

// ConsoleLogger returns the named logger from the default registry with
// the console appender attached
func ConsoleLogger(name string) *Logger {
	return Default().ConsoleLogger(name)
}

// AddDefaultAppender adds a default appender to the default registry
func AddDefaultAppender(a appender.Appender) {
	Default().AddDefaultAppender(a)
}

// SetDefaultLevel sets the default level of the default registry
func SetDefaultLevel(level core.Level) {
	Default().SetDefaultLevel(level)
}

// Color returns a console colour from the default registry
func Color(key string) (string, bool) {
	return Default().Color(key)
}

// SetColor sets a console colour in the default registry
func SetColor(key, color string) (string, bool) {
	return Default().SetColor(key, color)
}

// SetUseColors toggles coloured console output of the default registry
func SetUseColors(on bool) {
	Default().SetUseColors(on)
}
