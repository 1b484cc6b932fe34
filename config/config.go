// Package config loads logging settings from YAML or JSON files, .env
// files, environment variables and command-line flags, and applies them
// to a logger.Registry.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"

	"github.com/philipp01105/simplylog/appender/consoleappender"
	"github.com/philipp01105/simplylog/appender/fileappender"
	"github.com/philipp01105/simplylog/core"
	"github.com/philipp01105/simplylog/formatter"
	"github.com/philipp01105/simplylog/logger"
)

// Environment variables read by ApplyEnv
const (
	EnvLevel  = "SIMPLYLOG_LEVEL"
	EnvColors = "SIMPLYLOG_COLORS"
	EnvFile   = "SIMPLYLOG_FILE"
)

// Colour modes accepted by UseColors
const (
	ColorsAuto  = "auto"
	ColorsTrue  = "true"
	ColorsFalse = "false"
)

// minColorLen is the shortest colour Registry.SetColor accepts
const minColorLen = 3

// ErrUnsupportedFormat is returned by Load for unknown file extensions.
var ErrUnsupportedFormat = errors.New("unsupported config format")

// Config is the file representation of registry settings.
type Config struct {
	// DefaultLevel seeds loggers created after Apply
	DefaultLevel string `yaml:"default_level" json:"default_level"`
	// UseColors is "auto", "true" or "false"
	UseColors string `yaml:"use_colors" json:"use_colors"`
	// Colors maps level names or ranks to colours
	Colors map[string]string `yaml:"colors" json:"colors"`
	// Loggers maps logger names to their threshold
	Loggers map[string]string `yaml:"loggers" json:"loggers"`
	// Console names loggers that get the console appender
	Console []string `yaml:"console" json:"console"`
	// File, when set, adds a file appender to the default appenders
	File string `yaml:"file" json:"file"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		DefaultLevel: core.InfoLevel.String(),
		UseColors:    ColorsAuto,
	}
}

// Load reads configuration from a YAML or JSON file, chosen by extension.
// An empty path returns Default().
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse YAML %s: %w", path, err)
		}
	case ".json":
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse JSON %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}

	return cfg, nil
}

// LoadDotEnv loads variables from the given .env files into the process
// environment without overriding variables that are already set. Missing
// files are skipped.
func LoadDotEnv(files ...string) error {
	var err error
	for _, f := range files {
		if loadErr := godotenv.Load(f); loadErr != nil && !errors.Is(loadErr, fs.ErrNotExist) {
			err = multierr.Append(err, fmt.Errorf("load %s: %w", f, loadErr))
		}
	}
	return err
}

// ApplyEnv overrides fields from SIMPLYLOG_* environment variables.
func (c *Config) ApplyEnv() {
	if v, ok := os.LookupEnv(EnvLevel); ok {
		c.DefaultLevel = v
	}
	if v, ok := os.LookupEnv(EnvColors); ok {
		c.UseColors = v
	}
	if v, ok := os.LookupEnv(EnvFile); ok {
		c.File = v
	}
}

// Flag names registered by BindFlags
const (
	FlagLevel   = "log-level"
	FlagColors  = "log-colors"
	FlagFile    = "log-file"
	FlagConsole = "log-console"
)

// BindFlags registers the logging flags on fs. Their values reach a
// Config through ApplyFlags, so flags can be registered before the
// config file is known.
func BindFlags(fs *pflag.FlagSet) {
	fs.String(FlagLevel, "", "default level for new loggers (error, info, warn, debug, trace, off)")
	fs.String(FlagColors, "", "colour console output: auto, true or false")
	fs.String(FlagFile, "", "also append every message to this file")
	fs.StringSlice(FlagConsole, nil, "loggers that write to the console")
}

// ApplyFlags overrides c with the flags from BindFlags that were set on
// the command line.
func (c *Config) ApplyFlags(fs *pflag.FlagSet) error {
	var err error
	fs.Visit(func(f *pflag.Flag) {
		switch f.Name {
		case FlagLevel:
			c.DefaultLevel = f.Value.String()
		case FlagColors:
			c.UseColors = f.Value.String()
		case FlagFile:
			c.File = f.Value.String()
		case FlagConsole:
			console, gerr := fs.GetStringSlice(FlagConsole)
			err = multierr.Append(err, gerr)
			c.Console = append(c.Console, console...)
		}
	})
	return err
}

// Validate reports every invalid setting.
func (c *Config) Validate() error {
	var err error
	if c.DefaultLevel != "" {
		if _, perr := core.ParseLevel(c.DefaultLevel); perr != nil {
			err = multierr.Append(err, fmt.Errorf("default_level: %w", perr))
		}
	}
	if _, cerr := c.colorMode(); cerr != nil {
		err = multierr.Append(err, cerr)
	}
	for key, color := range c.Colors {
		if _, ok := formatter.ResolveKey(key); !ok {
			err = multierr.Append(err, fmt.Errorf("colors: %w: %q", core.ErrInvalidLevel, key))
		}
		if len(color) < minColorLen {
			err = multierr.Append(err, fmt.Errorf("colors.%s: %q is shorter than %d characters", key, color, minColorLen))
		}
	}
	for name, level := range c.Loggers {
		if _, perr := core.ParseLevel(level); perr != nil {
			err = multierr.Append(err, fmt.Errorf("loggers.%s: %w", name, perr))
		}
	}
	return err
}

// colorMode returns nil for "auto" and the parsed value otherwise.
func (c *Config) colorMode() (*bool, error) {
	switch strings.ToLower(c.UseColors) {
	case "", ColorsAuto:
		return nil, nil
	}
	on, err := strconv.ParseBool(c.UseColors)
	if err != nil {
		return nil, fmt.Errorf("use_colors: invalid value %q", c.UseColors)
	}
	return &on, nil
}

// Apply validates c and configures r. Defaults are applied before any
// logger is created, so the loggers named in Loggers and Console pick
// them up. r is left unchanged when Apply returns an error.
func (c *Config) Apply(r *logger.Registry) error {
	if err := c.Validate(); err != nil {
		return err
	}

	// Everything that can fail happens before r is touched
	levels := make(map[string]core.Level, len(c.Loggers))
	for name, level := range c.Loggers {
		l, err := core.ParseLevel(level)
		if err != nil {
			return fmt.Errorf("loggers.%s: %w", name, err)
		}
		levels[name] = l
	}
	var fa *fileappender.Appender
	if c.File != "" {
		var err error
		if fa, err = fileappender.New(fileappender.Config{Filename: c.File}); err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
	}

	if c.DefaultLevel != "" {
		level, _ := core.ParseLevel(c.DefaultLevel)
		r.SetDefaultLevel(level)
	}

	mode, _ := c.colorMode()
	if mode == nil {
		r.SetUseColors(consoleappender.AutoColors(os.Stdout))
	} else {
		r.SetUseColors(*mode)
	}
	for key, color := range c.Colors {
		r.SetColor(key, color)
	}

	if fa != nil {
		r.AddDefaultAppender(fa)
	}
	for _, name := range c.Console {
		r.ConsoleLogger(name)
	}
	for name, level := range levels {
		r.GetLogger(name).SetLevel(level)
	}
	return nil
}
