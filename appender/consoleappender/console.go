package consoleappender

import (
	"bytes"
	"io"
	"sync"
	"sync/atomic"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"

	"github.com/philipp01105/simplylog/core"
	"github.com/philipp01105/simplylog/formatter"
)

// Config holds configuration for the console appender
type Config struct {
	// Writer receives info, debug and trace lines (default: stdout)
	Writer io.Writer
	// ErrWriter receives error and warn lines (default: stderr)
	ErrWriter io.Writer
	// Formatter to use (default: TextFormatter built from Palette and Colors)
	Formatter formatter.Formatter
	// Palette for coloured prefixes (default: formatter.DefaultPalette())
	Palette *formatter.Palette
	// Colors is consulted on every line; nil means never colour
	Colors func() bool
}

// applyDefaults fills in zero-value fields with defaults.
func applyDefaults(cfg *Config) {
	if cfg.Writer == nil {
		cfg.Writer = colorable.NewColorableStdout()
	}
	if cfg.ErrWriter == nil {
		cfg.ErrWriter = colorable.NewColorableStderr()
	}
	if cfg.Palette == nil {
		cfg.Palette = formatter.DefaultPalette()
	}
	if cfg.Formatter == nil {
		cfg.Formatter = formatter.NewTextFormatter(formatter.Config{
			Palette: cfg.Palette,
			Colors:  cfg.Colors,
		})
	}
}

// Appender writes one formatted line per message to the console
type Appender struct {
	writer          io.Writer
	errWriter       io.Writer
	formatter       formatter.Formatter
	bufferFormatter formatter.BufferFormatter
	mu              sync.Mutex // protects buf and both writers
	buf             bytes.Buffer
	written         atomic.Uint64
	writeErrors     atomic.Uint64
}

// New creates a console appender
func New(cfg Config) *Appender {
	applyDefaults(&cfg)
	a := &Appender{
		writer:    cfg.Writer,
		errWriter: cfg.ErrWriter,
		formatter: cfg.Formatter,
	}
	// Cache BufferFormatter to format into the appender-owned buffer
	a.bufferFormatter, _ = cfg.Formatter.(formatter.BufferFormatter)
	a.buf.Grow(256)
	return a
}

// Append formats the message and writes it. Errors and warnings go to
// the error writer. A failed write drops the line.
func (a *Appender) Append(loggerName, levelName string, args []any) {
	entry := core.NewEntry(loggerName, levelName, args)
	w := a.writer
	switch levelName {
	case "error", "warn":
		w = a.errWriter
	}

	var err error
	if a.bufferFormatter != nil {
		a.mu.Lock()
		a.buf.Reset()
		a.bufferFormatter.FormatEntry(&entry, &a.buf)
		_, err = w.Write(a.buf.Bytes())
		a.mu.Unlock()
	} else {
		var data []byte
		data, err = a.formatter.Format(&entry)
		if err == nil {
			a.mu.Lock()
			_, err = w.Write(data)
			a.mu.Unlock()
		}
	}

	if err != nil {
		a.writeErrors.Add(1)
		return
	}
	a.written.Add(1)
}

// Written returns the number of lines written successfully.
func (a *Appender) Written() uint64 {
	return a.written.Load()
}

// WriteErrors returns the number of lines dropped because a write failed.
func (a *Appender) WriteErrors() uint64 {
	return a.writeErrors.Load()
}

// AutoColors reports whether w is a terminal that can show colours.
func AutoColors(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
