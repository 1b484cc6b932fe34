package fileappender

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/multierr"

	"github.com/philipp01105/simplylog/core"
	"github.com/philipp01105/simplylog/formatter"
)

// ErrClosed is reported by Close when the appender was already closed.
var ErrClosed = errors.New("file appender closed")

// Config holds configuration for the file appender
type Config struct {
	// Filename is the path of the log file. Parent directories are created.
	Filename string
	// Formatter to use (default: TextFormatter with RFC3339 timestamps)
	Formatter formatter.Formatter
	// Perm is the mode used when creating the file (default: 0644)
	Perm os.FileMode
}

// applyDefaults fills in zero-value fields with defaults.
func applyDefaults(cfg *Config) {
	if cfg.Formatter == nil {
		cfg.Formatter = formatter.NewTextFormatter(formatter.Config{TimestampFormat: time.RFC3339})
	}
	if cfg.Perm == 0 {
		cfg.Perm = 0644
	}
}

// Appender appends one line per message to a file. Every line is written
// straight through to the file; nothing is buffered.
type Appender struct {
	mu              sync.Mutex
	file            *os.File
	formatter       formatter.Formatter
	writerFormatter formatter.WriterFormatter
	size            int64
	closed          bool
	writeErrors     atomic.Uint64
}

// New opens (or creates) the file in append mode.
func New(cfg Config) (*Appender, error) {
	if cfg.Filename == "" {
		return nil, errors.New("fileappender: filename is required")
	}
	applyDefaults(&cfg)

	if err := os.MkdirAll(filepath.Dir(cfg.Filename), 0755); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}
	file, err := os.OpenFile(cfg.Filename, os.O_CREATE|os.O_WRONLY|os.O_APPEND, cfg.Perm)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	info, err := file.Stat()
	if err != nil {
		file.Close()
		return nil, fmt.Errorf("stat log file: %w", err)
	}

	a := &Appender{
		file:      file,
		formatter: cfg.Formatter,
		size:      info.Size(),
	}
	a.writerFormatter, _ = cfg.Formatter.(formatter.WriterFormatter)
	return a, nil
}

// Append writes the message. After Close, messages are dropped.
func (a *Appender) Append(loggerName, levelName string, args []any) {
	entry := core.NewEntry(loggerName, levelName, args)

	a.mu.Lock()
	defer a.mu.Unlock()
	if a.closed {
		return
	}

	var err error
	if a.writerFormatter != nil {
		w := sizeWriter{a}
		err = a.writerFormatter.FormatTo(&entry, w)
	} else {
		var data []byte
		if data, err = a.formatter.Format(&entry); err == nil {
			var n int
			n, err = a.file.Write(data)
			a.size += int64(n)
		}
	}
	if err != nil {
		a.writeErrors.Add(1)
	}
}

// sizeWriter tracks bytes written while a.mu is held
type sizeWriter struct{ a *Appender }

func (w sizeWriter) Write(p []byte) (int, error) {
	n, err := w.a.file.Write(p)
	w.a.size += int64(n)
	return n, err
}

// Size returns the current size of the file in bytes.
func (a *Appender) Size() int64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.size
}

// WriteErrors returns the number of messages lost to write failures.
func (a *Appender) WriteErrors() uint64 {
	return a.writeErrors.Load()
}

// Close syncs and closes the file.
func (a *Appender) Close() error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.closed {
		return ErrClosed
	}
	a.closed = true
	syncErr := a.file.Sync()
	closeErr := a.file.Close()
	return multierr.Combine(syncErr, closeErr)
}
