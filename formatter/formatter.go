package formatter

import (
	"bytes"
	"io"

	"github.com/philipp01105/simplylog/core"
)

// Formatter turns an entry into one output line, newline included.
type Formatter interface {
	Format(entry *core.Entry) ([]byte, error)
}

// WriterFormatter is implemented by formatters that can write a line
// straight to w. File appenders prefer it.
type WriterFormatter interface {
	FormatTo(entry *core.Entry, w io.Writer) error
}

// BufferFormatter is implemented by formatters that can append a line to
// a buffer the caller owns. Console appenders prefer it.
type BufferFormatter interface {
	FormatEntry(entry *core.Entry, buf *bytes.Buffer)
}

// Config holds formatter settings
type Config struct {
	// TimestampFormat is a time layout written before the prefix; empty
	// means no timestamp
	TimestampFormat string
	// Palette supplies the prefix colour per level (default: DefaultPalette())
	Palette *Palette
	// Colors is asked on every entry whether to colour the prefix, so a
	// registry-wide switch applies at once (default: never)
	Colors func() bool
}

func never() bool { return false }

// applyDefaults fills in zero-value fields with defaults.
func applyDefaults(cfg *Config) {
	if cfg.Palette == nil {
		cfg.Palette = DefaultPalette()
	}
	if cfg.Colors == nil {
		cfg.Colors = never
	}
}
