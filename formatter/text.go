package formatter

import (
	"bytes"
	"io"
	"sync"

	"github.com/philipp01105/simplylog/core"
)

// maxPooledLine bounds the buffers kept for reuse
const maxPooledLine = 64 << 10

var linePool = sync.Pool{
	New: func() any {
		return bytes.NewBuffer(make([]byte, 0, 256))
	},
}

func getLine() *bytes.Buffer {
	buf := linePool.Get().(*bytes.Buffer)
	buf.Reset()
	return buf
}

func putLine(buf *bytes.Buffer) {
	if buf.Cap() <= maxPooledLine {
		linePool.Put(buf)
	}
}

// TextFormatter renders entries as "<name>:<level> -> args", one per line
type TextFormatter struct {
	Config
	styler *styler
}

// NewTextFormatter creates a new text formatter
func NewTextFormatter(cfg Config) *TextFormatter {
	applyDefaults(&cfg)
	return &TextFormatter{Config: cfg, styler: newStyler()}
}

// Format formats an entry as text
func (f *TextFormatter) Format(entry *core.Entry) ([]byte, error) {
	buf := getLine()
	defer putLine(buf)

	f.FormatEntry(entry, buf)

	// Copy buffer content to return
	result := make([]byte, buf.Len())
	copy(result, buf.Bytes())
	return result, nil
}

// FormatTo formats an entry and writes it directly to the writer
func (f *TextFormatter) FormatTo(entry *core.Entry, w io.Writer) error {
	buf := getLine()

	f.FormatEntry(entry, buf)

	_, err := w.Write(buf.Bytes())
	putLine(buf)
	return err
}

// FormatEntry writes the formatted entry into the given buffer
func (f *TextFormatter) FormatEntry(entry *core.Entry, buf *bytes.Buffer) {
	if f.TimestampFormat != "" {
		buf.Write(entry.Time.AppendFormat(buf.AvailableBuffer(), f.TimestampFormat))
		buf.WriteByte(' ')
	}

	f.writePrefix(entry, buf)

	if len(entry.Args) > 0 {
		buf.WriteByte(' ')
		core.AppendArgs(buf, entry.Args)
	}

	buf.WriteByte('\n')
}

// Prefix returns the plain "<name>:<level> ->" prefix for an entry.
func Prefix(name, level string) string {
	return name + ":" + level + " ->"
}

func (f *TextFormatter) writePrefix(entry *core.Entry, buf *bytes.Buffer) {
	prefix := Prefix(entry.Logger, entry.Level)
	if !f.Colors() {
		buf.WriteString(prefix)
		return
	}
	// A level without a palette entry falls back to plain text
	color, ok := f.Palette.Color(entry.Level)
	if !ok {
		buf.WriteString(prefix)
		return
	}
	buf.WriteString(f.styler.render(color, prefix))
}
