// Package formatter defines how log entries are rendered into bytes.
//
// TextFormatter produces one line per entry:
//
//	<name>:<level> -> <args separated by spaces>
//
// optionally preceded by a timestamp. It implements Formatter,
// WriterFormatter and BufferFormatter; appenders check for the richer
// interfaces at construction time and prefer them when available.
//
// When Config.Colors reports true the "<name>:<level> ->" prefix is
// styled with the level's colour from a Palette using lipgloss. A level
// with no palette entry renders as plain text; colour lookup never fails
// a write.
//
// Palette keys accept either a case-insensitive level name ("warn") or a
// numeric rank ("3"). SetColor adds a leading '#' when it is missing and
// ignores values shorter than three characters.
package formatter
