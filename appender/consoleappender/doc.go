// Package consoleappender provides the default console appender.
//
// Each accepted message becomes one line:
//
//	<name>:<level> -> <args>
//
// Error and warn lines are written to ErrWriter (stderr by default) and all
// other levels to Writer (stdout by default, wrapped with go-colorable so
// ANSI styling works on Windows consoles). When the Colors callback
// reports true the prefix is coloured from the Palette.
//
// Writes are serialized, so one Appender can be shared by any number of
// loggers.
package consoleappender
