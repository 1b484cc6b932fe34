// Package core defines the shared types used across simplylog.
//
// It provides the Level table used for threshold filtering, the Entry type
// that formatters consume, and the console-style rendering of the variadic
// arguments passed to a log call.
//
// Levels are ranked so that a higher rank is more verbose:
//
//	OffLevel < ErrorLevel(1) < InfoLevel(2) < WarnLevel(3) < DebugLevel(4) < TraceLevel(5)
//
// A logger with threshold T accepts every level whose rank is at or below
// T, so raising the threshold exposes strictly more output. OffLevel sits
// below every real rank and therefore rejects everything.
//
// Level names are parsed case-insensitively. Unknown names are reported
// with ErrInvalidLevel; an invalid Level value is never logged.
//
// The optional coarse clock caches time.Now every 500µs for appenders
// that stamp entries on a hot path.
package core
