// Package appender defines the Appender contract and the machinery loggers
// use to fan an accepted message out to their appenders.
//
// An Appender is any value with an Append(loggerName, levelName, args)
// method. Plain functions are adapted with Func, which wraps the function
// in a pointer so that it has a stable identity.
//
// Set holds a logger's appenders as an insertion-ordered set keyed by
// identity: adding an appender that is already present is a no-op, and
// dispatch always follows first-insertion order. Each appender runs inside
// its own recover, so one failing appender never silences the others and
// never propagates to the logging call. Outcomes are counted in Stats.
//
// Appenders that hold resources may implement io.Closer; Close closes a
// list of appenders once each and combines their errors.
//
// Built-in appenders live in sub-packages:
//
//   - consoleappender writes "<name>:<level> -> args" lines to stdout/stderr.
//   - fileappender appends the same lines to a file.
//   - zapappender, zerologappender, logrusappender, charmappender and
//     slogappender forward messages to other logging libraries.
//   - appendertest records calls for use in tests.
package appender
