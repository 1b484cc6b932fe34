// Package logger is the public API of simplylog. Most users only need to
// import this package.
//
// Loggers are obtained by name from a Registry. The first request for a
// name creates the Logger, seeded with the registry's current default
// level and default appenders; every later request returns the same
// instance:
//
//	log := logger.ConsoleLogger("api")
//	log.Info("listening on", 8080)
//
// Each Logger has a threshold. A message is accepted when its level is
// one of ERROR, INFO, WARN, DEBUG or TRACE and its rank does not exceed
// the threshold, so raising the threshold makes the logger more verbose
// and OFF silences it. Accepted messages are handed synchronously, in
// attachment order, to every Appender of the logger.
//
// The package initializes a default Registry in init(). The package-level
// functions GetLogger, ConsoleLogger, SetDefaultLevel, etc. delegate to
// it. Use NewRegistry for an isolated set of loggers, or the Builder for
// a standalone Logger that belongs to no registry:
//
//	log := logger.NewBuilder().
//	    WithName("worker").
//	    WithLevel(logger.DebugLevel).
//	    WithAppenders(myAppender).
//	    Build()
//
// Level checks happen before any formatting: a rejected Debugf never
// calls fmt.Sprintf, and IsLogged lets callers skip building expensive
// arguments altogether.
package logger
