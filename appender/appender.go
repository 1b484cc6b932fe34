package appender

import (
	"io"
	"reflect"

	"go.uber.org/multierr"
)

// Appender receives every message a logger accepts.
//
// Append is called synchronously on the logging goroutine with the
// logger's name, the lowercase level name and the call's arguments in
// order. Implementations must not retain args after returning and must be
// safe for concurrent use when shared between loggers.
//
// Appenders are deduplicated by identity (see Same). Func-typed appenders
// have no identity and must be wrapped with Func to be deduplicated.
type Appender interface {
	Append(loggerName, levelName string, args []any)
}

// funcAppender gives a plain function a stable identity so that adding the
// same Func value twice is recognised as a duplicate.
type funcAppender struct {
	fn func(loggerName, levelName string, args []any)
}

func (f *funcAppender) Append(loggerName, levelName string, args []any) {
	f.fn(loggerName, levelName, args)
}

// Func adapts an ordinary function to the Appender interface. Each call
// returns a distinct appender; keep the result to add it in several places.
func Func(fn func(loggerName, levelName string, args []any)) Appender {
	return &funcAppender{fn: fn}
}

// Same reports whether a and b are the same appender. Comparable types use
// interface equality. Slice and map types are the same when they share
// their backing storage. Func types never compare equal, so a function used
// directly as an appender is added again on every call; wrap it with Func
// and keep the result instead.
func Same(a, b Appender) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	ta := reflect.TypeOf(a)
	if ta != reflect.TypeOf(b) {
		return false
	}
	if ta.Comparable() {
		return a == b
	}
	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	switch ta.Kind() {
	case reflect.Slice:
		return va.Pointer() == vb.Pointer() && va.Len() == vb.Len()
	case reflect.Map:
		return va.Pointer() == vb.Pointer()
	}
	return false
}

// Close closes every distinct appender that implements io.Closer and
// returns the combined error.
func Close(appenders ...Appender) error {
	var err error
	seen := make([]Appender, 0, len(appenders))
	for _, a := range appenders {
		if a == nil || indexOf(seen, a) >= 0 {
			continue
		}
		seen = append(seen, a)
		if c, ok := a.(io.Closer); ok {
			err = multierr.Append(err, c.Close())
		}
	}
	return err
}

func indexOf(list []Appender, a Appender) int {
	for i, x := range list {
		if Same(x, a) {
			return i
		}
	}
	return -1
}
