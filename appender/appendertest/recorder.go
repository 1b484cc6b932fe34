// Package appendertest provides appenders for testing code that logs.
package appendertest

import (
	"sync"

	"github.com/philipp01105/simplylog/core"
)

// Call is one recorded Append invocation.
type Call struct {
	Logger string
	Level  string
	Args   []any
}

// Message renders the call's arguments the way the console appender would.
func (c Call) Message() string {
	return core.RenderArgs(c.Args)
}

// Recorder keeps every call it receives. It is safe for concurrent use.
type Recorder struct {
	mu     sync.Mutex
	calls  []Call
	closed bool
}

// NewRecorder returns an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Append records the call, copying args.
func (r *Recorder) Append(loggerName, levelName string, args []any) {
	cp := make([]any, len(args))
	copy(cp, args)
	r.mu.Lock()
	r.calls = append(r.calls, Call{Logger: loggerName, Level: levelName, Args: cp})
	r.mu.Unlock()
}

// Calls returns a copy of the recorded calls.
func (r *Recorder) Calls() []Call {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Call, len(r.calls))
	copy(out, r.calls)
	return out
}

// Len returns the number of recorded calls.
func (r *Recorder) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.calls)
}

// Reset forgets all recorded calls.
func (r *Recorder) Reset() {
	r.mu.Lock()
	r.calls = nil
	r.closed = false
	r.mu.Unlock()
}

// Close marks the recorder closed.
func (r *Recorder) Close() error {
	r.mu.Lock()
	r.closed = true
	r.mu.Unlock()
	return nil
}

// Closed reports whether Close has been called.
func (r *Recorder) Closed() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.closed
}

// Panicking is an appender that panics on every call.
type Panicking struct{}

// Append always panics.
func (*Panicking) Append(loggerName, levelName string, args []any) {
	panic("appendertest: appender failure")
}
