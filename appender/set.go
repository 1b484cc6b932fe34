package appender

import (
	"sync"
	"sync/atomic"

	"github.com/philipp01105/simplylog/core"
)

// Set is an insertion-ordered collection of distinct appenders.
//
// Writers copy the list under a mutex and publish the new slice atomically,
// so Dispatch iterates a stable snapshot without locking and a concurrent
// Add never disturbs an in-flight dispatch.
type Set struct {
	mu   sync.Mutex
	list atomic.Pointer[[]Appender]
}

// NewSet creates a set holding the given appenders in order, skipping
// duplicates and nils.
func NewSet(appenders ...Appender) *Set {
	s := &Set{}
	list := make([]Appender, 0, len(appenders))
	for _, a := range appenders {
		if a != nil && indexOf(list, a) < 0 {
			list = append(list, a)
		}
	}
	s.list.Store(&list)
	return s
}

func (s *Set) load() []Appender {
	if p := s.list.Load(); p != nil {
		return *p
	}
	return nil
}

// Add appends a at the end unless it is nil or already present.
// It reports whether the set changed.
func (s *Set) Add(a Appender) bool {
	if a == nil {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	cur := s.load()
	if indexOf(cur, a) >= 0 {
		return false
	}
	next := make([]Appender, len(cur), len(cur)+1)
	copy(next, cur)
	next = append(next, a)
	s.list.Store(&next)
	return true
}

// Contains reports whether a is in the set.
func (s *Set) Contains(a Appender) bool {
	return indexOf(s.load(), a) >= 0
}

// Len returns the number of appenders.
func (s *Set) Len() int {
	return len(s.load())
}

// Snapshot returns a copy of the appenders in insertion order.
func (s *Set) Snapshot() []Appender {
	cur := s.load()
	out := make([]Appender, len(cur))
	copy(out, cur)
	return out
}

// Dispatch invokes every appender in order. A panicking appender is
// recorded as a failure and does not prevent the remaining appenders from
// running. stats may be nil.
func (s *Set) Dispatch(name string, level core.Level, args []any, stats *Stats) {
	levelName := level.String()
	for _, a := range s.load() {
		if invoke(a, name, levelName, args) {
			stats.IncrementDelivered(level)
		} else {
			stats.IncrementFailed(level)
		}
	}
}

func invoke(a Appender, name, levelName string, args []any) (ok bool) {
	defer func() {
		if recover() != nil {
			ok = false
		}
	}()
	a.Append(name, levelName, args)
	return true
}
