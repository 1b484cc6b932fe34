package appender

import (
	"sync/atomic"

	"github.com/philipp01105/simplylog/core"
)

// Stats tracks appender deliveries per level. A nil *Stats is valid and
// records nothing.
type Stats struct {
	// indexed by level rank; slot 0 is unused
	delivered [core.TraceLevel + 1]atomic.Uint64
	failed    [core.TraceLevel + 1]atomic.Uint64
}

// NewStats creates a new Stats instance
func NewStats() *Stats {
	return &Stats{}
}

// IncrementDelivered atomically counts a successful appender call
func (s *Stats) IncrementDelivered(level core.Level) {
	if s == nil || !level.Valid() {
		return
	}
	s.delivered[level].Add(1)
}

// IncrementFailed atomically counts an appender call that panicked
func (s *Stats) IncrementFailed(level core.Level) {
	if s == nil || !level.Valid() {
		return
	}
	s.failed[level].Add(1)
}

// GetDelivered returns the delivered count for a level
func (s *Stats) GetDelivered(level core.Level) uint64 {
	if s == nil || !level.Valid() {
		return 0
	}
	return s.delivered[level].Load()
}

// GetFailed returns the failure count for a level
func (s *Stats) GetFailed(level core.Level) uint64 {
	if s == nil || !level.Valid() {
		return 0
	}
	return s.failed[level].Load()
}

// Reset resets all counters to zero
func (s *Stats) Reset() {
	if s == nil {
		return
	}
	for _, l := range core.Levels() {
		s.delivered[l].Store(0)
		s.failed[l].Store(0)
	}
}

// Snapshot is a point-in-time copy of Stats
type Snapshot struct {
	Delivered      map[core.Level]uint64
	Failed         map[core.Level]uint64
	DeliveredTotal uint64
	FailedTotal    uint64
}

// GetSnapshot returns a snapshot of current statistics
func (s *Stats) GetSnapshot() Snapshot {
	snap := Snapshot{
		Delivered: make(map[core.Level]uint64, 5),
		Failed:    make(map[core.Level]uint64, 5),
	}
	for _, l := range core.Levels() {
		d, f := s.GetDelivered(l), s.GetFailed(l)
		snap.Delivered[l] = d
		snap.Failed[l] = f
		snap.DeliveredTotal += d
		snap.FailedTotal += f
	}
	return snap
}
