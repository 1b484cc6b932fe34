package core

import (
	"sync"
	"sync/atomic"
	"time"
)

var (
	coarseClockOnce sync.Once
	coarseNow       atomic.Pointer[time.Time]
)

// StartCoarseClock starts a background goroutine that caches time.Now()
// every 500µs. It is safe to call multiple times; the goroutine is started
// exactly once and runs for the lifetime of the process.
func StartCoarseClock() {
	coarseClockOnce.Do(func() {
		t := time.Now()
		coarseNow.Store(&t)
		go func() {
			ticker := time.NewTicker(500 * time.Microsecond)
			for range ticker.C {
				t := time.Now()
				coarseNow.Store(&t)
			}
		}()
	})
}

// CoarseNow returns the most recently cached time, or the zero time if
// StartCoarseClock has not been called.
func CoarseNow() time.Time {
	if p := coarseNow.Load(); p != nil {
		return *p
	}
	return time.Time{}
}

// Now returns CoarseNow when the coarse clock is running and time.Now otherwise.
func Now() time.Time {
	if p := coarseNow.Load(); p != nil {
		return *p
	}
	return time.Now()
}
