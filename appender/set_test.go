package appender_test

import (
	"errors"
	"testing"

	"github.com/philipp01105/simplylog/appender"
	"github.com/philipp01105/simplylog/appender/appendertest"
	"github.com/philipp01105/simplylog/core"
)

type closeErr struct{ err error }

func (c *closeErr) Append(string, string, []any) {}
func (c *closeErr) Close() error                 { return c.err }

func TestSet_AddIsIdempotent(t *testing.T) {
	r := appendertest.NewRecorder()
	s := appender.NewSet()

	if !s.Add(r) {
		t.Error("First Add should insert")
	}
	if s.Add(r) {
		t.Error("Second Add of the same appender should be a no-op")
	}
	if s.Add(nil) {
		t.Error("Adding nil should be a no-op")
	}
	if s.Len() != 1 {
		t.Errorf("Expected 1 appender, got %d", s.Len())
	}

	s.Dispatch("svc", core.InfoLevel, []any{"hello"}, nil)
	if r.Len() != 1 {
		t.Errorf("Expected exactly one call, got %d", r.Len())
	}
}

func TestSet_PreservesInsertionOrder(t *testing.T) {
	var order []string
	a := appender.Func(func(string, string, []any) { order = append(order, "a") })
	b := appender.Func(func(string, string, []any) { order = append(order, "b") })
	c := appender.Func(func(string, string, []any) { order = append(order, "c") })

	s := appender.NewSet(b, a)
	s.Add(c)
	s.Add(b)

	s.Dispatch("svc", core.ErrorLevel, nil, nil)
	want := "bac"
	got := ""
	for _, o := range order {
		got += o
	}
	if got != want {
		t.Errorf("Dispatch order = %q, want %q", got, want)
	}
}

func TestSet_FuncIdentity(t *testing.T) {
	fn := func(string, string, []any) {}
	f1 := appender.Func(fn)
	f2 := appender.Func(fn)

	s := appender.NewSet(f1, f1, f2)
	if s.Len() != 2 {
		t.Errorf("Expected distinct Func wrappers to be kept apart, got %d", s.Len())
	}
	if !s.Contains(f1) || !s.Contains(f2) {
		t.Error("Expected both wrappers in the set")
	}
}

func TestSet_DispatchIsolatesPanics(t *testing.T) {
	before := appendertest.NewRecorder()
	after := appendertest.NewRecorder()
	stats := appender.NewStats()

	s := appender.NewSet(before, &appendertest.Panicking{}, after)
	s.Dispatch("svc", core.WarnLevel, []any{"x"}, stats)

	if before.Len() != 1 || after.Len() != 1 {
		t.Errorf("Expected siblings of a failing appender to run, got %d and %d", before.Len(), after.Len())
	}
	if stats.GetDelivered(core.WarnLevel) != 2 {
		t.Errorf("Expected 2 deliveries, got %d", stats.GetDelivered(core.WarnLevel))
	}
	if stats.GetFailed(core.WarnLevel) != 1 {
		t.Errorf("Expected 1 failure, got %d", stats.GetFailed(core.WarnLevel))
	}
}

func TestSet_SnapshotIsACopy(t *testing.T) {
	r := appendertest.NewRecorder()
	s := appender.NewSet(r)

	snap := s.Snapshot()
	snap[0] = nil
	if !s.Contains(r) {
		t.Error("Mutating a snapshot must not change the set")
	}
}

func TestSame(t *testing.T) {
	r1 := appendertest.NewRecorder()
	r2 := appendertest.NewRecorder()

	if !appender.Same(r1, r1) {
		t.Error("Expected appender to be the same as itself")
	}
	if appender.Same(r1, r2) {
		t.Error("Expected distinct recorders to differ")
	}
	if appender.Same(r1, nil) {
		t.Error("Expected nil to differ from a recorder")
	}
}

// lineBuffer is a slice-typed appender, which Go cannot compare with ==.
type lineBuffer []string

func (b lineBuffer) Append(_, levelName string, _ []any) {
	if len(b) > 0 {
		b[0] = levelName
	}
}

// lineIndex is a map-typed appender.
type lineIndex map[string]int

func (m lineIndex) Append(_, levelName string, _ []any) {
	m[levelName]++
}

func TestSame_NonComparable(t *testing.T) {
	buf := make(lineBuffer, 1)
	idx := lineIndex{}

	tests := []struct {
		name string
		a, b appender.Appender
		want bool
	}{
		{"same slice", buf, buf, true},
		{"other slice", buf, make(lineBuffer, 1), false},
		{"same map", idx, idx, true},
		{"other map", idx, lineIndex{}, false},
		{"slice and map", buf, idx, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := appender.Same(tt.a, tt.b); got != tt.want {
				t.Errorf("Same() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSet_AddSliceAppenderTwice(t *testing.T) {
	buf := make(lineBuffer, 1)
	idx := lineIndex{}
	s := appender.NewSet()

	s.Add(buf)
	s.Add(buf)
	s.Add(idx)
	s.Add(idx)

	if s.Len() != 2 {
		t.Errorf("Expected 2 appenders, got %d", s.Len())
	}
	if !s.Contains(buf) || !s.Contains(idx) {
		t.Error("Expected set to contain both appenders")
	}
}

func TestClose(t *testing.T) {
	r := appendertest.NewRecorder()
	errA := errors.New("a")
	errB := errors.New("b")

	err := appender.Close(r, r, &closeErr{errA}, &closeErr{errB}, &appendertest.Panicking{})
	if !r.Closed() {
		t.Error("Expected recorder to be closed")
	}
	if !errors.Is(err, errA) || !errors.Is(err, errB) {
		t.Errorf("Expected combined error, got %v", err)
	}
}

func TestStats_Snapshot(t *testing.T) {
	stats := appender.NewStats()
	stats.IncrementDelivered(core.InfoLevel)
	stats.IncrementDelivered(core.ErrorLevel)
	stats.IncrementFailed(core.TraceLevel)
	stats.IncrementDelivered(core.OffLevel) // ignored

	snap := stats.GetSnapshot()
	if snap.DeliveredTotal != 2 || snap.FailedTotal != 1 {
		t.Errorf("Unexpected totals: %+v", snap)
	}
	if snap.Delivered[core.InfoLevel] != 1 {
		t.Errorf("Expected 1 info delivery, got %d", snap.Delivered[core.InfoLevel])
	}

	stats.Reset()
	if stats.GetSnapshot().DeliveredTotal != 0 {
		t.Error("Expected counters to reset")
	}

	var nilStats *appender.Stats
	nilStats.IncrementDelivered(core.InfoLevel)
	if nilStats.GetDelivered(core.InfoLevel) != 0 {
		t.Error("Expected nil Stats to record nothing")
	}
}

func BenchmarkSet_Dispatch(b *testing.B) {
	noop := appender.Func(func(string, string, []any) {})
	s := appender.NewSet(noop, appender.Func(func(string, string, []any) {}))
	args := []any{"message"}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s.Dispatch("bench", core.InfoLevel, args, nil)
	}
}
