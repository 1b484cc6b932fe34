package benchmark

import (
	"bytes"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/philipp01105/simplylog/appender"
	"github.com/philipp01105/simplylog/appender/fileappender"
	"github.com/philipp01105/simplylog/core"
	"github.com/philipp01105/simplylog/formatter"
	"github.com/philipp01105/simplylog/logger"
)

// discardWriter is a no-op writer for benchmarking
type discardWriter struct{}

func (w discardWriter) Write(p []byte) (int, error) {
	return len(p), nil
}

var sinkBool bool

func newRegistry(cfg logger.RegistryConfig) *logger.Registry {
	cfg.Writer = discardWriter{}
	cfg.ErrWriter = discardWriter{}
	return logger.NewRegistry(cfg)
}

// Benchmark get-or-create of a new name
func BenchmarkRegistryCreate(b *testing.B) {
	r := newRegistry(logger.RegistryConfig{})
	names := make([]string, b.N)
	for i := range names {
		names[i] = fmt.Sprintf("logger-%d", i)
	}

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		_ = r.GetLogger(names[i])
	}
}

// Benchmark lookup of an existing name
func BenchmarkRegistryLookup(b *testing.B) {
	r := newRegistry(logger.RegistryConfig{})
	r.ConsoleLogger("svc")

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		_ = r.ConsoleLogger("svc")
	}
}

// Benchmark concurrent lookups of a few hot names
func BenchmarkRegistryParallelLookup(b *testing.B) {
	r := newRegistry(logger.RegistryConfig{})
	names := []string{"api", "db", "cache", "queue"}

	b.ResetTimer()
	b.ReportAllocs()

	b.RunParallel(func(pb *testing.PB) {
		i := 0
		for pb.Next() {
			_ = r.GetLogger(names[i%len(names)])
			i++
		}
	})
}

func BenchmarkInfoNoArgs(b *testing.B) {
	log := newRegistry(logger.RegistryConfig{}).ConsoleLogger("bench")

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		log.Info("test message")
	}
}

// Benchmark argument rendering by type
func BenchmarkArgTypes(b *testing.B) {
	err := errors.New("connection refused")
	now := time.Now()
	tests := []struct {
		name string
		args []any
	}{
		{"String", []any{"value"}},
		{"Int", []any{42}},
		{"Float", []any{3.14159}},
		{"Bool", []any{true}},
		{"Error", []any{err}},
		{"Duration", []any{150 * time.Millisecond}},
		{"Time", []any{now}},
		{"Struct", []any{struct{ A, B int }{1, 2}}},
		{"Mixed5", []any{"GET", "/api/users", 200, 1.5, err}},
	}

	for _, tt := range tests {
		b.Run(tt.name, func(b *testing.B) {
			log := newRegistry(logger.RegistryConfig{}).ConsoleLogger("bench")

			b.ResetTimer()
			b.ReportAllocs()

			for i := 0; i < b.N; i++ {
				log.Info(tt.args...)
			}
		})
	}
}

// Benchmark rejected calls at every level below the threshold
func BenchmarkDisabledLevels(b *testing.B) {
	log := newRegistry(logger.RegistryConfig{DefaultLevel: core.ErrorLevel}).ConsoleLogger("bench")

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		log.Info("skipped", i)
		log.Warn("skipped", i)
		log.Debug("skipped", i)
		log.Trace("skipped", i)
	}
}

// Benchmark an OFF logger
func BenchmarkOffLogger(b *testing.B) {
	log := newRegistry(logger.RegistryConfig{DefaultLevel: core.OffLevel}).ConsoleLogger("bench")

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		log.Error("skipped")
	}
}

func BenchmarkIsLogged(b *testing.B) {
	log := newRegistry(logger.RegistryConfig{}).GetLogger("bench")

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		sinkBool = log.IsLogged(core.DebugLevel)
	}
}

func BenchmarkFormattedLogging(b *testing.B) {
	log := newRegistry(logger.RegistryConfig{}).ConsoleLogger("bench")

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		log.Infof("User %s performed action %s", "john", "login")
	}
}

// Benchmark dispatch fan-out by appender count
func BenchmarkAppenderCount(b *testing.B) {
	for _, n := range []int{0, 1, 2, 4, 8} {
		b.Run(fmt.Sprintf("Appenders_%d", n), func(b *testing.B) {
			builder := logger.NewBuilder().WithName("bench")
			for i := 0; i < n; i++ {
				builder.WithAppenders(newNoopAppender())
			}
			log := builder.Build()

			b.ResetTimer()
			b.ReportAllocs()

			for i := 0; i < b.N; i++ {
				log.Info("fan-out")
			}
		})
	}
}

// Benchmark the cost of recovering from a failing appender
func BenchmarkPanickingAppender(b *testing.B) {
	log := logger.NewBuilder().
		WithAppenders(appender.Func(func(string, string, []any) { panic("sink down") }), newNoopAppender()).
		Build()

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		log.Error("failing")
	}
}

func BenchmarkParallel_NoopAppender(b *testing.B) {
	log := logger.NewBuilder().WithAppenders(newNoopAppender()).Build()

	b.ResetTimer()
	b.ReportAllocs()

	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			log.Info("parallel message")
		}
	})
}

func BenchmarkParallel_Console(b *testing.B) {
	log := newRegistry(logger.RegistryConfig{}).ConsoleLogger("bench")

	b.ResetTimer()
	b.ReportAllocs()

	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			log.Info("parallel message", 42)
		}
	})
}

// Benchmark coloured vs plain console prefixes
func BenchmarkColors(b *testing.B) {
	for _, on := range []bool{false, true} {
		b.Run(fmt.Sprintf("UseColors_%v", on), func(b *testing.B) {
			log := newRegistry(logger.RegistryConfig{UseColors: on}).ConsoleLogger("bench")

			b.ResetTimer()
			b.ReportAllocs()

			for i := 0; i < b.N; i++ {
				log.Info("coloured message")
			}
		})
	}
}

func BenchmarkFormatter(b *testing.B) {
	tests := []struct {
		name string
		cfg  formatter.Config
	}{
		{"Plain", formatter.Config{}},
		{"Timestamp", formatter.Config{TimestampFormat: time.RFC3339}},
		{"Colors", formatter.Config{Colors: func() bool { return true }}},
	}
	entry := core.NewEntry("bench", "info", []any{"request", 200})

	for _, tt := range tests {
		b.Run(tt.name, func(b *testing.B) {
			f := formatter.NewTextFormatter(tt.cfg)
			var buf bytes.Buffer

			b.ResetTimer()
			b.ReportAllocs()

			for i := 0; i < b.N; i++ {
				buf.Reset()
				f.FormatEntry(&entry, &buf)
			}
		})
	}
}

func BenchmarkLargeMessages(b *testing.B) {
	sizes := []int{100, 1000, 10000}
	for _, size := range sizes {
		b.Run(fmt.Sprintf("Size_%d", size), func(b *testing.B) {
			log := newRegistry(logger.RegistryConfig{}).ConsoleLogger("bench")
			msg := strings.Repeat("x", size)

			b.ResetTimer()
			b.ReportAllocs()

			for i := 0; i < b.N; i++ {
				log.Info(msg)
			}
		})
	}
}

func BenchmarkFileAppender(b *testing.B) {
	fa, err := fileappender.New(fileappender.Config{
		Filename: filepath.Join(b.TempDir(), "bench.log"),
	})
	if err != nil {
		b.Fatal(err)
	}
	defer fa.Close()

	log := logger.NewBuilder().WithName("bench").WithAppenders(fa).Build()

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		log.Info("file message", i)
	}
}

// Benchmark coarse clock vs standard clock. The coarse clock cannot be
// stopped, so it runs last.
func BenchmarkZZCoarseClock_InfoNoArgs(b *testing.B) {
	tests := []struct {
		name        string
		coarseClock bool
	}{
		{"Standard", false},
		{"CoarseClock", true},
	}
	for _, tt := range tests {
		b.Run(tt.name, func(b *testing.B) {
			log := newRegistry(logger.RegistryConfig{CoarseClock: tt.coarseClock}).ConsoleLogger("bench")

			b.ResetTimer()
			b.ReportAllocs()

			for i := 0; i < b.N; i++ {
				log.Info("test message")
			}
		})
	}
}
