package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func run(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := NewRootCommand()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(append(args, "--env-file="))
	err = cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestEmit_Console(t *testing.T) {
	tests := []struct {
		name       string
		args       []string
		wantStdout string
		wantStderr string
	}{
		{
			name:       "info to stdout",
			args:       []string{"emit", "--logger", "svc", "ready", "on", "8080"},
			wantStdout: "svc:info -> ready on 8080\n",
		},
		{
			name:       "error to stderr",
			args:       []string{"emit", "-l", "svc", "--level", "ERROR", "lost", "connection"},
			wantStderr: "svc:error -> lost connection\n",
		},
		{
			name:       "rejected level is reported",
			args:       []string{"emit", "--logger", "svc", "--level", "trace", "detail"},
			wantStdout: "simplylog:info -> dropped trace message for svc at threshold info\n",
		},
		{
			name:       "default level flag",
			args:       []string{"emit", "--log-level", "trace", "--level", "trace", "detail"},
			wantStdout: "cli:trace -> detail\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("SIMPLYLOG_LEVEL", "info")
			t.Setenv("SIMPLYLOG_COLORS", "false")

			stdout, stderr, err := run(t, tt.args...)
			if err != nil {
				t.Fatalf("Execute: %v", err)
			}
			if stdout != tt.wantStdout {
				t.Errorf("stdout = %q, want %q", stdout, tt.wantStdout)
			}
			if stderr != tt.wantStderr {
				t.Errorf("stderr = %q, want %q", stderr, tt.wantStderr)
			}
		})
	}
}

func TestEmit_Sinks(t *testing.T) {
	tests := []struct {
		sink string
		want []string
	}{
		{"zap", []string{"ERROR", "disk full", `"logger": "svc"`}},
		{"zerolog", []string{"ERR", "disk full", "logger=svc"}},
		{"logrus", []string{"level=error", `msg="disk full"`, "logger=svc"}},
		{"charm", []string{"ERRO", "disk full", "logger=svc"}},
		{"slog", []string{"level=ERROR", `msg="disk full"`, "logger=svc"}},
	}

	for _, tt := range tests {
		t.Run(tt.sink, func(t *testing.T) {
			t.Setenv("SIMPLYLOG_COLORS", "false")

			stdout, _, err := run(t, "emit", "--sink", tt.sink, "--logger", "svc", "--level", "error", "disk", "full")
			if err != nil {
				t.Fatalf("Execute: %v", err)
			}
			for _, w := range tt.want {
				if !strings.Contains(stdout, w) {
					t.Errorf("output %q does not contain %q", stdout, w)
				}
			}
		})
	}
}

func TestEmit_Errors(t *testing.T) {
	t.Setenv("SIMPLYLOG_COLORS", "false")

	if _, _, err := run(t, "emit", "--sink", "syslog", "x"); err == nil || !strings.Contains(err.Error(), "unknown sink") {
		t.Errorf("expected unknown sink error, got %v", err)
	}
	if _, _, err := run(t, "emit", "--level", "loud", "x"); err == nil {
		t.Error("expected invalid level error")
	}
	if _, _, err := run(t, "emit", "--config", "missing.yaml", "x"); err == nil {
		t.Error("expected missing config error")
	}
}

func TestEmit_ConfigFile(t *testing.T) {
	t.Setenv("SIMPLYLOG_COLORS", "false")
	path := filepath.Join(t.TempDir(), "simplylog.yaml")
	content := "default_level: warn\nloggers:\n  db: trace\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to create temp file: %v", err)
	}

	stdout, _, err := run(t, "emit", "--config", path, "--logger", "db", "--level", "debug", "query")
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if stdout != "db:debug -> query\n" {
		t.Errorf("stdout = %q", stdout)
	}
}

func TestLevels(t *testing.T) {
	t.Setenv("SIMPLYLOG_COLORS", "false")

	stdout, _, err := run(t, "levels")
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	for _, w := range []string{"RANK", "error", "#F00", "warn", "#FF0", "trace", "#00F", "off"} {
		if !strings.Contains(stdout, w) {
			t.Errorf("output does not contain %q:\n%s", w, stdout)
		}
	}
}

func openFiles(t *testing.T) int {
	t.Helper()
	fds, err := os.ReadDir("/proc/self/fd")
	if err != nil {
		t.Skipf("cannot list open files: %v", err)
	}
	return len(fds)
}

func TestLevels_ClosesLogFile(t *testing.T) {
	t.Setenv("SIMPLYLOG_COLORS", "false")
	dir := t.TempDir()

	// Warm up so lazily opened descriptors are not counted
	if _, _, err := run(t, "levels", "--log-file", filepath.Join(dir, "warm.log")); err != nil {
		t.Fatalf("Execute: %v", err)
	}

	before := openFiles(t)
	for i := 0; i < 3; i++ {
		path := filepath.Join(dir, "levels.log")
		if _, _, err := run(t, "levels", "--log-file", path); err != nil {
			t.Fatalf("Execute: %v", err)
		}
		if _, err := os.Stat(path); err != nil {
			t.Fatalf("log file not created: %v", err)
		}
	}
	if after := openFiles(t); after > before {
		t.Errorf("open files grew from %d to %d", before, after)
	}
}

