package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNew_NoPathDiscards(t *testing.T) {
	logger, closer, err := New(Options{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer closer.Close()
	logger.Info("dropped")
}

func TestNew_WritesLogfmtToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "todomatic.log")
	logger, closer, err := New(Options{Path: path, Level: "debug"})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	logger.Debug("task added", "id", "todo-1", "count", 1)
	if err := closer.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	out := string(b)
	for _, want := range []string{"task added", "id=todo-1", "count=1", "prefix=todomatic"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected log to contain %q; got:\n%s", want, out)
		}
	}
}

func TestNew_LevelFiltersDebug(t *testing.T) {
	path := filepath.Join(t.TempDir(), "todomatic.log")
	logger, closer, err := New(Options{Path: path, Level: "WARN"})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	logger.Info("quiet")
	logger.Warn("loud")
	_ = closer.Close()

	b, _ := os.ReadFile(path)
	if strings.Contains(string(b), "quiet") {
		t.Fatalf("info line should be filtered at warn level:\n%s", b)
	}
	if !strings.Contains(string(b), "loud") {
		t.Fatalf("expected warn line:\n%s", b)
	}
}

func TestNew_RejectsUnknownLevel(t *testing.T) {
	if _, _, err := New(Options{Level: "chatty"}); err == nil {
		t.Fatalf("expected error for unknown level")
	}
}

func TestNew_JSONFormatter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "todomatic.jsonl")
	logger, closer, err := New(Options{Path: path, JSON: true})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	logger.Info("filter changed", "filter", "Active")
	_ = closer.Close()

	b, _ := os.ReadFile(path)
	if !strings.Contains(string(b), `"filter":"Active"`) {
		t.Fatalf("expected JSON field in output:\n%s", b)
	}
}
