package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestHelpersNoopWithoutLogger(t *testing.T) {
	Logger = nil
	// Must not panic.
	Info("hello", "k", "v")
	Warn("hello")
	Debug("hello")
	Error("hello")
}

func TestSetOutputRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf, "warn")
	t.Cleanup(func() { Logger = nil })

	Info("should not appear")
	Warn("saved state unreadable", "key", "aidash_saved_articles")

	out := buf.String()
	if strings.Contains(out, "should not appear") {
		t.Errorf("info logged at warn level: %q", out)
	}
	if !strings.Contains(out, "saved state unreadable") || !strings.Contains(out, "aidash_saved_articles") {
		t.Errorf("missing warn output: %q", out)
	}
}

func TestInitCreatesDatedFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")
	if err := Init(dir, "debug"); err != nil {
		t.Fatalf("Init: %v", err)
	}
	Info("started")
	Close()

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("reading log dir: %v", err)
	}
	if len(entries) != 1 || !strings.HasPrefix(entries[0].Name(), "aidash-") {
		t.Fatalf("expected one aidash-*.log file, got %v", entries)
	}
}
