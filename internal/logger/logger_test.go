package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoggerWritesEverywhere(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "triangles.txt")
	var out bytes.Buffer
	l := New(path, &out)

	l.Log("setup done")
	l.Error("window creation failed", "err", "no display")

	lines := l.Lines()
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2: %q", len(lines), lines)
	}
	if !strings.Contains(lines[0], "level=INFO") || !strings.Contains(lines[0], `msg="setup done"`) {
		t.Errorf("line 0 = %q", lines[0])
	}
	if !strings.Contains(lines[1], "level=ERROR") || !strings.Contains(lines[1], `err="no display"`) {
		t.Errorf("line 1 = %q", lines[1])
	}

	if got := out.String(); !strings.Contains(got, "window creation failed") {
		t.Errorf("stream output missing error record: %q", got)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if got := strings.Split(strings.TrimSpace(string(data)), "\n"); len(got) != 2 || got[1] != lines[1] {
		t.Errorf("file lines = %q, want %q", got, lines)
	}
}

func TestLinesReturnsCopy(t *testing.T) {
	l := New("", nil)
	l.Info("one")
	lines := l.Lines()
	lines[0] = "changed"
	if l.Lines()[0] == "changed" {
		t.Fatal("Lines must return a copy")
	}
}
