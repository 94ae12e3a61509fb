package logger

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// DefaultPath is the log file used when none is configured, relative to the working directory.
const DefaultPath = "logs/triangles.txt"

// Logger writes structured records to an output stream (normally stderr), keeps them in
// memory and appends them to a file on disk.
type Logger struct {
	mu    sync.Mutex
	lines []string
	path  string
	out   io.Writer
	slog  *slog.Logger
}

// New returns a Logger that appends to path and mirrors every record to out.
// The log directory is created if missing; an empty path disables the file.
func New(path string, out io.Writer) *Logger {
	if path != "" {
		_ = os.MkdirAll(filepath.Dir(path), 0755)
	}
	if out == nil {
		out = io.Discard
	}
	l := &Logger{lines: make([]string, 0), path: path, out: out}
	l.slog = slog.New(slog.NewTextHandler(l, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return l
}

// Write receives formatted records from the slog handler.
func (l *Logger) Write(p []byte) (int, error) {
	line := strings.TrimRight(string(p), "\n")

	l.mu.Lock()
	l.lines = append(l.lines, line)
	l.mu.Unlock()

	if l.path != "" {
		if f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644); err == nil {
			_, _ = f.WriteString(line + "\n")
			_ = f.Close()
		}
	}
	return l.out.Write(p)
}

// Log records a plain informational line.
func (l *Logger) Log(line string) {
	l.slog.Info(line)
}

func (l *Logger) Debug(msg string, args ...any) { l.slog.Debug(msg, args...) }
func (l *Logger) Info(msg string, args ...any)  { l.slog.Info(msg, args...) }
func (l *Logger) Warn(msg string, args ...any)  { l.slog.Warn(msg, args...) }
func (l *Logger) Error(msg string, args ...any) { l.slog.Error(msg, args...) }

// Slog exposes the underlying structured logger.
func (l *Logger) Slog() *slog.Logger {
	return l.slog
}

// Lines returns a copy of all stored lines.
func (l *Logger) Lines() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]string, len(l.lines))
	copy(out, l.lines)
	return out
}
