// Package logger records timestamped viewer messages.
package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/muesli/termenv"
)

// DefaultPath is the viewer log file, relative to the working directory.
const DefaultPath = "logs/viewer.txt"

// maxLines bounds the in-memory history shown by the console.
const maxLines = 500

// Logger keeps recent lines in memory (for the console) and appends every line to a file.
// It is safe for use from fetch goroutines and the frame loop.
type Logger struct {
	mu    sync.Mutex
	path  string
	lines []string
	now   func() time.Time
	errs  *termenv.Output // colored when stderr is a terminal
}

// New returns a logger writing to DefaultPath.
func New() *Logger {
	return NewAt(DefaultPath)
}

// NewAt returns a logger writing to path, creating its directory. An empty path keeps lines in memory only.
func NewAt(path string) *Logger {
	if path != "" {
		_ = os.MkdirAll(filepath.Dir(path), 0755)
	}
	return &Logger{path: path, now: time.Now, errs: termenv.NewOutput(os.Stderr)}
}

// Log stores line prefixed with [timestamp] and appends it to the log file.
func (l *Logger) Log(line string) {
	stamped := "[" + l.now().Format("2006-01-02 15:04:05") + "] " + line

	l.mu.Lock()
	l.lines = append(l.lines, stamped)
	if len(l.lines) > maxLines {
		l.lines = append(l.lines[:0:0], l.lines[len(l.lines)-maxLines:]...)
	}
	path := l.path
	l.mu.Unlock()

	if path == "" {
		return
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return
	}
	_, _ = f.WriteString(stamped + "\n")
	_ = f.Close()
}

// Logf formats and logs a line.
func (l *Logger) Logf(format string, args ...any) {
	l.Log(fmt.Sprintf(format, args...))
}

// Errorf formats and logs a line prefixed with "error: " and mirrors it to stderr in red.
func (l *Logger) Errorf(format string, args ...any) {
	line := "error: " + fmt.Sprintf(format, args...)
	l.Log(line)
	fmt.Fprintln(l.errs, l.errs.String(line).Foreground(l.errs.Color("1")))
}

// Lines returns a copy of the stored lines.
func (l *Logger) Lines() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]string, len(l.lines))
	copy(out, l.lines)
	return out
}
