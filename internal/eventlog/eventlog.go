// Package eventlog records widget events (taps, renders, lifecycle) in
// memory and appends them to a file on disk, one timestamped line each.
package eventlog

import (
	"os"
	"path/filepath"
	"sync"
	"time"
)

// DefaultPath is where the demo writes its event log, relative to the
// working directory.
const DefaultPath = "logs/events.txt"

// Log stores event lines in memory and appends them to a file. A Log with
// an empty path keeps events in memory only.
type Log struct {
	mu    sync.Mutex
	path  string
	lines []string
}

// New returns a Log appending to path and ensures its directory exists.
// Pass an empty path for a memory-only log.
func New(path string) *Log {
	if path != "" {
		_ = os.MkdirAll(filepath.Dir(path), 0755)
	}
	return &Log{path: path}
}

// Event appends a timestamped line to the log and, when a path is set, to
// the file. File errors are swallowed: logging must never fail the host.
func (l *Log) Event(line string) {
	stamped := "[" + time.Now().Format("2006-01-02 15:04:05") + "] " + line

	l.mu.Lock()
	l.lines = append(l.lines, stamped)
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

// Lines returns a copy of all recorded lines.
func (l *Log) Lines() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]string, len(l.lines))
	copy(out, l.lines)
	return out
}
