// Package logview shows recent log lines inside a Bubble Tea program.
//
// A Handler formats slog records into a shared Log; a Model renders the tail
// of that Log in a rounded frame titled with the line count. Widgets receive
// the handler through an injected *slog.Logger, never a global.
package logview

import (
	"fmt"
	"io"
	"sync"
)

// DefaultMaxLines bounds a Log created with a zero limit.
const DefaultMaxLines = 1000

// Log is an append-only, bounded list of formatted lines. Consecutive
// duplicates are dropped. It is safe for concurrent use.
type Log struct {
	mu    sync.Mutex
	lines []string
	total int
	max   int
}

// NewLog returns a Log keeping at most max lines. Zero means DefaultMaxLines.
func NewLog(max int) *Log {
	if max <= 0 {
		max = DefaultMaxLines
	}
	return &Log{max: max}
}

// Append adds line unless it repeats the previous line, and reports whether
// it was added.
func (l *Log) Append(line string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	if n := len(l.lines); n > 0 && l.lines[n-1] == line {
		return false
	}
	l.lines = append(l.lines, line)
	if len(l.lines) > l.max {
		l.lines = l.lines[len(l.lines)-l.max:]
	}
	l.total++
	return true
}

// Len returns the number of lines appended so far, including lines that were
// evicted by the limit.
func (l *Log) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.total
}

// Tail returns up to n of the most recent lines, oldest first.
func (l *Log) Tail(n int) []string {
	l.mu.Lock()
	defer l.mu.Unlock()

	if n <= 0 {
		return nil
	}
	if n > len(l.lines) {
		n = len(l.lines)
	}
	out := make([]string, n)
	copy(out, l.lines[len(l.lines)-n:])
	return out
}

// Lines returns a copy of every retained line, oldest first.
func (l *Log) Lines() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]string, len(l.lines))
	copy(out, l.lines)
	return out
}

// WriteTo writes every retained line followed by a newline.
func (l *Log) WriteTo(w io.Writer) (int64, error) {
	lines := l.Lines()
	var written int64
	for _, line := range lines {
		n, err := fmt.Fprintln(w, line)
		written += int64(n)
		if err != nil {
			return written, fmt.Errorf("write log line: %w", err)
		}
	}
	return written, nil
}
