// Package warnlog appends pipeline warnings to a persistent log file so an
// operator can review what a run skipped, and mirrors each line to slog.
package warnlog

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// Log is an append-only, timestamped warnings file.
type Log struct {
	mu  sync.Mutex
	f   *os.File
	now func() time.Time
}

// Open opens (or creates) the warnings log for appending.
func Open(path string) (*Log, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open warnings log: %w", err)
	}
	return &Log{f: f, now: time.Now}, nil
}

// Warnf records one warning line and mirrors it to slog.
func (l *Log) Warnf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	slog.Warn(msg)

	l.mu.Lock()
	defer l.mu.Unlock()
	ts := l.now().Format("2006-01-02 15:04:05")
	fmt.Fprintf(l.f, "[%s] %s\n", ts, msg)
}

// Close closes the underlying file.
func (l *Log) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.f.Close()
}
