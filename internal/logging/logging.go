// Package logging builds the process logger. A TUI owns stdout, so logs go
// to a file or nowhere.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
)

// New returns a JSON logger appending to path at the given level. An empty
// path returns a logger that discards everything. The returned close func is
// never nil.
func New(path string, level slog.Level) (*slog.Logger, func() error, error) {
	if path == "" {
		return slog.New(slog.DiscardHandler), func() error { return nil }, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return NewWriter(f, level), f.Close, nil
}

// NewWriter returns a JSON logger writing to w.
func NewWriter(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
}
