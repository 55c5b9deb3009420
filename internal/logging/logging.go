// Package logging builds the structured loggers used by the hosts.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
)

// Prefix tags every log line.
const Prefix = "tetris"

// New creates a logger writing to w at the named level
// (debug, info, warn, error, fatal).
func New(w io.Writer, level string) (*log.Logger, error) {
	if level == "" {
		level = "info"
	}
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("logging: %w", err)
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          Prefix,
		Level:           lvl,
	})
	return logger, nil
}

// Discard returns a logger that drops everything.
func Discard() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Prefix: Prefix})
}

// OpenFile creates a logger appending to path. The returned closer releases
// the file. An empty path yields a discarding logger, so terminal hosts
// never write log lines over the game screen.
func OpenFile(path, level string) (*log.Logger, io.Closer, error) {
	if path == "" {
		if _, err := log.ParseLevel(levelOrDefault(level)); err != nil {
			return nil, nil, fmt.Errorf("logging: %w", err)
		}
		return Discard(), io.NopCloser(nil), nil
	}

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, nil, fmt.Errorf("logging: cannot create %s: %w", dir, err)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("logging: cannot open %s: %w", path, err)
	}

	logger, err := New(f, level)
	if err != nil {
		f.Close()
		return nil, nil, err
	}
	return logger, f, nil
}

func levelOrDefault(level string) string {
	if level == "" {
		return "info"
	}
	return level
}
