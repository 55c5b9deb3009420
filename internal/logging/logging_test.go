package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(&buf, "debug")
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	logger.Debug("merged", "lines", 2)
	out := buf.String()
	if !strings.Contains(out, Prefix) {
		t.Errorf("missing prefix in %q", out)
	}
	if !strings.Contains(out, "merged") || !strings.Contains(out, "lines=2") {
		t.Errorf("unexpected output %q", out)
	}
}

func TestNewFiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(&buf, "warn")
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	logger.Info("hidden")
	if buf.Len() != 0 {
		t.Errorf("info logged at warn level: %q", buf.String())
	}

	logger.Warn("shown")
	if !strings.Contains(buf.String(), "shown") {
		t.Errorf("warn not logged: %q", buf.String())
	}
}

func TestNewDefaultsToInfo(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(&buf, "")
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	logger.Debug("hidden")
	logger.Info("shown")
	if strings.Contains(buf.String(), "hidden") || !strings.Contains(buf.String(), "shown") {
		t.Errorf("unexpected output %q", buf.String())
	}
}

func TestNewRejectsUnknownLevel(t *testing.T) {
	if _, err := New(&bytes.Buffer{}, "loud"); err == nil {
		t.Error("expected error for unknown level")
	}
	if _, _, err := OpenFile("", "loud"); err == nil {
		t.Error("expected error for unknown level without a file")
	}
}

func TestOpenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "tetris.log")

	logger, closer, err := OpenFile(path, "info")
	if err != nil {
		t.Fatalf("OpenFile: %v", err)
	}
	logger.Info("session started", "mode", "tetris")
	if err := closer.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !strings.Contains(string(data), "session started") {
		t.Errorf("log file missing entry: %q", data)
	}
}

func TestOpenFileWithoutPathDiscards(t *testing.T) {
	logger, closer, err := OpenFile("", "debug")
	if err != nil {
		t.Fatalf("OpenFile: %v", err)
	}
	logger.Info("nowhere")
	if err := closer.Close(); err != nil {
		t.Errorf("Close: %v", err)
	}
}
