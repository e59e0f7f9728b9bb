package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewLoggerLevels(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, logLevel(false))

	logger.Debug("hidden")
	logger.Info("game over", "score", 300)

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("debug line logged at info level: %q", out)
	}
	if !strings.Contains(out, "game over") || !strings.Contains(out, "score=300") {
		t.Errorf("info line missing: %q", out)
	}

	buf.Reset()
	newLogger(&buf, logLevel(true)).Debug("lines cleared")
	if !strings.Contains(buf.String(), "lines cleared") {
		t.Errorf("verbose logger should emit debug lines: %q", buf.String())
	}
}

func TestOpenLoggerWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "blockfall.log")

	logger, closeFn, err := openLogger(path, io.Discard, false)
	if err != nil {
		t.Fatalf("openLogger() error = %v", err)
	}
	logger.Info("session started")
	closeFn()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "session started") {
		t.Errorf("log file = %q", data)
	}
}

func TestOpenLoggerBadPath(t *testing.T) {
	_, _, err := openLogger(filepath.Join(t.TempDir(), "missing", "x.log"), io.Discard, false)
	if err == nil {
		t.Error("expected error for unwritable path")
	}
}
