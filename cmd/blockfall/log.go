package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// newLogger creates a logger with timestamps at the given level.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
		Prefix:          "blockfall",
	})
}

func logLevel(verbose bool) log.Level {
	if verbose {
		return log.DebugLevel
	}
	return log.InfoLevel
}

// openLogger returns the logger for a command. Logs go to path when set;
// otherwise to fallback. Interactive commands pass io.Discard as fallback
// because the UI owns the terminal.
func openLogger(path string, fallback io.Writer, verbose bool) (*log.Logger, func(), error) {
	if path == "" {
		return newLogger(fallback, logLevel(verbose)), func() {}, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return newLogger(f, logLevel(verbose)), func() { f.Close() }, nil
}
