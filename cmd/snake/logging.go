package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/config"
)

// newLogger builds the process logger writing to w.
func newLogger(w io.Writer, level string) (*log.Logger, error) {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "snake",
	})

	if level == "" {
		return logger, nil
	}
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return logger, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	logger.SetLevel(lvl)
	return logger, nil
}

// openLogFile opens the configured log file for appending. The terminal is
// owned by the game while playing, so a file is the only useful sink; when it
// cannot be opened the log is discarded.
func openLogFile(cfg config.LogConfig) (io.Writer, func(), error) {
	noop := func() {}
	if cfg.File == "" {
		return io.Discard, noop, nil
	}

	path, err := config.ExpandPath(cfg.File)
	if err != nil {
		return io.Discard, noop, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return io.Discard, noop, err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return io.Discard, noop, err
	}
	return f, func() { f.Close() }, nil
}
