package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
)

// openSessionLogger returns the logger used while the TUI owns the terminal.
// Without --log it discards everything; the closer is always safe to call.
func openSessionLogger(path string) (*log.Logger, func() error, error) {
	if path == "" {
		return log.New(io.Discard), func() error { return nil }, nil
	}

	path = expandHome(path)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("cannot create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}

	l := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "duel",
	})
	return l, f.Close, nil
}

// expandHome replaces a leading ~ with the user's home directory.
func expandHome(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}
