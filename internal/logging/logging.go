// Package logging configures ddtd's structured logger. The TUI owns
// stdout/stderr while running, so the log goes to a JSON file under
// the user's state directory instead.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

const appName = "ddtd"

// Nop returns a logger that drops everything. Library packages use it
// when no logger is injected.
func Nop() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// DefaultLogPath returns the log file location under the XDG state
// directory.
func DefaultLogPath() string {
	return filepath.Join(xdg.StateHome, appName, appName+".log")
}

// Open creates a JSON logger appending to path, creating parent
// directories as needed. The caller closes the returned writer.
func Open(path string, level slog.Level) (*slog.Logger, io.WriteCloser, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("create log dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	logger := slog.New(slog.NewJSONHandler(f, &slog.HandlerOptions{Level: level}))
	return logger, f, nil
}
