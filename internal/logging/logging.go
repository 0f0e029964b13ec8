// Package logging builds the charmbracelet/log loggers shared by the CLI
// and the terminal host.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
)

// Prefix is the logger prefix used across the application.
const Prefix = "becomepm"

// New creates a logger writing to w at the given level.
// An empty level means "info".
func New(level string, w io.Writer) (*log.Logger, error) {
	lvl := log.InfoLevel
	if strings.TrimSpace(level) != "" {
		parsed, err := log.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
		if err != nil {
			return nil, fmt.Errorf("logging: %w", err)
		}
		lvl = parsed
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          Prefix,
		Level:           lvl,
	})
	return logger, nil
}

// OpenFile creates a logger appending to path. The directory is created
// when missing and a leading "~" expands to the home directory. The
// returned closer releases the file.
func OpenFile(level, path string) (*log.Logger, io.Closer, error) {
	if strings.HasPrefix(path, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, nil, fmt.Errorf("logging: failed to get home directory: %w", err)
		}
		path = filepath.Join(home, path[1:])
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("logging: failed to create log directory: %w", err)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("logging: failed to open log file: %w", err)
	}

	logger, err := New(level, f)
	if err != nil {
		_ = f.Close()
		return nil, nil, err
	}
	return logger, f, nil
}

// Discard returns a logger that drops everything.
func Discard() *log.Logger {
	return log.New(io.Discard)
}
