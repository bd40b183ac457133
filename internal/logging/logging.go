// Package logging builds the session logger.
//
// The TUI owns the terminal, so logs only go to a file the user asked for.
// Without one, everything is discarded.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
)

// Options configures New.
type Options struct {
	// Path is the log file; empty disables logging.
	Path string
	// Level is debug|info|warn|error (default info).
	Level string
	// JSON switches from logfmt to one JSON object per line.
	JSON bool
}

// New returns a logger and a closer for the underlying file.
func New(opts Options) (*log.Logger, io.Closer, error) {
	level := log.InfoLevel
	if s := strings.TrimSpace(opts.Level); s != "" {
		l, err := log.ParseLevel(strings.ToLower(s))
		if err != nil {
			return nil, nil, fmt.Errorf("log level: %w", err)
		}
		level = l
	}

	path := strings.TrimSpace(opts.Path)
	if path == "" {
		return Discard(), nopCloser{}, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("create log dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}

	formatter := log.LogfmtFormatter
	if opts.JSON {
		formatter = log.JSONFormatter
	}
	logger := log.NewWithOptions(f, log.Options{
		Level:           level,
		Formatter:       formatter,
		ReportTimestamp: true,
		Prefix:          "todomatic",
	})
	return logger, f, nil
}

// Discard returns a logger that writes nowhere.
func Discard() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.FatalLevel})
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
