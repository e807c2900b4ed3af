// Package logger configures the process-wide structured logger.
package logger

import (
	"io"
	"log/slog"
	"os"

	charmlog "github.com/charmbracelet/log"
)

// Options selects output format and verbosity.
type Options struct {
	// Level is one of debug, info, warn, error. Defaults to info.
	Level string
	// JSON switches from the pretty console format to JSON lines.
	JSON bool
	// Writer defaults to stderr.
	Writer io.Writer
}

// New builds a slog.Logger backed by a charmbracelet handler.
func New(opts Options) *slog.Logger {
	w := opts.Writer
	if w == nil {
		w = os.Stderr
	}
	level := charmlog.InfoLevel
	if opts.Level != "" {
		if parsed, err := charmlog.ParseLevel(opts.Level); err == nil {
			level = parsed
		}
	}
	h := charmlog.NewWithOptions(w, charmlog.Options{
		Level:           level,
		ReportTimestamp: true,
	})
	if opts.JSON {
		h.SetFormatter(charmlog.JSONFormatter)
	}
	return slog.New(h)
}
