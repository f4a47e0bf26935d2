// Package logger configures the process-wide slog default.
package logger

import (
	"log/slog"
	"os"
)

// Init sets up the default logger. DEBUG=true lowers the level so
// per-item fetch and enrichment details show up.
func Init(debug bool) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, opts)))
}
