// Package logging builds the structured logger shared by sdr components.
package logging

import (
	"io"
	"log/slog"
	"os"
)

// EnvDebug enables debug-level logging when set to any non-empty value.
const EnvDebug = "SDR_DEBUG"

// New returns a text logger writing to w. Only warnings and errors are
// emitted unless debug is true.
func New(w io.Writer, debug bool) *slog.Logger {
	level := slog.LevelWarn
	if debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
	}))
}

// DebugFromEnv reports whether EnvDebug is set.
func DebugFromEnv() bool {
	return os.Getenv(EnvDebug) != ""
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
