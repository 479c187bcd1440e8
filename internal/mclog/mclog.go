// Package mclog is the CLI's ambient logger, grounded on hivekit's
// cmd/hiveexplorer/logger package: a package-level *slog.Logger that
// discards everything until Init is called, so library code (and tests)
// never need to care whether logging is enabled.
package mclog

import (
	"io"
	"log/slog"
	"os"
)

// L is the active logger. Discards output until Init is called.
var L = slog.New(slog.NewTextHandler(io.Discard, nil))

// Options configures Init.
type Options struct {
	Enabled bool
	Level   slog.Level
	Verbose bool
}

// Init configures L for the process. Call from main() before any command
// runs. With Enabled false (the default), all log output is discarded.
func Init(opts Options) {
	if !opts.Enabled {
		L = slog.New(slog.NewTextHandler(io.Discard, nil))
		return
	}

	level := opts.Level
	if opts.Verbose {
		level = slog.LevelDebug
	} else if level == 0 {
		level = slog.LevelInfo
	}

	L = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

func Debug(msg string, args ...any) { L.Debug(msg, args...) }
func Info(msg string, args ...any)  { L.Info(msg, args...) }
func Warn(msg string, args ...any)  { L.Warn(msg, args...) }
func Error(msg string, args ...any) { L.Error(msg, args...) }
