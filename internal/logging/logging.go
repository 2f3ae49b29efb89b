// Package logging builds the slog logger used by the macperms command.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Environment variables read by FromEnv.
const (
	EnvDebug = "MACPERMS_DEBUG"    // "1" enables debug level
	EnvJSON  = "MACPERMS_LOG_JSON" // "1" selects the JSON handler
	EnvDest  = "MACPERMS_LOG_DEST" // "stderr", "file:<path>" or "both:<path>"
	EnvTime  = "MACPERMS_LOG_TIME" // "1" keeps timestamps in text output
)

// Options selects how log records are written.
type Options struct {
	Level slog.Level
	JSON  bool
	// Dest is "stderr" (or empty), "file:<path>" or "both:<path>".
	Dest string
	Time bool
	// Stderr replaces os.Stderr. Used by tests.
	Stderr io.Writer
}

// FromEnv returns Options populated from the MACPERMS_LOG_* variables.
func FromEnv(getenv func(string) string) Options {
	if getenv == nil {
		getenv = os.Getenv
	}
	opts := Options{
		Level: slog.LevelInfo,
		JSON:  getenv(EnvJSON) == "1",
		Dest:  getenv(EnvDest),
		Time:  getenv(EnvTime) == "1",
	}
	if getenv(EnvDebug) == "1" {
		opts.Level = slog.LevelDebug
	}
	return opts
}

// ParseLevel converts a config level name to a slog.Level. Empty means info.
func ParseLevel(s string) (slog.Level, error) {
	if s == "" {
		return slog.LevelInfo, nil
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo, fmt.Errorf("log level %q: %w", s, err)
	}
	return level, nil
}

// New returns a logger for opts and a function that closes any log file it
// opened. A log file that cannot be opened falls back to stderr with a
// warning.
func New(opts Options) (*slog.Logger, func() error) {
	stderr := opts.Stderr
	if stderr == nil {
		stderr = os.Stderr
	}

	var (
		writers []io.Writer
		file    *os.File
	)
	openFile := func(path string) {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			fmt.Fprintf(stderr, "macperms: failed to open log file %s: %v\n", path, err)
			return
		}
		file = f
		writers = append(writers, f)
	}

	switch {
	case strings.HasPrefix(opts.Dest, "file:"):
		openFile(strings.TrimPrefix(opts.Dest, "file:"))
		if file == nil {
			writers = append(writers, stderr)
		}
	case strings.HasPrefix(opts.Dest, "both:"):
		writers = append(writers, stderr)
		openFile(strings.TrimPrefix(opts.Dest, "both:"))
	default:
		writers = append(writers, stderr)
	}

	out := writers[0]
	if len(writers) > 1 {
		out = io.MultiWriter(writers...)
	}

	var handler slog.Handler
	if opts.JSON {
		handler = slog.NewJSONHandler(out, &slog.HandlerOptions{Level: opts.Level})
	} else {
		keepTime := opts.Time
		handler = slog.NewTextHandler(out, &slog.HandlerOptions{
			Level: opts.Level,
			ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
				if a.Key == slog.TimeKey && !keepTime && len(groups) == 0 {
					return slog.Attr{}
				}
				return a
			},
		})
	}

	closeFn := func() error { return nil }
	if file != nil {
		closeFn = file.Close
	}
	return slog.New(handler).With("component", "macperms"), closeFn
}
