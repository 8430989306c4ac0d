// Package logging builds the slog loggers used by the library and CLI.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// Logger wraps slog.Logger with helpers for the fields this module logs.
type Logger struct {
	*slog.Logger
}

// New creates a Logger writing to w. format is "json" or "text"
// (anything else means text); level is parsed by ParseLevel.
func New(w io.Writer, format, level string) *Logger {
	if w == nil {
		w = os.Stderr
	}
	opts := &slog.HandlerOptions{Level: ParseLevel(level)}
	var h slog.Handler
	if strings.EqualFold(format, "json") {
		h = slog.NewJSONHandler(w, opts)
	} else {
		h = slog.NewTextHandler(w, opts)
	}
	return &Logger{Logger: slog.New(h)}
}

// Noop returns a Logger that discards all output.
func Noop() *Logger {
	return &Logger{Logger: slog.New(slog.DiscardHandler)}
}

// ParseLevel maps debug/info/warn/error to a slog level. Unknown strings
// map to info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// WithFile adds the source file name.
func (l *Logger) WithFile(path string) *Logger {
	return &Logger{Logger: l.Logger.With("file", path)}
}

// WithBank adds a bank key.
func (l *Logger) WithBank(bank string) *Logger {
	return &Logger{Logger: l.Logger.With("bank", bank)}
}
