// Package logging configures structured logging for pypub.
//
// It wraps the standard library slog package with the conventions used
// across the tool: a text handler on stderr, level parsing from a flag
// value, and source locations at debug level.
package logging

import (
	"log/slog"
	"os"
	"strings"
)

// ParseLevel maps a level name to a slog.Level. Unknown names default to
// info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
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

// SetDefault installs a text logger on stderr at the given level as the
// process-wide default.
func SetDefault(level string) {
	l := ParseLevel(level)
	h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level:     l,
		AddSource: l == slog.LevelDebug,
	})
	slog.SetDefault(slog.New(h))
}
