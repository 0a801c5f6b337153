// Package logging provides the leveled diagnostic logger used by the library
// packages. User facing progress output stays on fmt in the CLI.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
)

// EnvLevel names the environment variable holding the log level.
const EnvLevel = "LOG_LEVEL"

var (
	level  = new(slog.LevelVar)
	once   sync.Once
	logger *slog.Logger
)

// ParseLevel maps DEBUG, INFO, WARNING and ERROR (case insensitive) to a
// slog level. Anything else yields WARNING.
func ParseLevel(s string) slog.Level {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DEBUG":
		return slog.LevelDebug
	case "INFO":
		return slog.LevelInfo
	case "ERROR", "CRITICAL":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

// New builds a text logger writing to w at the given level.
func New(w io.Writer, lvl slog.Leveler) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl}))
}

// Logger returns the shared logger. Its initial level comes from LOG_LEVEL.
func Logger() *slog.Logger {
	once.Do(func() {
		level.Set(ParseLevel(os.Getenv(EnvLevel)))
		logger = New(os.Stderr, level)
	})
	return logger
}

// SetLevel changes the level of the shared logger.
func SetLevel(lvl slog.Level) {
	Logger()
	level.Set(lvl)
}
