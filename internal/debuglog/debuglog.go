// Package debuglog builds the leveled slog loggers used across birchwood.
//
// Levels are named the way operators type them: off, error, warn, info,
// debug (alias verbose) and trace. The default is warn so that every content
// fallback shows up in diagnostics without drowning the terminal.
package debuglog

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// EnvKey selects the level when no flag or config overrides it.
const EnvKey = "BIRCHWOOD_DEBUG"

const (
	LevelTrace = slog.LevelDebug - 4
	LevelDebug = slog.LevelDebug
	LevelInfo  = slog.LevelInfo
	LevelWarn  = slog.LevelWarn
	LevelError = slog.LevelError
	LevelOff   = slog.LevelError + 4

	DefaultLevel = LevelWarn
)

// ParseLevel maps a level name to a slog level. ok is false for unknown
// names, in which case DefaultLevel is returned.
func ParseLevel(raw string) (level slog.Level, ok bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "trace":
		return LevelTrace, true
	case "verbose", "debug":
		return LevelDebug, true
	case "info":
		return LevelInfo, true
	case "warn", "warning":
		return LevelWarn, true
	case "error":
		return LevelError, true
	case "off", "none":
		return LevelOff, true
	default:
		return DefaultLevel, false
	}
}

// LevelFromEnv reads EnvKey, falling back to DefaultLevel.
func LevelFromEnv() slog.Level {
	level, _ := ParseLevel(os.Getenv(EnvKey))
	return level
}

// New returns a text logger writing to w at level and above.
func New(w io.Writer, level slog.Level) *slog.Logger {
	if level >= LevelOff {
		return Discard()
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level:       level,
		ReplaceAttr: renameTrace,
	}))
}

// Discard returns a logger that drops everything.
func Discard() *slog.Logger { return slog.New(slog.DiscardHandler) }

// Component tags l with the emitting component, tolerating a nil logger.
func Component(l *slog.Logger, name string) *slog.Logger {
	if l == nil {
		l = Discard()
	}
	return l.With(slog.String("component", name))
}

func renameTrace(groups []string, a slog.Attr) slog.Attr {
	if a.Key != slog.LevelKey || len(groups) > 0 {
		return a
	}
	if lvl, ok := a.Value.Any().(slog.Level); ok && lvl <= LevelTrace {
		a.Value = slog.StringValue("TRACE")
	}
	return a
}
