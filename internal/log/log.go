// Package log is a small leveled wrapper around slog. Output is discarded
// until Init is called so a running TUI is never written over.
package log

import (
	"io"
	"log/slog"
	"strings"
	"sync/atomic"
)

// Level constants matching slog levels.
const (
	LevelDebug = slog.LevelDebug
	LevelInfo  = slog.LevelInfo
	LevelWarn  = slog.LevelWarn
	LevelError = slog.LevelError
)

var (
	level  = new(slog.LevelVar)
	logger atomic.Pointer[slog.Logger]
)

func init() {
	level.Set(LevelInfo)
	logger.Store(slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: level})))
}

// Init directs log output to w.
func Init(w io.Writer, l slog.Level) {
	level.Set(l)
	logger.Store(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})))
}

// SetLevel sets the global log level.
func SetLevel(l slog.Level) {
	level.Set(l)
}

// GetLevel returns the current log level.
func GetLevel() slog.Level {
	return level.Level()
}

// ParseLevel maps a level name to a slog level. Unknown names yield info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	default:
		return LevelInfo
	}
}

func Debug(msg string, args ...any) { logger.Load().Debug(msg, args...) }

func Info(msg string, args ...any) { logger.Load().Info(msg, args...) }

func Warn(msg string, args ...any) { logger.Load().Warn(msg, args...) }

func Error(msg string, args ...any) { logger.Load().Error(msg, args...) }
