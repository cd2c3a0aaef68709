// Package logging provides structured logging infrastructure for dotagent.
package logging

import (
	"io"
	"log/slog"
	"os"

	"github.com/dotstack/dotagent/internal/config"
)

// NewFromConfig creates a new slog.Logger based on configuration.
// Diagnostics go to stderr; user-facing progress output stays on stdout.
func NewFromConfig(cfg *config.Config) *slog.Logger {
	level := parseLevel(cfg.Logging.Level)
	return slog.New(newHandler(cfg.Logging.Format, os.Stderr, level))
}

// NewDefault creates a default logger writing to stderr.
func NewDefault() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
}

// NewForTest creates a silent logger for tests.
func NewForTest() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
		Level: slog.LevelError,
	}))
}

// parseLevel converts config log level to slog.Level.
func parseLevel(level config.LogLevel) slog.Level {
	switch level {
	case config.LogLevelDebug:
		return slog.LevelDebug
	case config.LogLevelInfo:
		return slog.LevelInfo
	case config.LogLevelWarn:
		return slog.LevelWarn
	case config.LogLevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// newHandler creates a slog.Handler based on format.
func newHandler(format config.LogFormat, w io.Writer, level slog.Level) slog.Handler {
	opts := &slog.HandlerOptions{Level: level}

	switch format {
	case config.LogFormatJSON:
		return slog.NewJSONHandler(w, opts)
	case config.LogFormatText:
		return slog.NewTextHandler(w, opts)
	default:
		return slog.NewTextHandler(w, opts)
	}
}

// WithTarget returns a logger with target context.
func WithTarget(logger *slog.Logger, target string) *slog.Logger {
	return logger.With("target", target)
}
