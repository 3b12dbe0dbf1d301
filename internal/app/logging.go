// Package app wires configuration, the shortcut registry and a terminal
// host into a runnable application.
package app

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// LogFormat selects the log record encoding.
type LogFormat string

const (
	// LogFormatText writes key=value records.
	LogFormatText LogFormat = "text"
	// LogFormatJSON writes one JSON object per record.
	LogFormatJSON LogFormat = "json"
)

// ParseLogFormat parses a format name, case-insensitively. An empty name
// is text.
func ParseLogFormat(s string) (LogFormat, error) {
	switch f := LogFormat(strings.ToLower(strings.TrimSpace(s))); f {
	case "", LogFormatText:
		return LogFormatText, nil
	case LogFormatJSON:
		return LogFormatJSON, nil
	}
	return LogFormatText, fmt.Errorf("%w: %q (want text or json)", ErrUnknownLogFormat, s)
}

// ParseLogLevel parses a level name. Unknown names yield info.
func ParseLogLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
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

// LoggerConfig configures the logger.
type LoggerConfig struct {
	// Level is the minimum log level to output. A *slog.LevelVar lets the
	// level change while the application runs.
	Level slog.Leveler
	// Output is where logs are written. Defaults to os.Stderr.
	Output io.Writer
	// Format is the record encoding. Defaults to text.
	Format LogFormat
}

// DefaultLoggerConfig returns the default logger configuration.
func DefaultLoggerConfig() LoggerConfig {
	return LoggerConfig{
		Level:  slog.LevelInfo,
		Output: os.Stderr,
		Format: LogFormatText,
	}
}

// NewLogger creates a logger with the given configuration.
func NewLogger(cfg LoggerConfig) *slog.Logger {
	if cfg.Output == nil {
		cfg.Output = os.Stderr
	}
	if cfg.Level == nil {
		cfg.Level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: cfg.Level}
	var handler slog.Handler
	if cfg.Format == LogFormatJSON {
		handler = slog.NewJSONHandler(cfg.Output, opts)
	} else {
		handler = slog.NewTextHandler(cfg.Output, opts)
	}
	return slog.New(handler).With("app", "shortcuts")
}
