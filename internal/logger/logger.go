// Package logger configures structured logging. The TUI owns the terminal,
// so logs go to a file or nowhere.
package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// EnvLevel names the environment variable that sets the default level.
const EnvLevel = "CLIMP_SPECTRUM_LOG_LEVEL"

// Config holds logger configuration.
type Config struct {
	Level  slog.Level
	Format string // "text" or "json"
	Output io.Writer
}

// New creates a configured slog.Logger. A nil Output discards everything.
func New(cfg Config) *slog.Logger {
	if cfg.Output == nil {
		return slog.New(slog.DiscardHandler)
	}
	opts := &slog.HandlerOptions{
		Level:     cfg.Level,
		AddSource: cfg.Level <= slog.LevelDebug,
	}
	if cfg.Format == "json" {
		return slog.New(slog.NewJSONHandler(cfg.Output, opts))
	}
	return slog.New(slog.NewTextHandler(cfg.Output, opts))
}

// DefaultConfig reads the level from CLIMP_SPECTRUM_LOG_LEVEL, defaulting to INFO.
func DefaultConfig() Config {
	level := slog.LevelInfo
	if v := os.Getenv(EnvLevel); v != "" {
		if l, err := ParseLevel(v); err == nil {
			level = l
		}
	}
	return Config{Level: level, Format: "text"}
}

// ParseLevel accepts DEBUG, INFO, WARN, WARNING or ERROR in any case.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DEBUG":
		return slog.LevelDebug, nil
	case "INFO":
		return slog.LevelInfo, nil
	case "WARN", "WARNING":
		return slog.LevelWarn, nil
	case "ERROR":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("unknown log level %q", s)
}

// OpenFile opens path for appending log lines.
func OpenFile(path string) (*os.File, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	return f, nil
}

// NewTestLogger logs at WARN to stderr, or DEBUG when TEST_DEBUG is set.
func NewTestLogger() *slog.Logger {
	level := slog.LevelWarn
	if os.Getenv("TEST_DEBUG") != "" {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
