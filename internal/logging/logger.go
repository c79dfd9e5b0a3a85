// Package logging wraps zerolog. Loggers travel in context.Context.
package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Config holds logging configuration
type Config struct {
	Level      zerolog.Level
	Format     string // "json" or "console"
	TimeFormat string
	Output     io.Writer
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Level:      zerolog.InfoLevel,
		Format:     "console",
		TimeFormat: time.RFC3339,
	}
}

// New creates a new zerolog logger with the given configuration
func New(cfg Config) zerolog.Logger {
	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}

	var output io.Writer = out
	if cfg.Format == "console" {
		output = zerolog.ConsoleWriter{
			Out:        out,
			TimeFormat: cfg.TimeFormat,
		}
	}

	return zerolog.New(output).
		Level(cfg.Level).
		With().
		Timestamp().
		Logger()
}

// ParseLevel maps a config/env level name to a zerolog level.
// Unknown names fall back to info.
func ParseLevel(level string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "disabled", "off":
		return zerolog.Disabled
	default:
		return zerolog.InfoLevel
	}
}

// NewFromConfigValues creates a logger from plain config strings.
func NewFromConfigValues(level, format string) zerolog.Logger {
	cfg := DefaultConfig()
	cfg.Level = ParseLevel(level)
	switch format {
	case "json", "console":
		cfg.Format = format
	}
	return New(cfg)
}

// NewFromEnv creates a logger based on environment variables
// DASHCTL_LOG_LEVEL: trace, debug, info, warn, error (default: info)
// DASHCTL_LOG_FORMAT: json, console (default: console)
func NewFromEnv() zerolog.Logger {
	return NewFromConfigValues(os.Getenv("DASHCTL_LOG_LEVEL"), os.Getenv("DASHCTL_LOG_FORMAT"))
}

// FileConfig describes the optional rotating log file.
type FileConfig struct {
	Dir        string
	MaxSizeMB  int
	MaxBackups int
	Compress   bool
}

// NewWithFile creates a logger from plain config strings that also writes
// JSON lines to a rotating file in file.Dir. The returned closer closes the
// file. An empty Dir gives a plain NewFromConfigValues logger and a nil
// closer.
func NewWithFile(level, format string, file FileConfig) (zerolog.Logger, io.Closer, error) {
	if file.Dir == "" {
		return NewFromConfigValues(level, format), nil, nil
	}
	rot, err := NewRotator(file.Dir, file.MaxSizeMB, file.MaxBackups, file.Compress)
	if err != nil {
		return zerolog.Nop(), nil, err
	}

	cfg := DefaultConfig()
	cfg.Level = ParseLevel(level)
	var console io.Writer = os.Stderr
	if format != "json" {
		console = zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: cfg.TimeFormat}
	}
	cfg.Format = "json"
	cfg.Output = zerolog.MultiLevelWriter(console, rot)
	return New(cfg), rot, nil
}
