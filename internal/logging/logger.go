// Package logging configures zerolog for dumbdesk and carries loggers in context.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

// Config holds logger settings.
type Config struct {
	Level      zerolog.Level
	Format     string // "json" or "console"
	TimeFormat string
}

// DefaultConfig returns the settings used before config is loaded.
func DefaultConfig() Config {
	return Config{
		Level:      zerolog.InfoLevel,
		Format:     FormatConsole,
		TimeFormat: time.RFC3339,
	}
}

// ParseLevel maps a level name to a zerolog level. Unknown names yield info.
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

// New creates a logger writing to stderr.
func New(cfg Config) zerolog.Logger {
	return NewWithWriter(cfg, os.Stderr)
}

// NewWithWriter creates a logger writing to w in the configured format.
func NewWithWriter(cfg Config, w io.Writer) zerolog.Logger {
	output := w
	if cfg.Format != FormatJSON {
		output = zerolog.ConsoleWriter{
			Out:        w,
			TimeFormat: cfg.TimeFormat,
			NoColor:    w != os.Stderr,
		}
	}

	return zerolog.New(output).
		Level(cfg.Level).
		With().
		Timestamp().
		Logger()
}

// NewFromConfigValues builds a stderr logger from raw config strings.
func NewFromConfigValues(level, format string) zerolog.Logger {
	cfg := DefaultConfig()
	cfg.Level = ParseLevel(level)
	if format == FormatJSON {
		cfg.Format = FormatJSON
	}
	return New(cfg)
}

// NewFromEnv creates a logger based on environment variables
// DUMBDESK_LOG_LEVEL: trace, debug, info, warn, error (default: info)
// DUMBDESK_LOG_FORMAT: json, console (default: console)
func NewFromEnv() zerolog.Logger {
	return NewFromConfigValues(os.Getenv("DUMBDESK_LOG_LEVEL"), os.Getenv("DUMBDESK_LOG_FORMAT"))
}

// FileConfig controls the per-session log file.
type FileConfig struct {
	Enabled       bool
	LogDir        string
	SessionID     string
	WriteToStderr bool
	Rotation      RotationConfig
}

// NewWithFile creates a logger that writes to the session log file.
// The terminal desktop owns the screen, so stderr output is opt-in.
// The returned cleanup closes the file.
func NewWithFile(cfg Config, fileCfg FileConfig) (zerolog.Logger, func(), error) {
	noop := func() {}
	if !fileCfg.Enabled {
		if fileCfg.WriteToStderr {
			return New(cfg), noop, nil
		}
		return zerolog.Nop(), noop, nil
	}

	if err := os.MkdirAll(fileCfg.LogDir, 0o755); err != nil {
		return zerolog.Nop(), noop, fmt.Errorf("create log dir: %w", err)
	}

	rotator, err := NewLogRotator(fileCfg.LogDir, SessionFilename(fileCfg.SessionID), fileCfg.Rotation)
	if err != nil {
		return zerolog.Nop(), noop, err
	}

	var w io.Writer = rotator
	if fileCfg.WriteToStderr {
		w = zerolog.MultiLevelWriter(rotator, os.Stderr)
	}

	logger := NewWithWriter(cfg, w).With().
		Str("session", ShortSessionID(fileCfg.SessionID)).
		Logger()

	cleanup := func() {
		if err := rotator.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "warning: failed to close log file: %v\n", err)
		}
	}
	return logger, cleanup, nil
}
