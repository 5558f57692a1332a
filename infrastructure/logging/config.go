// Package logging sets up slog for both binaries. Development builds log
// text to the console; builds tagged prod log to a rotating file.
package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// EnvLogLevel overrides the default level ("debug", "info", "warn", "error").
const EnvLogLevel = "OCRDESK_LOG_LEVEL"

// Config holds logging configuration options.
type Config struct {
	// Level is the minimum log level to emit.
	Level slog.Level
	// Console receives console output. Nil means os.Stdout.
	Console io.Writer
	// Dir is the directory for log files (prod only).
	// If empty, defaults to os.UserConfigDir()/ocrdesk/logs.
	Dir string
	// FileName is the log file name inside Dir (prod only).
	FileName string
	// MaxSizeMB is the size in megabytes at which the file is rotated.
	MaxSizeMB int
	// MaxBackups is the number of rotated files kept.
	MaxBackups int
	// MaxAgeDays is the number of days rotated files are kept.
	MaxAgeDays int
	Compress   bool
	AddSource  bool
}

// DefaultConfig returns the desktop app defaults. The level can be raised or
// lowered with OCRDESK_LOG_LEVEL.
func DefaultConfig() *Config {
	level := slog.LevelInfo
	if v := os.Getenv(EnvLogLevel); v != "" {
		if parsed, err := ParseLevel(v); err == nil {
			level = parsed
		}
	}

	return &Config{
		Level:      level,
		FileName:   "ocrdesk.log",
		MaxSizeMB:  20,
		MaxBackups: 5,
		MaxAgeDays: 14,
		Compress:   true,
	}
}

// ParseLevel converts a level name to a slog.Level.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", s)
	}
}

// DefaultLogDir returns the default log directory path.
// Tries os.UserConfigDir, falls back to os.UserCacheDir, then os.TempDir.
func DefaultLogDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir, err = os.UserCacheDir()
		if err != nil {
			dir = os.TempDir()
		}
	}
	return filepath.Join(dir, "ocrdesk", "logs")
}

func (c *Config) handlerOptions() *slog.HandlerOptions {
	return &slog.HandlerOptions{
		Level:     c.Level,
		AddSource: c.AddSource,
	}
}

// SetupConsole initializes text logging to cfg.Console regardless of build
// tags. Command-line tools use it so their logs stay on the terminal.
// The returned close function is a no-op.
func SetupConsole(cfg *Config) (*slog.Logger, func() error, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	out := cfg.Console
	if out == nil {
		out = os.Stdout
	}

	logger := slog.New(slog.NewTextHandler(out, cfg.handlerOptions()))
	setGlobal(logger)

	return logger, func() error { return nil }, nil
}

// --- Global logger access ---

var globalLogger *slog.Logger

// L returns the global logger. If Setup has not been called, returns slog.Default().
func L() *slog.Logger {
	if globalLogger != nil {
		return globalLogger
	}
	return slog.Default()
}

// setGlobal sets the package-level logger and also slog.SetDefault.
func setGlobal(logger *slog.Logger) {
	globalLogger = logger
	slog.SetDefault(logger)
}

// --- Context-based logging ---

type ctxKey struct{}

// With returns a new context that carries the given logger.
func With(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, logger)
}

// From extracts the logger from context. If none is present, returns L().
func From(ctx context.Context) *slog.Logger {
	if ctx == nil {
		return L()
	}
	if logger, ok := ctx.Value(ctxKey{}).(*slog.Logger); ok && logger != nil {
		return logger
	}
	return L()
}
