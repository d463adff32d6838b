// Package logger provides a logging utility based on log/slog
//
// DEBUG logging can be enabled by setting the CALC_MCP_DEBUG environment variable:
//   export CALC_MCP_DEBUG=1
//
// By default, debug logging is disabled to reduce noise in normal operation.
// Logs go to stderr so they never mix with the MCP stdio stream.
package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// DebugEnv is the environment variable that turns on debug logging
const DebugEnv = "CALC_MCP_DEBUG"

var (
	// Logger is the global logger instance
	Logger *slog.Logger

	level = new(slog.LevelVar)
)

func init() {
	if DebugEnabled(os.Getenv(DebugEnv)) {
		level.Set(slog.LevelDebug)
	}
	SetOutput(os.Stderr)
}

// DebugEnabled reports whether an environment value turns debug logging on
func DebugEnabled(v string) bool {
	return v != "" && strings.ToLower(v) != "false" && v != "0"
}

// SetOutput points the global logger at w and replaces the default slog logger too
func SetOutput(w io.Writer) {
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	Logger = slog.New(handler)
	slog.SetDefault(Logger)
}

// ParseLevel converts debug, info, warn or error into a slog.Level
func ParseLevel(name string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("unknown log level %q", name)
}

// SetLevel changes the minimum level of the global logger
func SetLevel(l slog.Level) {
	level.Set(l)
}

// Level returns the current minimum level
func Level() slog.Level {
	return level.Level()
}

// Debug logs a debug message if debug logging is enabled
func Debug(msg string, args ...any) {
	Logger.Debug(msg, args...)
}

// Info logs an info message
func Info(msg string, args ...any) {
	Logger.Info(msg, args...)
}

// Warn logs a warning message
func Warn(msg string, args ...any) {
	Logger.Warn(msg, args...)
}

// Error logs an error message
func Error(msg string, args ...any) {
	Logger.Error(msg, args...)
}
