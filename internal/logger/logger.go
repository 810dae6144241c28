// Package logger holds the process-wide structured logger. Diagnostics go to
// stderr as slog text records; user-facing output does not pass through here.
package logger

import (
	"io"
	"log/slog"
	"os"
)

var defaultLogger = newLogger(os.Stderr, false)

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// Init configures the default logger. Only warnings and errors are emitted
// unless verbose is set.
func Init(w io.Writer, verbose bool) {
	defaultLogger = newLogger(w, verbose)
}

// Debug logs a debug message.
func Debug(msg string, args ...any) {
	defaultLogger.Debug(msg, args...)
}

// Info logs an informational message.
func Info(msg string, args ...any) {
	defaultLogger.Info(msg, args...)
}

// Warn logs a warning message.
func Warn(msg string, args ...any) {
	defaultLogger.Warn(msg, args...)
}

// Error logs an error message.
func Error(msg string, args ...any) {
	defaultLogger.Error(msg, args...)
}
