// Package logger provides structured logging setup using Go's slog package.
package logger

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
)

// Options configures the logger setup.
type Options struct {
	Level   string // debug, info, warn, error
	Console bool   // pretty print for dev (LOG_FORMAT=console)
}

// Logger is a thin facade over the configured slog logger, used by wiring
// code that wants printf-style calls.
type Logger struct {
	base *slog.Logger
}

// New configures the global slog logger and returns a facade over it.
func New(level string) *Logger {
	Setup(Options{Level: level})
	return &Logger{base: slog.Default()}
}

// Setup configures the global slog logger with correlation ID support.
func Setup(opts Options) {
	handlerOpts := &slog.HandlerOptions{
		Level: parseLevel(opts.Level),
	}

	var handler slog.Handler
	if opts.Console {
		handler = slog.NewTextHandler(os.Stdout, handlerOpts)
	} else {
		handler = slog.NewJSONHandler(os.Stdout, handlerOpts)
	}

	// Wrap with correlation handler to auto-inject correlation_id from context
	handler = NewCorrelationHandler(handler)

	slog.SetDefault(slog.New(handler))
}

func (l *Logger) Info(format string, args ...any) {
	l.base.Info(fmt.Sprintf(format, args...))
}

func (l *Logger) Debug(format string, args ...any) {
	l.base.Debug(fmt.Sprintf(format, args...))
}

func (l *Logger) Warn(format string, args ...any) {
	l.base.Warn(fmt.Sprintf(format, args...))
}

func (l *Logger) Error(format string, args ...any) {
	l.base.Error(fmt.Sprintf(format, args...))
}

// Fatal logs the error and exits the process.
func (l *Logger) Fatal(err error) {
	l.base.Error(err.Error())
	os.Exit(1)
}

// parseLevel converts string level to slog.Level.
func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
