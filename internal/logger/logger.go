// Package logger provides structured JSON logging and run metrics for thai-lotto.
//
// Log lines are written by zerolog as one JSON object per line with a timestamp,
// level, message and any structured fields. Progress and diagnostics go to stderr
// so that command output on stdout stays machine-readable.
//
// Example usage:
//
//	logger.Info("Exported partition", logger.Fields{
//	    "kind": "result",
//	    "key":  "2568",
//	    "rows": 24,
//	})
//
//	logger.Error("Fetching draw failed", logger.Fields{"date": "2025-01-17"}, err)
//
//	logger.IncrCounter("scraper.pages")
//	logger.RecordTiming("scraper.fetch", duration)
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// Level represents log severity
type Level string

const (
	LevelDebug Level = "DEBUG"
	LevelInfo  Level = "INFO"
	LevelWarn  Level = "WARN"
	LevelError Level = "ERROR"
)

var zerologLevels = map[Level]zerolog.Level{
	LevelDebug: zerolog.DebugLevel,
	LevelInfo:  zerolog.InfoLevel,
	LevelWarn:  zerolog.WarnLevel,
	LevelError: zerolog.ErrorLevel,
}

// ParseLevel converts a case-insensitive level name ("debug", "INFO", ...) to a Level.
func ParseLevel(s string) (Level, error) {
	level := Level(strings.ToUpper(strings.TrimSpace(s)))
	if _, ok := zerologLevels[level]; !ok {
		return "", fmt.Errorf("unknown log level: %q (must be debug, info, warn or error)", s)
	}
	return level, nil
}

// Fields represents structured log fields
type Fields map[string]interface{}

// Logger writes structured log lines at or above a minimum level
type Logger struct {
	zl zerolog.Logger
}

var defaultLogger = New(LevelInfo, os.Stderr)

// New creates a logger writing JSON lines to output. Messages below level are discarded.
func New(level Level, output io.Writer) *Logger {
	zlevel, ok := zerologLevels[level]
	if !ok {
		zlevel = zerolog.InfoLevel
	}
	return &Logger{
		zl: zerolog.New(output).Level(zlevel).With().Timestamp().Logger(),
	}
}

// SetDefault sets the logger used by the package-level functions
func SetDefault(logger *Logger) {
	defaultLogger = logger
}

// Default returns the logger used by the package-level functions
func Default() *Logger {
	return defaultLogger
}

func (l *Logger) log(ev *zerolog.Event, message string, fields Fields, err error) {
	if ev == nil {
		return
	}
	if len(fields) > 0 {
		ev = ev.Fields(map[string]interface{}(fields))
	}
	if err != nil {
		ev = ev.Err(err)
	}
	ev.Msg(message)
}

// Debug logs detailed diagnostic information, such as each fetched URL.
func (l *Logger) Debug(message string, fields Fields) {
	l.log(l.zl.Debug(), message, fields, nil)
}

func (l *Logger) Info(message string, fields Fields) {
	l.log(l.zl.Info(), message, fields, nil)
}

// Warn logs a recoverable problem, such as a retried request.
func (l *Logger) Warn(message string, fields Fields) {
	l.log(l.zl.Warn(), message, fields, nil)
}

// Error logs a failure together with its error.
func (l *Logger) Error(message string, fields Fields, err error) {
	l.log(l.zl.Error(), message, fields, err)
}

// Package-level convenience functions using the default logger

func Debug(message string, fields Fields) {
	defaultLogger.Debug(message, fields)
}

func Info(message string, fields Fields) {
	defaultLogger.Info(message, fields)
}

func Warn(message string, fields Fields) {
	defaultLogger.Warn(message, fields)
}

func Error(message string, fields Fields, err error) {
	defaultLogger.Error(message, fields, err)
}
