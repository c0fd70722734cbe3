package main

import (
	"fmt"
	"log"
	"strings"
)

// LogLevel represents the logging level.
type LogLevel int

const (
	LogLevelDebug LogLevel = iota
	LogLevelInfo
	LogLevelWarn
	LogLevelError
)

// String returns the string representation of the log level.
func (l LogLevel) String() string {
	switch l {
	case LogLevelDebug:
		return "debug"
	case LogLevelInfo:
		return "info"
	case LogLevelWarn:
		return "warn"
	case LogLevelError:
		return "error"
	default:
		return "unknown"
	}
}

// parseLogLevel parses a string log level (case-insensitive) into a
// LogLevel, defaulting to info.
func parseLogLevel(level string) LogLevel {
	switch strings.ToLower(level) {
	case "debug":
		return LogLevelDebug
	case "info":
		return LogLevelInfo
	case "warn", "warning":
		return LogLevelWarn
	case "error":
		return LogLevelError
	default:
		return LogLevelInfo
	}
}

// Logger provides leveled logging for the server binary.
type Logger struct {
	level LogLevel
}

// NewLogger creates a new logger with the specified log level.
func NewLogger(level string) *Logger {
	return &Logger{level: parseLogLevel(level)}
}

func (l *Logger) logf(level LogLevel, format string, v ...any) {
	if level < l.level {
		return
	}
	log.Printf("[%s] %s", level, fmt.Sprintf(format, v...))
}

// Debugf logs a debug-level message.
func (l *Logger) Debugf(format string, v ...any) { l.logf(LogLevelDebug, format, v...) }

// Infof logs an info-level message.
func (l *Logger) Infof(format string, v ...any) { l.logf(LogLevelInfo, format, v...) }

// Warnf logs a warning-level message.
func (l *Logger) Warnf(format string, v ...any) { l.logf(LogLevelWarn, format, v...) }

// Errorf logs an error-level message.
func (l *Logger) Errorf(format string, v ...any) { l.logf(LogLevelError, format, v...) }
