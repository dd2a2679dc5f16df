// Package logging provides the leveled logger used by the command-line
// tools. Verbosity is controlled by the LOG_LEVEL environment variable
// (ERROR, WARN, INFO, DEBUG, TRACE).
package logging

import (
	"log"
	"os"
)

// Level represents logging verbosity.
type Level int

const (
	LevelError Level = iota
	LevelWarn
	LevelInfo
	LevelDebug
	LevelTrace
)

// Logger provides leveled logging on top of the standard log package.
type Logger struct {
	level Level
}

// New creates a logger with the specified level.
func New(level Level) *Logger {
	return &Logger{level: level}
}

// NewDefault creates a logger based on the LOG_LEVEL environment
// variable, defaulting to INFO.
func NewDefault() *Logger {
	level := LevelInfo
	switch os.Getenv("LOG_LEVEL") {
	case "ERROR":
		level = LevelError
	case "WARN":
		level = LevelWarn
	case "DEBUG":
		level = LevelDebug
	case "TRACE":
		level = LevelTrace
	}
	return &Logger{level: level}
}

// Error logs error messages.
func (l *Logger) Error(format string, args ...interface{}) {
	if l.level >= LevelError {
		log.Printf("[ERROR] "+format, args...)
	}
}

// Warn logs warning messages.
func (l *Logger) Warn(format string, args ...interface{}) {
	if l.level >= LevelWarn {
		log.Printf("[WARN] "+format, args...)
	}
}

// Info logs info messages.
func (l *Logger) Info(format string, args ...interface{}) {
	if l.level >= LevelInfo {
		log.Printf("[INFO] "+format, args...)
	}
}

// Debug logs debug messages.
func (l *Logger) Debug(format string, args ...interface{}) {
	if l.level >= LevelDebug {
		log.Printf("[DEBUG] "+format, args...)
	}
}

// Level returns the current log level.
func (l *Logger) Level() Level {
	return l.level
}
