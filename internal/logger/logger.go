package logger

import (
	"os"
	"sync"
)

// Log levels used across the application.
const (
	DebugLevel = "debug"
	InfoLevel  = "info"
	WarnLevel  = "warn"
	ErrorLevel = "error"
)

var (
	// globalLogger holds the singleton logger instance.
	globalLogger *Logger
	once         sync.Once
)

// Get returns the process-wide server logger, writing to stdout. The first
// call fixes the level; later calls return the same instance.
func Get(level string) *Logger {
	once.Do(func() {
		globalLogger = newZapLogger(level, os.Stdout)
	})
	return globalLogger
}

// NewStderr returns a standalone logger for command-line tools, whose stdout
// carries the actual output.
func NewStderr(level string) *Logger {
	return newZapLogger(level, os.Stderr)
}
