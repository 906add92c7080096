package logger

import (
	"io"
	"os"
	"sync"
)

// Log levels accepted by Get and New.
const (
	DebugLevel = "debug"
	InfoLevel  = "info"
	WarnLevel  = "warn"
	ErrorLevel = "error"
)

var (
	// globalLogger holds the process-wide logger.
	globalLogger *Logger
	once         sync.Once
)

// Get returns the process logger, writing to stderr so that stdout carries
// only the run report. The first call fixes the level; later calls ignore it.
func Get(level string) *Logger {
	once.Do(func() {
		globalLogger = New(level, os.Stderr)
	})
	return globalLogger
}

// New builds a standalone logger over w.
func New(level string, w io.Writer) *Logger {
	return newZapLogger(level, w)
}

// Nop returns a logger that discards everything.
func Nop() *Logger {
	return New(ErrorLevel, io.Discard)
}
