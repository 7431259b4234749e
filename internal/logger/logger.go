package logger

import (
	"sync"
)

// Log levels accepted in log.level.
const (
	DebugLevel = "debug"
	InfoLevel  = "info"
	WarnLevel  = "warn"
	ErrorLevel = "error"
)

// Output encodings accepted in log.format.
const (
	ConsoleFormat = "console"
	JSONFormat    = "json"
)

var (
	kioskLogger *Logger
	once        sync.Once
)

// Get returns the process logger with console output. Only the first call
// (of Get or Init) decides the level; later calls return the same instance.
func Get(level string) *Logger {
	return Init(level, ConsoleFormat)
}

// Init is Get with an explicit output encoding.
func Init(level, format string) *Logger {
	once.Do(func() {
		kioskLogger = newZapLogger(level, format)
	})
	return kioskLogger
}
