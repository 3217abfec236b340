package logger

import (
	"fmt"
	"sync/atomic"
)

// std is the process-wide default logger used by the package-level functions.
var std atomic.Pointer[Logger]

// Init replaces the default logger with one built from config.
func Init(config Config) {
	std.Store(newAt(CallerAt(1), config))
}

// Default returns the default logger, creating a DEBUG console logger on
// first use if Init was never called.
func Default() *Logger {
	if l := std.Load(); l != nil {
		return l
	}
	std.CompareAndSwap(nil, New(Config{}))
	return std.Load()
}

// SetLevel sets the minimum level of the default logger.
func SetLevel(level Level) bool {
	return Default().setLevelAt(CallerAt(1), level)
}

// Log writes message at level through the default logger.
func Log(level Level, message string) bool {
	return Default().logAt(CallerAt(1), level, true, message)
}

// Print writes message at the default logger's minimum level.
func Print(message string) bool {
	return Default().logAt(CallerAt(1), DebugLevel, false, message)
}

// Debugf logs a debug message through the default logger.
func Debugf(format string, v ...any) bool {
	return Default().logAt(CallerAt(1), DebugLevel, true, fmt.Sprintf(format, v...))
}

// Infof logs an informational message through the default logger.
func Infof(format string, v ...any) bool {
	return Default().logAt(CallerAt(1), InfoLevel, true, fmt.Sprintf(format, v...))
}

// Warnf logs a warning through the default logger.
func Warnf(format string, v ...any) bool {
	return Default().logAt(CallerAt(1), WarnLevel, true, fmt.Sprintf(format, v...))
}

// Errorf logs an error message through the default logger.
func Errorf(format string, v ...any) bool {
	return Default().logAt(CallerAt(1), ErrorLevel, true, fmt.Sprintf(format, v...))
}
