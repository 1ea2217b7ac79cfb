package log

import "sync/atomic"

// defaultLogger backs code paths that have no logger injected, such as the
// CLI commands. The root command installs one before any subcommand runs.
var defaultLogger atomic.Pointer[Logger]

// SetDefaultLogger replaces the process-wide logger. A nil logger resets it,
// so the next DefaultLogger call builds a fresh Default.
func SetDefaultLogger(logger *Logger) {
	defaultLogger.Store(logger)
}

// DefaultLogger returns the process-wide logger, creating a Default one on
// first use. Concurrent first calls agree on a single instance.
func DefaultLogger() *Logger {
	if logger := defaultLogger.Load(); logger != nil {
		return logger
	}
	logger := Default()
	if defaultLogger.CompareAndSwap(nil, logger) {
		return logger
	}
	return defaultLogger.Load()
}
