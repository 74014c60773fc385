// Package ports defines the interfaces between the build engine and its
// adapters.
package ports

// Logger is the logging interface used throughout the application.
type Logger interface {
	// Info logs an informational message.
	Info(msg string)
	// Warn logs a warning message.
	Warn(msg string)
	// Error logs an error.
	Error(err error)
}
