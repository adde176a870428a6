// Package logging provides the CLI's console logger.
package logging

// Logger reports progress and problems to the user.
type Logger interface {
	// Verbose logs detail that is only shown with --verbose.
	Verbose(format string, args ...interface{})
	Info(format string, args ...interface{})
	Success(format string, args ...interface{})
	Warn(format string, args ...interface{})
	Error(format string, args ...interface{})
}
