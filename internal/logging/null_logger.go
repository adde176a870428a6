package logging

// NullLogger discards every message. Used by tests and quiet callers.
type NullLogger struct{}

// NewNullLogger creates a logger that discards everything.
func NewNullLogger() *NullLogger {
	return &NullLogger{}
}

func (NullLogger) Verbose(string, ...interface{}) {}
func (NullLogger) Info(string, ...interface{})    {}
func (NullLogger) Success(string, ...interface{}) {}
func (NullLogger) Warn(string, ...interface{})    {}
func (NullLogger) Error(string, ...interface{})   {}
