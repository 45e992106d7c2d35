package logger

// nopLogger is a Logger implementation that discards all log entries.
type nopLogger struct{}

// NewNop returns a Logger that discards everything. Useful in tests and
// in components where logging is optional.
func NewNop() Logger {
	return nopLogger{}
}

func (nopLogger) Debug(string, ...Field) {}
func (nopLogger) Info(string, ...Field)  {}
func (nopLogger) Warn(string, ...Field)  {}
func (nopLogger) Error(string, ...Field) {}
func (nopLogger) Fatal(string, ...Field) {}

func (n nopLogger) With(...Field) Logger { return n }
func (nopLogger) Sync() error            { return nil }
