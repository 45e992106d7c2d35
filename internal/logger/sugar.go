package logger

// Sugared adapts a Logger to the loosely typed keysAndValues style used by
// packages that do not want to depend on zap field constructors.
type Sugared struct {
	log Logger
}

// NewSugared wraps a Logger in the keysAndValues interface.
func NewSugared(l Logger) *Sugared {
	return &Sugared{log: l}
}

func (s *Sugared) Debug(msg string, keysAndValues ...interface{}) {
	s.log.Debug(msg, toFields(keysAndValues)...)
}

func (s *Sugared) Info(msg string, keysAndValues ...interface{}) {
	s.log.Info(msg, toFields(keysAndValues)...)
}

func (s *Sugared) Warn(msg string, keysAndValues ...interface{}) {
	s.log.Warn(msg, toFields(keysAndValues)...)
}

func (s *Sugared) Error(msg string, keysAndValues ...interface{}) {
	s.log.Error(msg, toFields(keysAndValues)...)
}

func toFields(keysAndValues []interface{}) []Field {
	fields := make([]Field, 0, len(keysAndValues)/2+1)
	for i := 0; i+1 < len(keysAndValues); i += 2 {
		key, ok := keysAndValues[i].(string)
		if !ok {
			key = "field"
		}
		fields = append(fields, Any(key, keysAndValues[i+1]))
	}
	if len(keysAndValues)%2 != 0 {
		fields = append(fields, Any("dangling", keysAndValues[len(keysAndValues)-1]))
	}
	return fields
}
