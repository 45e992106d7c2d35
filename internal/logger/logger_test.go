package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNewLogger(t *testing.T) {
	log, err := New(Config{Level: "debug", Format: "json"})
	require.NoError(t, err)
	require.NotNil(t, log)

	// Should not panic
	log.Debug("debug message", String("key", "value"))
	log.Info("info message", Int("count", 3))
	log.Warn("warn message", Float64("score", 1.5))
	log.Error("error message", Bool("flag", true))
	assert.NotNil(t, log.With(String("component", "test")))
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zapcore.DebugLevel, parseLevel("debug"))
	assert.Equal(t, zapcore.InfoLevel, parseLevel("info"))
	assert.Equal(t, zapcore.WarnLevel, parseLevel("warn"))
	assert.Equal(t, zapcore.ErrorLevel, parseLevel("error"))
	assert.Equal(t, zapcore.InfoLevel, parseLevel("bogus"))
}

func TestConfigDefaults(t *testing.T) {
	var cfg Config
	cfg.SetDefaults()
	assert.Equal(t, DefaultLevel, cfg.Level)
	assert.Equal(t, DefaultFormat, cfg.Format)
	assert.Equal(t, DefaultOutputPaths, cfg.OutputPaths)
}

// captureLogger records messages and fields for adapter assertions.
type captureLogger struct {
	nopLogger
	msgs   []string
	fields [][]Field
}

func (c *captureLogger) Info(msg string, fields ...Field) {
	c.msgs = append(c.msgs, msg)
	c.fields = append(c.fields, fields)
}

func TestSugaredPairsKeysAndValues(t *testing.T) {
	capture := &captureLogger{}
	sugared := NewSugared(capture)

	sugared.Info("hello", "count", 3, "name", "dana")

	require.Len(t, capture.msgs, 1)
	assert.Equal(t, "hello", capture.msgs[0])
	require.Len(t, capture.fields[0], 2)
	assert.Equal(t, "count", capture.fields[0][0].Key)
	assert.Equal(t, "name", capture.fields[0][1].Key)
}

func TestSugaredDanglingValue(t *testing.T) {
	capture := &captureLogger{}
	sugared := NewSugared(capture)

	sugared.Info("odd", "key", 1, "orphan")

	require.Len(t, capture.fields[0], 2)
	assert.Equal(t, "dangling", capture.fields[0][1].Key)
}
