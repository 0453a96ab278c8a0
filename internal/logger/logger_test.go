package logger_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pricehawk/internal/logger"
)

func TestParseLevel(t *testing.T) {
	for s, want := range map[string]logger.Level{
		"OFF":   logger.LevelOff,
		"error": logger.LevelError,
		"Info":  logger.LevelInfo,
		"DEBUG": logger.LevelDebug,
		"trace": logger.LevelTrace,
	} {
		got, err := logger.ParseLevel(s)
		require.NoError(t, err, "input: %q", s)
		assert.Equal(t, want, got, "input: %q", s)
	}

	_, err := logger.ParseLevel("LOUD")
	assert.Error(t, err)
}

func TestLevelString(t *testing.T) {
	assert.Equal(t, "OFF", logger.LevelOff.String())
	assert.Equal(t, "INFO", logger.LevelInfo.String())
	assert.Equal(t, "DEBUG", logger.LevelDebug.String())
}

func TestLoggerGatesByLevel(t *testing.T) {
	var buf bytes.Buffer
	l := logger.NewLogger(logger.LevelInfo, &buf)

	l.Debugf("hidden %d", 1)
	assert.Empty(t, buf.String())

	l.Infof("shown %d", 2)
	assert.Contains(t, buf.String(), "INFO :")
	assert.Contains(t, buf.String(), "shown 2")

	l.Errorf("also shown")
	assert.Contains(t, buf.String(), "ERROR:")
}

func TestLoggerOff(t *testing.T) {
	var buf bytes.Buffer
	l := logger.NewLogger(logger.LevelOff, &buf)

	l.Debug("a")
	l.Info("b")
	l.Error("c")
	assert.Empty(t, buf.String())
}
