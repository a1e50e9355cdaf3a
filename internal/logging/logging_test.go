package logging

import (
	"testing"

	"github.com/refi/refi-calculator/internal/calculation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

var _ calculation.Logger = (*EngineLogger)(nil)

func TestNew(t *testing.T) {
	l, err := New("debug", "json")
	require.NoError(t, err)
	assert.True(t, l.Core().Enabled(zapcore.DebugLevel))

	l, err = New("", "")
	require.NoError(t, err)
	assert.False(t, l.Core().Enabled(zapcore.DebugLevel))
	assert.True(t, l.Core().Enabled(zapcore.InfoLevel))

	_, err = New("loud", "json")
	assert.Error(t, err)
	_, err = New("info", "xml")
	assert.Error(t, err)
}

func TestEngineLogger(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	el := NewEngineLogger(zap.New(core))

	el.Debugf("schedule: %d months", 360)
	el.Warnf("empty %s", "refiMinimum")

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, "schedule: 360 months", entries[0].Message)
	assert.Equal(t, "engine", entries[0].LoggerName)
	assert.Equal(t, zapcore.WarnLevel, entries[1].Level)

	// nil falls back to a no-op logger
	NewEngineLogger(nil).Errorf("dropped")
}
