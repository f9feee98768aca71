package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNew(t *testing.T) {
	tests := []struct {
		level   string
		release bool
		enabled zapcore.Level
		muted   zapcore.Level
	}{
		{"debug", false, zapcore.DebugLevel, zapcore.DebugLevel - 1},
		{"warn", true, zapcore.WarnLevel, zapcore.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			logger, err := New(tt.level, tt.release)
			require.NoError(t, err)
			assert.True(t, logger.Core().Enabled(tt.enabled))
			assert.False(t, logger.Core().Enabled(tt.muted))
		})
	}
}

func TestNewInvalidLevel(t *testing.T) {
	_, err := New("chatty", false)
	assert.Error(t, err)
}
