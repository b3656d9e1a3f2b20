package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNew(t *testing.T) {
	t.Run("json info", func(t *testing.T) {
		log, err := New("info", FormatJSON)
		require.NoError(t, err)
		assert.True(t, log.Core().Enabled(zapcore.InfoLevel))
		assert.False(t, log.Core().Enabled(zapcore.DebugLevel))
	})

	t.Run("console debug", func(t *testing.T) {
		log, err := New("DEBUG", FormatConsole)
		require.NoError(t, err)
		assert.True(t, log.Core().Enabled(zapcore.DebugLevel))
	})

	t.Run("bad level", func(t *testing.T) {
		_, err := New("loud", FormatJSON)
		require.Error(t, err)
	})

	t.Run("bad format", func(t *testing.T) {
		_, err := New("info", Format("xml"))
		require.Error(t, err)
	})
}
