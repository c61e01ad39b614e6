package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNewWritesJSONToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "beaverdet.log")
	logger, err := New(Config{
		Level:      "warn",
		OutputPath: path,
		Fields:     map[string]string{"component": "lookup"},
	})
	require.NoError(t, err)

	logger.Info("dropped")
	logger.Warn("kept")
	require.NoError(t, logger.Sync())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "dropped")
	assert.Contains(t, string(data), `"msg":"kept"`)
	assert.Contains(t, string(data), `"component":"lookup"`)
}

func TestNewFallsBackToInfo(t *testing.T) {
	logger, err := New(Config{Level: "loud", Format: "console", OutputPath: filepath.Join(t.TempDir(), "x.log")})
	require.NoError(t, err)
	assert.True(t, logger.Core().Enabled(zapcore.InfoLevel))
	assert.False(t, logger.Core().Enabled(zapcore.DebugLevel))
}

func TestOrNop(t *testing.T) {
	assert.NotNil(t, OrNop(nil))
}

func TestLevelAndEncoding(t *testing.T) {
	for in, want := range map[string]zapcore.Level{"": zapcore.InfoLevel, "debug": zapcore.DebugLevel, "ERROR": zapcore.ErrorLevel, "loud": zapcore.InfoLevel} {
		assert.Equal(t, want, levelOf(in), in)
	}
	assert.Equal(t, "console", encodingOf("console"))
	assert.Equal(t, "json", encodingOf("yaml"))
}
