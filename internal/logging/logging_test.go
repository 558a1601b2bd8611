package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_JSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tqi.log")

	logger, err := New("info", "json", path)
	require.NoError(t, err)

	logger.Info("started")
	logger.Debug("hidden")
	require.NoError(t, logger.Sync())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"started"`)
	assert.NotContains(t, string(data), "hidden")
}

func TestNew_Console(t *testing.T) {
	logger, err := New("debug", "console", filepath.Join(t.TempDir(), "tqi.log"))
	require.NoError(t, err)
	assert.NotNil(t, logger)
}

func TestNew_NoPaths(t *testing.T) {
	logger, err := New("info", "json")
	require.NoError(t, err)
	assert.False(t, logger.Core().Enabled(0), "must discard everything")
}

func TestNew_InvalidLevel(t *testing.T) {
	_, err := New("trace", "json", "stderr")
	assert.Error(t, err)
}

func TestNew_InvalidFormat(t *testing.T) {
	_, err := New("info", "xml", "stderr")
	assert.Error(t, err)
}

func TestNew_AllLevels(t *testing.T) {
	for _, level := range []string{"debug", "info", "warn", "error"} {
		logger, err := New(level, "json", filepath.Join(t.TempDir(), "tqi.log"))
		require.NoError(t, err, "level %q should be valid", level)
		assert.NotNil(t, logger)
	}
}
