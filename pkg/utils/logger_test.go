package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestInitLogger_WritesRotatedFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")

	logger, err := InitLogger(dir, "movie-reviews", false)
	require.NoError(t, err)

	assert.False(t, logger.Core().Enabled(zapcore.DebugLevel))
	logger.Info("hello")

	raw, err := os.ReadFile(filepath.Join(dir, "movie-reviews.log"))
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"msg":"hello"`)
}

func TestInitLogger_DebugLevel(t *testing.T) {
	logger, err := InitLogger(t.TempDir(), "inference", true)
	require.NoError(t, err)
	assert.True(t, logger.Core().Enabled(zapcore.DebugLevel))
}
