package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/gestao-dashboard/internal/config"
)

func TestNewInstallsGlobal(t *testing.T) {
	t.Cleanup(func() { zap.ReplaceGlobals(zap.NewNop()) })

	logger, err := New(config.LogConfig{Mode: "production"})
	require.NoError(t, err)
	assert.Same(t, logger, zap.L())
	assert.False(t, logger.Core().Enabled(zap.DebugLevel))
}

func TestNewWritesRotatedFile(t *testing.T) {
	t.Cleanup(func() { zap.ReplaceGlobals(zap.NewNop()) })

	path := filepath.Join(t.TempDir(), "api.log")
	logger, err := New(config.LogConfig{Mode: "development", File: path})
	require.NoError(t, err)

	logger.Info("venda finalizada", zap.Uint("id", 4))
	_ = logger.Sync()

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"msg":"venda finalizada"`)
	assert.Contains(t, string(raw), `"id":4`)
}
