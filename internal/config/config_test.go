package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadConfigMissingFileKeepsDefaults(t *testing.T) {
	cfg := Default()
	err := ReadConfig(filepath.Join(t.TempDir(), "nope.json"), &cfg)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestReadConfigOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "agent.json")
	err := os.WriteFile(path, []byte(`{
		"mode": "production",
		"addr": ":9000",
		"board": {"height": 16, "width": 30, "mines": 99}
	}`), 0644)
	require.NoError(t, err)

	cfg := Default()
	require.NoError(t, ReadConfig(path, &cfg))

	assert.True(t, cfg.Production())
	assert.False(t, cfg.Development())
	assert.Equal(t, ":9000", cfg.Addr)
	assert.Equal(t, 16, cfg.Board.Height)
	assert.Equal(t, 30, cfg.Board.Width)
	assert.Equal(t, 99, cfg.Board.Mines)
	// untouched keys keep their defaults
	assert.Equal(t, Default().StorePath, cfg.StorePath)
}

func TestReadConfigBadJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "agent.json")
	require.NoError(t, os.WriteFile(path, []byte("{"), 0644))

	cfg := Default()
	assert.Error(t, ReadConfig(path, &cfg))
}
