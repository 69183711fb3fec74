package services

import (
	"io"
	"log"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smart-stock-insider/pkg/fsutil"
)

func TestConfigDefaultsWhenFileMissing(t *testing.T) {
	logger := log.New(io.Discard, "", 0)
	path := filepath.Join(t.TempDir(), "config.json")

	svc, err := newConfigService(path, logger)
	require.NoError(t, err)

	cfg := svc.GetConfig()
	assert.Equal(t, "dark", cfg.Theme)
	assert.True(t, cfg.AutoCheckUpdates)
	assert.Empty(t, cfg.DataServiceURL)
}

func TestConfigSaveAndReload(t *testing.T) {
	logger := log.New(io.Discard, "", 0)
	path := filepath.Join(t.TempDir(), "config.json")

	svc, err := newConfigService(path, logger)
	require.NoError(t, err)

	require.NoError(t, svc.SetTheme("light"))
	require.NoError(t, svc.SetDataServiceURL("http://localhost:8000"))
	require.NoError(t, svc.SetAutoCheckUpdates(false))

	// A fresh service from the same path sees the persisted values
	reloaded, err := newConfigService(path, logger)
	require.NoError(t, err)

	cfg := reloaded.GetConfig()
	assert.Equal(t, "light", cfg.Theme)
	assert.Equal(t, "http://localhost:8000", cfg.DataServiceURL)
	assert.False(t, cfg.AutoCheckUpdates)
}

func TestConfigLoadRejectsGarbage(t *testing.T) {
	logger := log.New(io.Discard, "", 0)
	path := filepath.Join(t.TempDir(), "config.json")

	svc, err := newConfigService(path, logger)
	require.NoError(t, err)
	require.NoError(t, svc.Save())

	// Corrupt the file, then Load must report a parse error
	require.NoError(t, fsutil.WriteToFile(path, "{not json"))
	err = svc.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config file")
}
