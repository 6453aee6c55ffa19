package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"fridge-manager/core/config"
	"fridge-manager/core/vision"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := config.LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, vision.BackendHTTP, cfg.Vision.Backend)
	assert.InDelta(t, 0.20, cfg.Vision.MinConfidence, 0.001)
	assert.InDelta(t, 0.5, cfg.Reconcile.VisionThreshold, 0.001)
	assert.InDelta(t, 0.25, cfg.Reconcile.BarcodeThreshold, 0.001)
	assert.True(t, cfg.Barcode.TryRotate)
	assert.Equal(t, "file", cfg.Pantry.Backend)
	assert.Equal(t, "scans", cfg.Storage.ArchivePrefix)
	assert.Equal(t, 7, cfg.Storage.RetentionDays)
	assert.True(t, cfg.Catalog.LookupEnabled)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9999")
	t.Setenv("VISION_MIN_CONFIDENCE", "0.35")
	t.Setenv("BARCODE_TRY_ROTATE", "false")

	cfg, err := config.LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "9999", cfg.Server.Port)
	assert.InDelta(t, 0.35, cfg.Vision.MinConfidence, 0.001)
	assert.False(t, cfg.Barcode.TryRotate)
}

func TestLoadConfig_DotEnvFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("PANTRY_BACKEND=object\n"), 0o644))
	t.Cleanup(func() { os.Unsetenv("PANTRY_BACKEND") })

	cfg, err := config.LoadConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, "object", cfg.Pantry.Backend)
}
