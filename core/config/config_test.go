package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, float64(20), cfg.Server.RateLimit)
	assert.Equal(t, "factory", cfg.Storage.Bucket)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, 30, cfg.Database.TimeoutSeconds)
	assert.Equal(t, "m", cfg.Format.RateUnit)
	assert.Equal(t, 3, cfg.Format.RatePrecision)
	assert.Equal(t, "storage", cfg.Catalog.Source)
	assert.Equal(t, "data/recipes.json", cfg.Catalog.Object)
	assert.Equal(t, 300, cfg.Catalog.CacheTTLSeconds)
	assert.Equal(t, 100, cfg.Target.MaxTargets)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("FORMAT_RATE_UNIT", "h")
	t.Setenv("CATALOG_SOURCE", "file")
	t.Setenv("CATALOG_WATCH", "true")

	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "h", cfg.Format.RateUnit)
	assert.Equal(t, "file", cfg.Catalog.Source)
	assert.True(t, cfg.Catalog.Watch)
}

func TestLoadConfig_DotEnv(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("LOG_LEVEL=warn\nFORMAT_DISPLAY=rational\n"), 0o600))
	t.Cleanup(func() {
		os.Unsetenv("LOG_LEVEL")
		os.Unsetenv("FORMAT_DISPLAY")
	})

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "rational", cfg.Format.Display)
}

func TestLoadConfig_Invalid(t *testing.T) {
	t.Setenv("FORMAT_RATE_UNIT", "fortnight")

	_, err := LoadConfig(t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Config.Format.RateUnit")
	assert.Contains(t, err.Error(), "oneof")
}

func TestBindValues(t *testing.T) {
	v := viper.New()
	bindValues(v, &Config{}, "")

	assert.Equal(t, "8080", v.GetString("server.port"))
	assert.Equal(t, "minioadmin", v.GetString("storage.access_key"))
	assert.True(t, v.IsSet("server.api_key"))
}
