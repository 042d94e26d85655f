package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"passgen/internal/config"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "missing.yml"))
	require.NoError(t, err)

	require.Equal(t, "development", cfg.Environment)
	require.Equal(t, 100, cfg.Generator.MaxAttempts)
	require.Equal(t, 16, cfg.Generator.Length)
	require.Equal(t, 1, cfg.Generator.Count)
	require.Equal(t, []string{"lowercase", "uppercase", "digit", "symbol"}, cfg.Generator.Classes)
	require.True(t, cfg.History.Enabled)
	require.Equal(t, config.DriverSQLite, cfg.History.Driver)
	require.EqualValues(t, 50, cfg.History.Limit)
	require.Equal(t, ":8080", cfg.HTTP.Addr)
	require.Equal(t, 10*time.Second, cfg.HTTP.RequestTimeout)
	require.False(t, cfg.HTTP.EnablePprof)
	require.Equal(t, []string{"*"}, cfg.HTTP.AllowedOrigins)
	require.Empty(t, cfg.JWT.PublicKey)
}

func TestLoad_FileAndEnvOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(`
environment: production
generator:
  length: 24
  classes: [lowercase, digit]
history:
  driver: postgres
  limit: 10
http:
  addr: ":9090"
`), 0o600))

	t.Setenv("HISTORY_LIMIT", "20")
	t.Setenv("HTTP_ENABLE_PPROF", "true")
	t.Setenv("HTTP_ALLOWED_ORIGINS", "https://a.example.com,https://b.example.com")

	cfg, err := config.Load(path)
	require.NoError(t, err)

	require.Equal(t, "production", cfg.Environment)
	require.Equal(t, 24, cfg.Generator.Length)
	require.Equal(t, []string{"lowercase", "digit"}, cfg.Generator.Classes)
	require.Equal(t, config.DriverPostgres, cfg.History.Driver)
	require.EqualValues(t, 20, cfg.History.Limit)
	require.Equal(t, ":9090", cfg.HTTP.Addr)
	require.True(t, cfg.HTTP.EnablePprof)
	require.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.HTTP.AllowedOrigins)
}

func TestLoad_InvalidDriver(t *testing.T) {
	t.Setenv("HISTORY_DRIVER", "mongo")

	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yml"))
	require.ErrorContains(t, err, "unknown history driver")
}

func TestLoad_InvalidMaxAttempts(t *testing.T) {
	t.Setenv("GENERATOR_MAX_ATTEMPTS", "0")

	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yml"))
	require.ErrorContains(t, err, "maxAttempts")
}

func TestExists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.False(t, config.Exists(path))
	require.NoError(t, os.WriteFile(path, nil, 0o600))
	require.True(t, config.Exists(path))
}
