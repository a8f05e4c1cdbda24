package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"unbound-webhook/core/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := config.LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1", cfg.Server.Host)
	assert.Equal(t, "8800", cfg.Server.Port)
	assert.Empty(t, cfg.Server.ApiKey)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, 30, cfg.OPNsense.TimeoutSeconds)
	assert.False(t, cfg.OPNsense.AllowInvalidCerts)
	assert.Empty(t, cfg.Reconcile.DomainFilters)
}

func TestLoadConfig_FileAndEnv(t *testing.T) {
	dir := t.TempDir()
	yaml := `
server:
  port: "9000"
opnsense:
  base_url: https://fw.example.com
  key: file-key
  allow_invalid_certs: true
reconcile:
  domain_filters:
    - example.com
    - .lab.example.org
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0o600))
	t.Setenv("OPNSENSE_KEY", "env-key")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := config.LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.Server.Port)
	assert.Equal(t, "https://fw.example.com", cfg.OPNsense.BaseURL)
	assert.Equal(t, "env-key", cfg.OPNsense.Key)
	assert.True(t, cfg.OPNsense.AllowInvalidCerts)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, []string{"example.com", ".lab.example.org"}, cfg.Reconcile.DomainFilters)
}

func TestLoadConfig_EnvFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("OPNSENSE_SECRET=from-dotenv\n"), 0o600))
	t.Setenv("OPNSENSE_SECRET", "")

	cfg, err := config.LoadConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, "from-dotenv", cfg.OPNsense.Secret)
}

func TestLoadConfig_InvalidFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("server: [unclosed"), 0o600))

	_, err := config.LoadConfig(dir)
	assert.Error(t, err)
}
