package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig_Defaults(t *testing.T) {
	cfg, err := NewConfig("")
	require.NoError(t, err)

	assert.Equal(t, 0, cfg.LogLevel)
	assert.Equal(t, "http://localhost:8080", cfg.API.BaseURL)
	assert.Equal(t, Duration(15*time.Second), cfg.API.Timeout)
	assert.Contains(t, cfg.Session.DBPath, ".interviewhub")
}

func TestNewConfig_EnvironmentOverrides(t *testing.T) {
	t.Setenv("IH_LOG_LEVEL", "-4")
	t.Setenv("IH_API_BASE_URL", "https://hub.example.com")
	t.Setenv("IH_API_TIMEOUT", "3s")
	t.Setenv("IH_SESSION_DB_PATH", "/tmp/ih.db")

	cfg, err := NewConfig("")
	require.NoError(t, err)

	assert.Equal(t, -4, cfg.LogLevel)
	assert.Equal(t, "https://hub.example.com", cfg.API.BaseURL)
	assert.Equal(t, Duration(3*time.Second), cfg.API.Timeout)
	assert.Equal(t, "/tmp/ih.db", cfg.Session.DBPath)
}

func TestNewConfig_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
log_level: 4
api:
  base_url: https://file.example.com
  timeout: 30s
session:
  db_path: /var/lib/ih/session.db
`), 0o600))

	cfg, err := NewConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 4, cfg.LogLevel)
	assert.Equal(t, "https://file.example.com", cfg.API.BaseURL)
	assert.Equal(t, Duration(30*time.Second), cfg.API.Timeout)
	assert.Equal(t, "/var/lib/ih/session.db", cfg.Session.DBPath)
}

func TestNewConfig_EnvBeatsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("api:\n  base_url: https://file.example.com\n"), 0o600))
	t.Setenv("IH_API_BASE_URL", "https://env.example.com")

	cfg, err := NewConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "https://env.example.com", cfg.API.BaseURL)
}

func TestNewConfig_MissingFile(t *testing.T) {
	_, err := NewConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}
