package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "jsonbot.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "poll", cfg.Mode)
	assert.Equal(t, "memory", cfg.Store.Backend)
	assert.Equal(t, ":8080", cfg.Listen)
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "memory", cfg.Store.Backend)
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, `
token: "123:abc"
mode: webhook
listen: ":9090"
log_level: debug
store:
  backend: redis
  redis:
    addr: "redis:6379"
    db: 2
    ttl: 1h
    lock: true
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "123:abc", cfg.Token)
	assert.Equal(t, "webhook", cfg.Mode)
	assert.Equal(t, ":9090", cfg.Listen)
	assert.Equal(t, slog.LevelDebug, cfg.SlogLevel())
	assert.Equal(t, "redis", cfg.Store.Backend)
	assert.Equal(t, "redis:6379", cfg.Store.Redis.Addr)
	assert.Equal(t, 2, cfg.Store.Redis.DB)
	assert.Equal(t, time.Hour, cfg.Store.Redis.TTL)
	assert.True(t, cfg.Store.Redis.Lock)
}

func TestLoad_EnvOverrides(t *testing.T) {
	path := writeConfig(t, `
token: "from-file"
store:
  backend: memory
`)

	t.Setenv("JSONBOT_TOKEN", "from-env")
	t.Setenv("JSONBOT_STORE_BACKEND", "file")
	t.Setenv("JSONBOT_STORE_PATH", "/tmp/sessions")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.Token)
	assert.Equal(t, "file", cfg.Store.Backend)
	assert.Equal(t, "/tmp/sessions", cfg.Store.Path)
}

func TestLoad_InvalidMode(t *testing.T) {
	path := writeConfig(t, "mode: carrier-pigeon\n")

	_, err := Load(path)
	assert.ErrorContains(t, err, "invalid mode")
}

func TestLoad_InvalidBackend(t *testing.T) {
	path := writeConfig(t, "store:\n  backend: cassette\n")

	_, err := Load(path)
	assert.ErrorContains(t, err, "invalid store backend")
}

func TestLoad_MalformedYAML(t *testing.T) {
	path := writeConfig(t, "token: [unclosed\n")

	_, err := Load(path)
	assert.ErrorContains(t, err, "failed to parse config file")
}
