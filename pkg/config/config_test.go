package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	t.Parallel()
	cfg := Default()
	assert.Equal(t, DefaultPort, cfg.Port)
	assert.Equal(t, DefaultDelayMs, cfg.DelayMs)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.True(t, cfg.CORS.Enabled)
	assert.Equal(t, "0.0.0.0:4010", cfg.Addr())
}

func TestLoadFile(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "extramock.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
port: 9090
delay_ms: 0
log_format: json
cors:
  enabled: false
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, 0, cfg.DelayMs)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.False(t, cfg.CORS.Enabled)
	assert.Equal(t, "0.0.0.0", cfg.Host, "defaults survive partial files")
}

func TestLoadErrors(t *testing.T) {
	t.Parallel()

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()
		_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
		assert.Error(t, err)
	})

	t.Run("invalid yaml", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "bad.yaml")
		require.NoError(t, os.WriteFile(path, []byte("port: [nope"), 0o644))
		_, err := Load(path)
		assert.Error(t, err)
	})

	t.Run("port out of range", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "port.yaml")
		require.NoError(t, os.WriteFile(path, []byte("port: 70000"), 0o644))
		_, err := Load(path)
		assert.ErrorContains(t, err, "out of range")
	})
}

func TestEnvOverride(t *testing.T) {
	t.Setenv("EXTRAMOCK_PORT", "5020")
	t.Setenv("EXTRAMOCK_LOG_LEVEL", "debug")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 5020, cfg.Port)
	assert.Equal(t, "debug", cfg.LogLevel)
}
