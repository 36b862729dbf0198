package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestEmbeddedMatchesDefault(t *testing.T) {
	cfg, err := parse(DefaultYAML())
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadFallsBackToEmbedded(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadUserConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	writeFile(t, home, ".gridzero/config.yaml", "display:\n  theme: neon\n")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "neon", cfg.Display.Theme)
	assert.Equal(t, 30, cfg.Display.TickRate)
}

func TestLoadCustomPath(t *testing.T) {
	path := writeFile(t, t.TempDir(), "custom.yaml", `
display:
  tick_rate: 60
  reveal_delay_ms: 250
  mouse: false
levels:
  path: /tmp/levels
server:
  address: "127.0.0.1:2222"
  idle_timeout_min: 5
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 60, cfg.Display.TickRate)
	assert.Equal(t, 250*time.Millisecond, cfg.Display.RevealDelay())
	assert.False(t, cfg.Display.Mouse)
	assert.Equal(t, "default", cfg.Display.Theme)
	assert.Equal(t, "/tmp/levels", cfg.Levels.Path)
	assert.Equal(t, "127.0.0.1:2222", cfg.Server.Address)
	assert.Equal(t, 5*time.Minute, cfg.Server.IdleTimeout())
}

func TestLoadCustomPathErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)

	bad := writeFile(t, t.TempDir(), "bad.yaml", "display: [unclosed")
	_, err = Load(bad)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config: failed to parse")
}

func TestNormalize(t *testing.T) {
	path := writeFile(t, t.TempDir(), "zero.yaml", `
display:
  tick_rate: 0
  reveal_delay_ms: -5
  theme: ""
server:
  address: ""
  idle_timeout_min: -1
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 30, cfg.Display.TickRate)
	assert.Equal(t, 0, cfg.Display.RevealDelayMS)
	assert.Equal(t, "default", cfg.Display.Theme)
	assert.Equal(t, ":23234", cfg.Server.Address)
	assert.Equal(t, 30, cfg.Server.IdleTimeoutMin)
}

func TestRuntime(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Display.TickRate = 20
	cfg.Display.RevealDelayMS = 500

	rc := cfg.Runtime(100, 40)
	assert.Equal(t, 100, rc.ScreenW)
	assert.Equal(t, 40, rc.ScreenH)
	assert.Equal(t, 20, rc.TickRate)
	assert.Equal(t, 10, rc.RevealTicks())
}
