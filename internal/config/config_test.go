package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/BurntSushi/toml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/appengine-ltd/toybox/internal/runner"
)

// isolate keeps the lookup away from any real toybox.toml.
func isolate(t *testing.T) {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("HOME", dir)
	t.Setenv("TOYBOX_CONFIG", "")
}

func TestLoadDefaultsWithoutFile(t *testing.T) {
	isolate(t)

	c, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "info", c.Log.Level)
	assert.Equal(t, "text", c.Log.Format)
	assert.Equal(t, 1280, c.Window.Width)
	assert.Equal(t, 60, c.Window.FPS)
	assert.True(t, c.Calc.Mouse)
	assert.Equal(t, runner.DefaultTuning(), c.RunnerTuning())
}

func TestLoadReadsFileAndEnvOverrides(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "custom.toml")
	body := `
[log]
level = "debug"

[runner]
seed = 99
spawn_every = 0.5
`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	t.Setenv("TOYBOX_WINDOW_WIDTH", "800")
	t.Setenv("TOYBOX_RUNNER_SEED", "7")

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", c.Log.Level)
	assert.Equal(t, 800, c.Window.Width)
	assert.Equal(t, int64(7), c.Runner.Seed, "env wins over file")
	assert.Equal(t, 0.5, c.RunnerTuning().SpawnEvery)
	assert.Equal(t, runner.ObstacleSpeed, c.RunnerTuning().ObstacleSpeed)
}

func TestLoadFindsFileInWorkingDirectory(t *testing.T) {
	isolate(t)
	require.NoError(t, os.WriteFile("toybox.toml", []byte("[cube]\nidle_spin = 1.5\n"), 0o600))

	c, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 1.5, c.CubeTuning().IdleSpin)
}

func TestLoadMissingExplicitFileFails(t *testing.T) {
	isolate(t)
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read config")
}

func TestValidateRejectsBadValues(t *testing.T) {
	isolate(t)
	base, err := Load("")
	require.NoError(t, err)

	cases := map[string]func(*Config){
		"log level":   func(c *Config) { c.Log.Level = "loud" },
		"log format":  func(c *Config) { c.Log.Format = "xml" },
		"window":      func(c *Config) { c.Window.Height = 0 },
		"fps":         func(c *Config) { c.Window.FPS = 0 },
		"spawn":       func(c *Config) { c.Runner.SpawnEvery = 0 },
		"speed":       func(c *Config) { c.Runner.ObstacleSpeed = -1 },
		"track width": func(c *Config) { c.Runner.TrackHalfX = 0 },
	}
	for name, mutate := range cases {
		c := base
		mutate(&c)
		assert.Error(t, c.Validate(), name)
	}
}

func TestDumpRoundTripsThroughTOML(t *testing.T) {
	isolate(t)
	c, err := Load("")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Dump(&buf, c))
	assert.Contains(t, buf.String(), "[runner]")

	var back Config
	_, err = toml.Decode(buf.String(), &back)
	require.NoError(t, err)
	assert.Equal(t, c, back)
}
