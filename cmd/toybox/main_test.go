package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/BurntSushi/toml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/appengine-ltd/toybox/internal/launcher"
)

func isolate(t *testing.T) {
	t.Helper()
	t.Chdir(t.TempDir())
	t.Setenv("HOME", t.TempDir())
	t.Setenv("TOYBOX_CONFIG", "")
}

func TestRunVersion(t *testing.T) {
	var out, errOut bytes.Buffer
	require.NoError(t, run(context.Background(), []string{"-version"}, &out, &errOut))
	assert.Contains(t, out.String(), "toybox dev")
}

func TestRunConfigDump(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "toybox.toml")
	require.NoError(t, os.WriteFile(path, []byte("[runner]\nseed = 42\n"), 0o644))

	var out, errOut bytes.Buffer
	require.NoError(t, run(context.Background(), []string{"-config", path, "config"}, &out, &errOut))

	var dumped struct {
		Runner struct {
			Seed int64 `toml:"seed"`
		} `toml:"runner"`
		Log struct {
			Level string `toml:"level"`
		} `toml:"log"`
	}
	_, err := toml.Decode(out.String(), &dumped)
	require.NoError(t, err)
	assert.Equal(t, int64(42), dumped.Runner.Seed)
	assert.Equal(t, "info", dumped.Log.Level)
}

func TestRunLogLevelOverride(t *testing.T) {
	isolate(t)
	var out, errOut bytes.Buffer
	require.NoError(t, run(context.Background(), []string{"-log-level", "debug", "config"}, &out, &errOut))
	assert.Contains(t, out.String(), `level = "debug"`)

	err := run(context.Background(), []string{"-log-level", "loud", "config"}, &out, &errOut)
	var ue *usageError
	require.True(t, errors.As(err, &ue))
}

func TestRunUnknownAppSuggests(t *testing.T) {
	isolate(t)
	var out, errOut bytes.Buffer
	err := run(context.Background(), []string{"runer"}, &out, &errOut)
	var ue *usageError
	require.True(t, errors.As(err, &ue))
	assert.Contains(t, err.Error(), `did you mean "runner"`)

	var unknown *launcher.UnknownAppError
	require.True(t, errors.As(err, &unknown))
	assert.Equal(t, launcher.AppRunner, unknown.Suggestion)
}

func TestRunMissingApp(t *testing.T) {
	isolate(t)
	var out, errOut bytes.Buffer
	err := run(context.Background(), nil, &out, &errOut)
	var ue *usageError
	require.True(t, errors.As(err, &ue))
	assert.Contains(t, errOut.String(), "calc")
	assert.Contains(t, errOut.String(), "Lane Runner")
}

func TestRunBadFlag(t *testing.T) {
	var out, errOut bytes.Buffer
	err := run(context.Background(), []string{"-nope"}, &out, &errOut)
	var ue *usageError
	require.True(t, errors.As(err, &ue))
}
