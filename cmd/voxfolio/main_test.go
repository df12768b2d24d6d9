package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/phanxgames/voxfolio/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlagsDefaults(t *testing.T) {
	cfg, opts, err := parseFlags(nil)
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
	assert.False(t, opts.listSections)
}

func TestParseFlagsOverrideFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "voxfolio.toml")
	require.NoError(t, os.WriteFile(path, []byte("debug = false\n[world]\nseed = 9\nfish = 3\n"), 0o644))

	cfg, _, err := parseFlags([]string{"-c", path, "--fish", "20", "--debug", "--watch", "--content", "s.yaml"})
	require.NoError(t, err)
	assert.Equal(t, uint64(9), cfg.World.Seed)
	assert.Equal(t, 20, cfg.World.Fish)
	assert.True(t, cfg.Debug)
	assert.True(t, cfg.Content.Watch)
	assert.Equal(t, "s.yaml", cfg.Content.Path)
}

func TestParseFlagsErrors(t *testing.T) {
	_, _, err := parseFlags([]string{"--no-such-flag"})
	assert.Error(t, err)

	_, _, err = parseFlags([]string{"-c", filepath.Join(t.TempDir(), "missing.toml")})
	assert.Error(t, err)
}

func TestRunWriteConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.toml")
	require.NoError(t, run([]string{"--seed", "42", "--write-config", path}))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, uint64(42), cfg.World.Seed)
}

func TestRunRejectsInvalidConfig(t *testing.T) {
	err := run([]string{"--watch"})
	assert.ErrorContains(t, err, "content watch needs a content path")
}

func TestRunListSections(t *testing.T) {
	assert.NoError(t, run([]string{"--list-sections", "--log-level", "warn"}))
}
