package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pst966/git/pkg/errors"
)

func TestLoadFromMissingFileUsesDefaults(t *testing.T) {
	t.Setenv(EnvExcludesFile, "")
	os.Unsetenv(EnvExcludesFile)
	t.Setenv(EnvNoGlobal, "")

	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)

	assert.NotEmpty(t, cfg.ExcludesFile)
	assert.False(t, cfg.IgnoreCase)
	assert.False(t, cfg.NoGlobal)
}

func TestLoadFromFile(t *testing.T) {
	t.Setenv(EnvNoGlobal, "")
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(
		"excludes_file = \"/custom/ignore\"\nignore_case = true\n",
	), 0644))

	cfg, err := LoadFrom(path)
	require.NoError(t, err)

	assert.Equal(t, "/custom/ignore", cfg.ExcludesFile)
	assert.True(t, cfg.IgnoreCase)
}

func TestLoadFromMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("excludes_file = [broken"), 0644))

	_, err := LoadFrom(path)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigParse))
}

func TestEnvOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("excludes_file = \"/from/file\"\n"), 0644))

	t.Setenv(EnvExcludesFile, "/from/env")
	cfg, err := LoadFrom(path)
	require.NoError(t, err)
	assert.Equal(t, "/from/env", cfg.ExcludesFile)
}

func TestNoGlobalClearsExcludesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("no_global = true\n"), 0644))

	cfg, err := LoadFrom(path)
	require.NoError(t, err)
	assert.Empty(t, cfg.ExcludesFile)

	t.Setenv(EnvNoGlobal, "1")
	cfg, err = LoadFrom(filepath.Join(t.TempDir(), "absent.toml"))
	require.NoError(t, err)
	assert.Empty(t, cfg.ExcludesFile)
}
