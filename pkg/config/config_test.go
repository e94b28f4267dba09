package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := loadFrom(filepath.Join(t.TempDir(), "missing.toml"))
	require.NoError(t, err)

	assert.Equal(t, "subdir", cfg.Mode)
	assert.False(t, cfg.Clean)
	assert.Equal(t, "archives", cfg.Backend)
	assert.Contains(t, cfg.Ignored, "__MACOSX")
	assert.Contains(t, cfg.Junk, "__MACOSX")
}

func TestLoadUserFileOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	userConfig := filepath.Join(dir, "unfurl.toml")
	content := "mode = \"flatten\"\nclean = true\n"
	require.NoError(t, os.WriteFile(userConfig, []byte(content), 0644))

	cfg, err := loadFrom(userConfig)
	require.NoError(t, err)

	assert.Equal(t, "flatten", cfg.Mode)
	assert.True(t, cfg.Clean)
	// Untouched keys keep their defaults
	assert.Equal(t, "archives", cfg.Backend)
}

func TestLoadEnvOverridesAll(t *testing.T) {
	dir := t.TempDir()
	userConfig := filepath.Join(dir, "unfurl.toml")
	require.NoError(t, os.WriteFile(userConfig, []byte("mode = \"flatten\"\n"), 0644))

	t.Setenv("UNFURL_MODE", "respect")

	cfg, err := loadFrom(userConfig)
	require.NoError(t, err)
	assert.Equal(t, "respect", cfg.Mode)
}

func TestLoadMalformedUserFile(t *testing.T) {
	dir := t.TempDir()
	userConfig := filepath.Join(dir, "unfurl.toml")
	require.NoError(t, os.WriteFile(userConfig, []byte("mode = [broken"), 0644))

	_, err := loadFrom(userConfig)
	assert.Error(t, err)
}

func TestWriteUserConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "unfurl.toml")

	cfg, err := loadFrom(filepath.Join(t.TempDir(), "missing.toml"))
	require.NoError(t, err)

	require.NoError(t, WriteUserConfig(path, cfg, false))
	assert.FileExists(t, path)

	// Refuses to clobber without force
	err = WriteUserConfig(path, cfg, false)
	require.Error(t, err)

	// Round-trips through Load
	reloaded, err := loadFrom(path)
	require.NoError(t, err)
	assert.Equal(t, cfg.Mode, reloaded.Mode)
	assert.Equal(t, cfg.Ignored, reloaded.Ignored)
}
