package cmd

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oakwood-commons/lsx/internal/config"
)

func writeConfig(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestConfigLoaderLoadMergedConfigDefaults(t *testing.T) {
	cfg, err := loadMergedConfig("")
	require.NoError(t, err)
	assert.Equal(t, "lsx", cfg.App.Name)
	assert.False(t, config.Bool(cfg.Defaults.Size))
	assert.NotEmpty(t, cfg.Theme.Directory)
}

func TestConfigLoaderYAMLOverrides(t *testing.T) {
	path := writeConfig(t, "config.yaml", `defaults:
  size: true
  strict: true
theme:
  directory: "#5f87ff"
`)
	cfg, err := loadMergedConfig(path)
	require.NoError(t, err)
	assert.True(t, config.Bool(cfg.Defaults.Size))
	assert.True(t, config.Bool(cfg.Defaults.Strict))
	assert.False(t, config.Bool(cfg.Defaults.Types))
	assert.Equal(t, "#5f87ff", cfg.Theme.Directory)
	assert.Equal(t, "10", cfg.Theme.File, "unset keys keep defaults")
}

func TestConfigLoaderTOML(t *testing.T) {
	path := writeConfig(t, "config.toml", "[defaults]\nno_color = true\n\n[theme]\nborder = \"8\"\n")
	cfg, err := loadMergedConfig(path)
	require.NoError(t, err)
	assert.True(t, config.Bool(cfg.Defaults.NoColor))
	assert.Equal(t, "8", cfg.Theme.Border)
}

func TestConfigLoaderEmptyFile(t *testing.T) {
	cfg, err := loadMergedConfig(writeConfig(t, "config.yaml", "\n"))
	require.NoError(t, err)
	assert.Equal(t, "lsx", cfg.App.Name)
}

func TestConfigLoaderErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := loadMergedConfig(filepath.Join(t.TempDir(), "absent.yaml"))
		require.ErrorIs(t, err, os.ErrNotExist)
	})
	t.Run("unknown yaml key", func(t *testing.T) {
		_, err := loadMergedConfig(writeConfig(t, "config.yaml", "defaults:\n  sizes: true\n"))
		require.Error(t, err)
	})
	t.Run("unknown toml key", func(t *testing.T) {
		_, err := loadMergedConfig(writeConfig(t, "config.toml", "[defaults]\nsizes = true\n"))
		require.Error(t, err)
	})
	t.Run("default config failure", func(t *testing.T) {
		loader := configLoader{defaultConfig: func() (config.Config, error) {
			return config.Config{}, errors.New("boom")
		}}
		_, err := loader.loadMergedConfig("")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "load default config")
	})
}

func TestResolveConfigPath(t *testing.T) {
	t.Run("explicit wins", func(t *testing.T) {
		assert.Equal(t, "/etc/lsx.yaml", resolveConfigPath("/etc/lsx.yaml"))
	})
	t.Run("xdg", func(t *testing.T) {
		xdg := t.TempDir()
		t.Setenv("XDG_CONFIG_HOME", xdg)
		assert.Empty(t, resolveConfigPath(""))

		require.NoError(t, os.MkdirAll(filepath.Join(xdg, "lsx"), 0o755))
		want := filepath.Join(xdg, "lsx", "config.yaml")
		require.NoError(t, os.WriteFile(want, nil, 0o600))
		assert.Equal(t, want, resolveConfigPath(""))
	})
	t.Run("home fallback", func(t *testing.T) {
		home := t.TempDir()
		t.Setenv("XDG_CONFIG_HOME", "")
		t.Setenv("HOME", home)
		require.NoError(t, os.MkdirAll(filepath.Join(home, ".config", "lsx"), 0o755))
		want := filepath.Join(home, ".config", "lsx", "config.toml")
		require.NoError(t, os.WriteFile(want, nil, 0o600))
		assert.Equal(t, want, resolveConfigPath(""))
	})
}

func TestMarshalConfig(t *testing.T) {
	cfg, err := loadMergedConfig("")
	require.NoError(t, err)

	out, err := marshalConfig(cfg, "YAML")
	require.NoError(t, err)
	assert.Contains(t, string(out), "theme:")

	out, err = marshalConfig(cfg, "toml")
	require.NoError(t, err)
	assert.Contains(t, string(out), "[defaults]")

	_, err = marshalConfig(cfg, "xml")
	require.Error(t, err)
}
