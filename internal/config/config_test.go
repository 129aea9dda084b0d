package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blackwell-systems/codelaunch/internal/vscode"
)

func TestLoad_DefaultsWhenMissing(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "", cfg.EditorCommand)
	assert.Empty(t, cfg.ExtraDirs)
	assert.Equal(t, vscode.DefaultFlavors, cfg.Flavors)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "", cfg.Log.Sink)
	assert.Equal(t, filepath.Join(home, ".config/codelaunch/codelaunch.log"), cfg.Log.File)
	assert.True(t, cfg.Output.Color)
}

func TestLoad_ExplicitMissingFileIsNotAnError(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.Log.MaxSizeMB)
}

func TestLoad_FromFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := `editor_command: "codium --new-window"
extra_dirs:
  - ~/portable/data/user-data/User
flavors:
  - name: VSCodium
    flatpak: com.vscodium.codium
    binary: codium
log:
  level: debug
  sink: none
output:
  color: false
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "codium --new-window", cfg.EditorCommand)
	assert.Equal(t, []string{filepath.Join(home, "portable/data/user-data/User")}, cfg.ExtraDirs)
	assert.Equal(t, []vscode.Flavor{{Name: "VSCodium", Flatpak: "com.vscodium.codium", Binary: "codium"}}, cfg.Flavors)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "none", cfg.Log.Sink)
	assert.False(t, cfg.Output.Color)
}

func TestLoad_DefaultLocation(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	dir := filepath.Join(home, ".config", "codelaunch")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("editor_command: code-insiders -n\n"), 0o644))

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "code-insiders -n", cfg.EditorCommand)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("CODELAUNCH_LOG_LEVEL", "error")
	t.Setenv("CODELAUNCH_EDITOR_COMMAND", "code -n")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "error", cfg.Log.Level)
	assert.Equal(t, "code -n", cfg.EditorCommand)
}

func TestLoad_MalformedFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log: [unclosed"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestExpandPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	assert.Equal(t, home, expandPath("~"))
	assert.Equal(t, filepath.Join(home, "a/b"), expandPath("~/a/b"))
	assert.Equal(t, "/abs", expandPath("/abs"))
	assert.Equal(t, "~other/x", expandPath("~other/x"))
}

func TestConfigFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	assert.Equal(t, filepath.Join(home, ".config", "codelaunch", "config.yaml"), ConfigFile(""))
	assert.Equal(t, filepath.Join(home, "alt.yaml"), ConfigFile("~/alt.yaml"))
}
