package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/mdickopp/styled-output/internal/streaminfo"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestNewBlankConfig_Defaults(t *testing.T) {
	s := NewBlankConfig().Settings()

	assert.Equal(t, streaminfo.Auto, s.Color.Stdout)
	assert.Equal(t, streaminfo.Auto, s.Color.Stderr)
	assert.True(t, s.Logging.IsFileEnabled())
	assert.Equal(t, DefaultMaxSizeMB, s.Logging.MaxSizeMB)
	assert.Equal(t, DefaultMaxAgeDays, s.Logging.MaxAgeDays)
	assert.Equal(t, DefaultMaxBackups, s.Logging.MaxBackups)
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
color:
  stdout: never
  stderr: Always
logging:
  file_enabled: false
  max_size_mb: 1
`)

	cfg, err := LoadFile(path)
	require.NoError(t, err)

	s := cfg.Settings()
	assert.Equal(t, streaminfo.Never, s.Color.Stdout)
	assert.Equal(t, streaminfo.Always, s.Color.Stderr)
	assert.False(t, s.Logging.IsFileEnabled())
	assert.Equal(t, 1, s.Logging.MaxSizeMB)
	assert.Equal(t, DefaultMaxAgeDays, s.Logging.MaxAgeDays)
	assert.Equal(t, path, cfg.File())
	assert.True(t, cfg.FileUsed())
}

func TestLoadFile_Missing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "absent.yaml")

	cfg, err := LoadFile(path)
	require.NoError(t, err)
	assert.False(t, cfg.FileUsed())
	assert.Equal(t, streaminfo.Auto, cfg.Settings().Color.Stdout)
}

func TestLoadFile_InvalidColorMode(t *testing.T) {
	path := writeConfig(t, "color:\n  stdout: sometimes\n")

	_, err := LoadFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid configuration")
	assert.Contains(t, err.Error(), "sometimes")
}

func TestLoadFile_MalformedYAML(t *testing.T) {
	path := writeConfig(t, "color: [unterminated\n")

	_, err := LoadFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestEnvOverridesFile(t *testing.T) {
	t.Setenv("STYLED_COLOR_STDOUT", "always")
	t.Setenv("STYLED_LOGGING_MAX_BACKUPS", "9")
	path := writeConfig(t, "color:\n  stdout: never\n")

	cfg, err := LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, streaminfo.Always, cfg.Settings().Color.Stdout)
	assert.Equal(t, 9, cfg.Settings().Logging.MaxBackups)
}

func TestReadFromString(t *testing.T) {
	cfg, err := ReadFromString("color:\n  stderr: never\n")
	require.NoError(t, err)

	assert.Equal(t, streaminfo.Auto, cfg.Settings().Color.Stdout)
	assert.Equal(t, streaminfo.Never, cfg.Settings().Color.Stderr)
	assert.Empty(t, cfg.File())
}

func TestGet(t *testing.T) {
	cfg, err := ReadFromString("color:\n  stdout: never\n")
	require.NoError(t, err)

	v, err := cfg.Get("color.stdout")
	require.NoError(t, err)
	assert.Equal(t, "never", v)

	_, err = cfg.Get("color.nope")
	var notFound *KeyNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "color.nope", notFound.Key)
}

func TestSettings_YAML(t *testing.T) {
	cfg, err := ReadFromString("color:\n  stdout: always\nlogging:\n  file_enabled: false\n")
	require.NoError(t, err)

	out, err := cfg.Settings().YAML()
	require.NoError(t, err)

	var raw map[string]map[string]any
	require.NoError(t, yaml.Unmarshal(out, &raw))
	assert.Equal(t, "always", raw["color"]["stdout"])
	assert.Equal(t, "auto", raw["color"]["stderr"])
	assert.Equal(t, false, raw["logging"]["file_enabled"])
	assert.Equal(t, DefaultMaxSizeMB, raw["logging"]["max_size_mb"])
}

func TestPaths_EnvOverride(t *testing.T) {
	cfgDir := t.TempDir()
	stateDir := t.TempDir()
	t.Setenv("STYLED_CONFIG_DIR", cfgDir)
	t.Setenv("STYLED_STATE_DIR", stateDir)

	path, err := FilePath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(cfgDir, FileName), path)
	assert.Equal(t, filepath.Join(stateDir, LogsSubdir), LogsDir())
}

func TestPaths_XDG(t *testing.T) {
	home := t.TempDir()
	// Registered before Setenv so it runs after the environment is restored.
	t.Cleanup(xdg.Reload)
	t.Setenv("STYLED_CONFIG_DIR", "")
	t.Setenv("STYLED_STATE_DIR", "")
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, "config"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(home, "state"))
	xdg.Reload()

	assert.Equal(t, filepath.Join(home, "config", AppName), ConfigDir())
	assert.Equal(t, filepath.Join(home, "state", AppName), StateDir())
}

func TestLoad_UsesConfigDir(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("STYLED_CONFIG_DIR", dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte("color:\n  stdout: never\n"), 0o644))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, streaminfo.Never, cfg.Settings().Color.Stdout)
}
