package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	cfg := Defaults()
	assert.Equal(t, "auto", cfg.Format)
	assert.Equal(t, "pretty", cfg.Output)
	assert.True(t, cfg.ShowWaves)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, DefaultPort, cfg.Port)
	require.NoError(t, cfg.Validate())
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sched.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
format    = "json"
no_color  = true
log_level = "debug"
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "json", cfg.Format)
	assert.True(t, cfg.NoColor)
	assert.Equal(t, "debug", cfg.LogLevel)
	// Unset keys keep their defaults.
	assert.Equal(t, "pretty", cfg.Output)
	assert.True(t, cfg.ShowWaves)
}

func TestLoad_UnknownKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sched.toml")
	require.NoError(t, os.WriteFile(path, []byte(`colour = true`), 0o644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown key")
}

func TestLoad_BadOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sched.toml")
	require.NoError(t, os.WriteFile(path, []byte(`output = "xml"`), 0o644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "output")
}

func TestLoad_BadFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sched.toml")
	require.NoError(t, os.WriteFile(path, []byte(`format = "csv"`), 0o644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "format")
}

func TestLoad_ExplicitMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	require.Error(t, err)
}

// chdir switches to dir until the test ends; t.Chdir needs Go 1.24.
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		require.NoError(t, os.Chdir(old))
	})
}

func TestLoad_NoFileFallsBackToDefaults(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Defaults(), cfg)
}

func TestLoad_HomeFile(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(home, FileName), []byte(`port = 9999`), 0o644))
	chdir(t, t.TempDir())
	t.Setenv("HOME", home)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 9999, cfg.Port)
}

func TestLoad_WorkingDirBeatsHome(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(home, FileName), []byte(`port = 1111`), 0o644))
	cwd := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(cwd, FileName), []byte(`port = 2222`), 0o644))
	chdir(t, cwd)
	t.Setenv("HOME", home)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 2222, cfg.Port)
}

func TestSlogLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug": slog.LevelDebug,
		"info":  slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
	}
	for level, want := range cases {
		cfg := Defaults()
		cfg.LogLevel = level
		assert.Equal(t, want, cfg.SlogLevel(), "level %s", level)
	}
}

func TestValidate_PortRange(t *testing.T) {
	cfg := Defaults()
	cfg.Port = 70000
	require.Error(t, cfg.Validate())

	cfg.Port = 0
	require.NoError(t, cfg.Validate())
}
