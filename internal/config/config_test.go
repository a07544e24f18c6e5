package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFileMissingReturnsDefaults(t *testing.T) {
	cfg, err := LoadFile(filepath.Join(t.TempDir(), "config.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.True(t, cfg.Notifications)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadFileParsesYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := `
db_path: /tmp/moveit.db
catalog_path: /tmp/challenges.yaml
player: mpv --no-video
notifications: false
log_level: debug
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cfg, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/moveit.db", cfg.DBPath)
	assert.Equal(t, "/tmp/challenges.yaml", cfg.CatalogPath)
	assert.Equal(t, "mpv --no-video", cfg.Player)
	assert.False(t, cfg.Notifications)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadFileEnvOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log_level: warn\nplayer: paplay\n"), 0o644))

	t.Setenv("MOVEIT_LOG_LEVEL", "error")
	t.Setenv("MOVEIT_NOTIFICATIONS", "false")
	t.Setenv("MOVEIT_DB_PATH", "/data/progress.db")

	cfg, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "error", cfg.LogLevel)
	assert.False(t, cfg.Notifications)
	assert.Equal(t, "/data/progress.db", cfg.DBPath)
	assert.Equal(t, "paplay", cfg.Player)
}

func TestLoadFileRejectsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log_level: loud\n"), 0o644))

	cfg, err := LoadFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid")
	assert.Equal(t, Default(), cfg)
}

func TestLoadFileRejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log_level: [\n"), 0o644))

	_, err := LoadFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse")
}

func TestSaveFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	want := Config{
		CuePath:       "/usr/share/sounds/complete.oga",
		Player:        "paplay",
		Notifications: false,
		LogLevel:      "warn",
	}

	require.NoError(t, SaveFile(path, want))

	got, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestSaveFileRejectsInvalid(t *testing.T) {
	err := SaveFile(filepath.Join(t.TempDir(), "config.yaml"), Config{LogLevel: "verbose"})
	assert.Error(t, err)
}

func TestConfigPathUsesXDG(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	path, err := ConfigPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "moveit", "config.yaml"), path)
}

func TestReadFileIgnoresEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("db_path: /home/me/keep.db\n"), 0o644))

	t.Setenv("MOVEIT_DB_PATH", "/tmp/throwaway.db")
	t.Setenv("MOVEIT_NOTIFICATIONS", "false")

	cfg, err := ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "/home/me/keep.db", cfg.DBPath)
	assert.True(t, cfg.Notifications)
}

func TestReadFileRejectsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("db_path: /home/me/keep.db\nlog_level: verbose\n"), 0o644))

	cfg, err := ReadFile(path)
	require.Error(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadFileErrorHasSinglePrefix(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log_level: loud\n"), 0o644))

	_, err := LoadFile(path)
	require.Error(t, err)
	assert.Equal(t, 1, strings.Count(err.Error(), "config:"))
}
