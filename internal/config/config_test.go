package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseDefaults(t *testing.T) {
	cfg, err := Parse(nil)
	require.NoError(t, err)
	require.Equal(t, DefaultPort, cfg.Port)
	require.True(t, cfg.Sensitive)
}

func TestParseFlagsOverrideDefaults(t *testing.T) {
	cfg, err := Parse([]string{"--port", "7000", "--save", "/tmp/data"})
	require.NoError(t, err)
	require.Equal(t, 7000, cfg.Port)
	require.Equal(t, "/tmp/data", cfg.SaveDir)
}

func TestParseConfFileThenFlagOverride(t *testing.T) {
	dir := t.TempDir()
	confPath := filepath.Join(dir, "redikv.conf")
	contents := "# comment\n\nport 7777\ndir " + dir + "\nsensitive no\n"
	require.NoError(t, os.WriteFile(confPath, []byte(contents), 0o644))

	cfg, err := Parse([]string{"--conf", confPath})
	require.NoError(t, err)
	require.Equal(t, 7777, cfg.Port)
	require.Equal(t, dir, cfg.SaveDir)
	require.False(t, cfg.Sensitive)

	cfg, err = Parse([]string{"--conf", confPath, "--port", "9999"})
	require.NoError(t, err)
	require.Equal(t, 9999, cfg.Port)
}

func TestParseMissingConfFileIsError(t *testing.T) {
	_, err := Parse([]string{"--conf", "/nonexistent/path.conf"})
	require.Error(t, err)
}
