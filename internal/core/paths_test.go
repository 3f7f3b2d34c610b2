package core

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPathsFollowEnvironment(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, "cfg"))
	t.Setenv("XDG_CACHE_HOME", filepath.Join(home, "cache"))
	ResetPaths()
	t.Cleanup(ResetPaths)

	assert.Equal(t, home, HomeDir())
	assert.Equal(t, filepath.Join(home, "cfg", "llm-exec"), ConfigDir())
	assert.Equal(t, filepath.Join(home, "cfg", "llm-exec", "config.json"), ConfigFile())
	assert.Equal(t, filepath.Join(home, "cache", "llm-exec"), DataDir())
	assert.Equal(t, filepath.Join(home, "cache", "llm-exec", "llm-exec.log"), LogFile())
	assert.Equal(t, filepath.Join(home, "cache", "llm-exec", "journal.db"), JournalFile())
}

func TestPathsAreCachedUntilReset(t *testing.T) {
	first := t.TempDir()
	t.Setenv("HOME", first)
	ResetPaths()
	t.Cleanup(ResetPaths)
	assert.Equal(t, first, HomeDir())

	second := t.TempDir()
	t.Setenv("HOME", second)
	assert.Equal(t, first, HomeDir())

	ResetPaths()
	assert.Equal(t, second, HomeDir())
}

func TestEnsureDataDir(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CACHE_HOME", filepath.Join(home, "cache"))
	ResetPaths()
	t.Cleanup(ResetPaths)

	require.NoError(t, EnsureDataDir())

	info, err := os.Stat(DataDir())
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
