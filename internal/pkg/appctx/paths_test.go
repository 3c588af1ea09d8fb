package appctx

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPaths(t *testing.T) {
	tmpDir := t.TempDir()

	paths, err := NewPaths(tmpDir)
	require.NoError(t, err)

	assert.Equal(t, tmpDir, paths.BaseDir)
	assert.Equal(t, filepath.Join(tmpDir, "config.yaml"), paths.ConfigFile)
	assert.Equal(t, filepath.Join(tmpDir, "data", "palettes.json"), paths.PaletteFile)
	assert.Equal(t, filepath.Join(tmpDir, "logs", "colorstk.log"), paths.LogFile)
}

func TestPaths_Directories(t *testing.T) {
	paths, err := NewPaths(t.TempDir())
	require.NoError(t, err)

	assert.DirExists(t, paths.DataDir)
	assert.DirExists(t, paths.LogDir)

	info, err := os.Stat(paths.DataDir)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0700), info.Mode().Perm())
}

func TestNewPaths_Env(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv(EnvHome, tmpDir)

	paths, err := NewPaths("")
	require.NoError(t, err)
	assert.Equal(t, tmpDir, paths.BaseDir)
}

func TestNewPaths_Relative(t *testing.T) {
	tmpDir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(tmpDir))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	paths, err := NewPaths("state")
	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(paths.BaseDir))
	assert.DirExists(t, filepath.Join(tmpDir, "state"))
}
