package fs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/kiln/internal/adapters/fs"
)

// chdirTemp switches into a fresh temporary directory for the duration of the test.
func chdirTemp(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	return dir
}

func TestWorkspace_Exists(t *testing.T) {
	dir := t.TempDir()
	ws := fs.NewWorkspace()

	ok, err := ws.Exists(dir)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = ws.Exists(filepath.Join(dir, "missing"))
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestWorkspace_MkdirAll_Idempotent(t *testing.T) {
	chdirTemp(t)
	ws := fs.NewWorkspace()

	require.NoError(t, ws.MkdirAll("build"))
	require.NoError(t, ws.MkdirAll("build"))

	info, err := os.Stat("build")
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestWorkspace_RemoveAll(t *testing.T) {
	chdirTemp(t)
	ws := fs.NewWorkspace()

	require.NoError(t, os.MkdirAll(filepath.Join("build", "Release"), 0o750))
	require.NoError(t, os.WriteFile(filepath.Join("build", "Release", "engine"), []byte("bin"), 0o600))

	require.NoError(t, ws.RemoveAll("build"))

	_, err := os.Stat("build")
	assert.True(t, os.IsNotExist(err))
}

func TestWorkspace_RemoveAll_Missing(t *testing.T) {
	chdirTemp(t)
	ws := fs.NewWorkspace()

	assert.NoError(t, ws.RemoveAll("build"))
}

func TestWorkspace_Chdir(t *testing.T) {
	dir := chdirTemp(t)
	ws := fs.NewWorkspace()
	require.NoError(t, os.Mkdir("build", 0o750))

	require.NoError(t, ws.Chdir("build"))

	got, err := ws.Getwd()
	require.NoError(t, err)

	want, err := filepath.EvalSymlinks(filepath.Join(dir, "build"))
	require.NoError(t, err)
	got, err = filepath.EvalSymlinks(got)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestWorkspace_Chdir_Missing(t *testing.T) {
	chdirTemp(t)
	ws := fs.NewWorkspace()

	err := ws.Chdir("nope")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to change directory")
}
