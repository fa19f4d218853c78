package filex

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEnsureParentDir_CreatesDirectory(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "data", "acp.db")

	got, err := EnsureParentDir(path)
	require.NoError(t, err)
	require.Equal(t, filepath.Join(tmp, "data"), got)

	fi, err := os.Stat(got)
	require.NoError(t, err)
	require.True(t, fi.IsDir(), "should create a directory")
}

func TestEnsureParentDir_Idempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "acp.db")

	first, err := EnsureParentDir(path)
	require.NoError(t, err)

	second, err := EnsureParentDir(path)
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestEnsureParentDir_FailsIfFileWithSameNameExists(t *testing.T) {
	tmp := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmp, "data"), []byte("x"), 0o660))

	_, err := EnsureParentDir(filepath.Join(tmp, "data", "acp.db"))
	require.Error(t, err, "should fail when a file exists with the same name")
}

func TestRegularFile(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "preview.png")
	require.NoError(t, os.WriteFile(path, []byte("png"), 0o600))

	abs, fi, err := RegularFile(path)
	require.NoError(t, err)
	require.Equal(t, path, abs)
	require.Equal(t, int64(3), fi.Size())

	_, _, err = RegularFile(tmp)
	require.Error(t, err, "directories are rejected")

	_, _, err = RegularFile(filepath.Join(tmp, "missing"))
	require.ErrorIs(t, err, os.ErrNotExist)
}
