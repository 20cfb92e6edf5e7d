package fsutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteFileAtomic(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")

	require.NoError(t, WriteFileAtomic(path, []byte("NEW=2"), 0644))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "NEW=2", string(data))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0644), info.Mode().Perm())

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp file left behind")
}

func TestWriteFileAtomicKeepsExistingMode(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("SECRET=old\n"), 0600))
	require.NoError(t, os.Chmod(path, 0600))

	require.NoError(t, WriteFileAtomic(path, []byte("SECRET=new"), 0644))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestWriteFileAtomicMissingDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", ".env")

	err := WriteFileAtomic(path, []byte("A=1"), 0644)
	require.Error(t, err)
	assert.NoFileExists(t, path)
}

func TestBackupFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "version")
	require.NoError(t, os.WriteFile(path, []byte("1.0.0"), 0644))
	require.NoError(t, os.WriteFile(path+".bak", []byte("0.9.0"), 0644))

	bak, err := BackupFile(path)
	require.NoError(t, err)
	assert.Equal(t, path+".bak", bak)

	// The original stays until it is replaced
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "1.0.0", string(data))

	data, err = os.ReadFile(bak)
	require.NoError(t, err)
	assert.Equal(t, "1.0.0", string(data))
}

func TestBackupFileMissing(t *testing.T) {
	_, err := BackupFile(filepath.Join(t.TempDir(), "version"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestIsRegularFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "f")
	require.NoError(t, os.WriteFile(path, nil, 0644))

	ok, err := IsRegularFile(path)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = IsRegularFile(dir)
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = IsRegularFile(filepath.Join(dir, "nope"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
