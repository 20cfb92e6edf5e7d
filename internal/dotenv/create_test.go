package dotenv

import (
	"AppTasks/internal/testutils"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreate(t *testing.T) {
	dir := t.TempDir()
	tmpl := testutils.WriteFile(t, dir, ".env.example", "A=1\nB=2\n# comment\n")
	envFile := filepath.Join(dir, ".env")

	res, err := Create(context.Background(), tmpl, envFile, overrides(t, "B=9 C=3"))
	require.NoError(t, err)

	assert.Equal(t, "A=1\nB=9\n# comment\nC=3", testutils.ReadFile(t, envFile))
	assert.Equal(t, 3, res.TemplateLines)
	assert.Equal(t, 4, res.OutputLines)
	assert.Equal(t, []string{"C"}, res.Appended)
}

func TestCreateReplacesExisting(t *testing.T) {
	dir := t.TempDir()
	tmpl := testutils.WriteFile(t, dir, ".env.example", "A=1\n")
	envFile := testutils.WriteFile(t, dir, ".env", "OLD=value\nA=7\n")

	_, err := Create(context.Background(), tmpl, envFile, nil)
	require.NoError(t, err)
	assert.Equal(t, "A=1", testutils.ReadFile(t, envFile))
}

func TestCreateTemplateNotFound(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, ".env")

	_, err := Create(context.Background(), filepath.Join(dir, ".env.example"), envFile, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrTemplateNotFound))
	assert.Contains(t, err.Error(), ".env.example")
	assert.NoFileExists(t, envFile)
}

func TestCreateTemplateIsDirectory(t *testing.T) {
	dir := t.TempDir()
	tmpl := filepath.Join(dir, ".env.example")
	require.NoError(t, os.Mkdir(tmpl, 0755))

	_, err := Create(context.Background(), tmpl, filepath.Join(dir, ".env"), nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrTemplateNotReadable))
	assert.False(t, errors.Is(err, ErrTemplateNotFound))
}

func TestCreateTemplateUnreadable(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("permission bits are not enforced for root")
	}
	dir := t.TempDir()
	tmpl := testutils.WriteFile(t, dir, ".env.example", "A=1\n")
	require.NoError(t, os.Chmod(tmpl, 0))

	_, err := Create(context.Background(), tmpl, filepath.Join(dir, ".env"), nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrTemplateNotReadable))
}

func TestCreateWriteFailure(t *testing.T) {
	dir := t.TempDir()
	tmpl := testutils.WriteFile(t, dir, ".env.example", "A=1\n")
	envFile := filepath.Join(dir, "missing", ".env")

	_, err := Create(context.Background(), tmpl, envFile, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrWriteFailure))

	var pathErr *PathError
	require.True(t, errors.As(err, &pathErr))
	assert.Equal(t, envFile, pathErr.Path)
	assert.NoFileExists(t, envFile)
}

func TestCreateKeepsExistingMode(t *testing.T) {
	dir := t.TempDir()
	tmpl := testutils.WriteFile(t, dir, ".env.example", "SECRET=\n")
	envFile := testutils.WriteFile(t, dir, ".env", "SECRET=old\n")
	require.NoError(t, os.Chmod(envFile, 0600))

	_, err := Create(context.Background(), tmpl, envFile, overrides(t, "SECRET=hunter2"))
	require.NoError(t, err)

	info, err := os.Stat(envFile)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
	assert.Equal(t, "SECRET=hunter2", testutils.ReadFile(t, envFile))
}

func TestCreateWriteFailureKeepsExisting(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("permission bits are not enforced for root")
	}
	dir := t.TempDir()
	tmpl := testutils.WriteFile(t, t.TempDir(), ".env.example", "A=1\n")
	envFile := testutils.WriteFile(t, dir, ".env", "A=old\n")
	require.NoError(t, os.Chmod(dir, 0555))
	t.Cleanup(func() { _ = os.Chmod(dir, 0755) })

	_, err := Create(context.Background(), tmpl, envFile, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrWriteFailure))
	assert.Equal(t, "A=old\n", testutils.ReadFile(t, envFile))
}

func TestCreateRenameFailureLeavesNoTempFile(t *testing.T) {
	dir := t.TempDir()
	tmpl := testutils.WriteFile(t, dir, ".env.example", "A=1\n")
	// A non-empty folder at the target cannot be replaced by the rename
	envFile := filepath.Join(dir, ".env")
	keep := testutils.WriteFile(t, envFile, "keep", "old")

	_, err := Create(context.Background(), tmpl, envFile, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrWriteFailure))
	assert.Equal(t, "old", testutils.ReadFile(t, keep))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 2, "temp file left behind")
}
