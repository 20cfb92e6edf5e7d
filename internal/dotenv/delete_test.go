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

func TestDelete(t *testing.T) {
	envFile := testutils.WriteFile(t, t.TempDir(), ".env", "A=1")

	require.NoError(t, Delete(context.Background(), envFile))
	assert.NoFileExists(t, envFile)
}

func TestDeleteMissingIsNotAnError(t *testing.T) {
	assert.NoError(t, Delete(context.Background(), filepath.Join(t.TempDir(), ".env")))
}

func TestDeleteFailure(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, ".env")
	// A non-empty directory cannot be removed with os.Remove
	testutils.WriteFile(t, envFile, "keep", "x")

	err := Delete(context.Background(), envFile)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrFileDeleteFailure))

	_, statErr := os.Stat(envFile)
	assert.NoError(t, statErr)
}
