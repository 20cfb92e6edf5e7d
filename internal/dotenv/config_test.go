package dotenv

import (
	"AppTasks/internal/testutils"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigLoad(t *testing.T) {
	envFile := testutils.WriteFile(t, t.TempDir(), ".env", "# settings\nGIT_BRANCH=develop\nDB_HOST=db\n")

	cfg := NewConfig(envFile, []string{"GIT_BRANCH=master", "HOME=/home/app"})
	assert.False(t, cfg.Loaded)

	require.NoError(t, cfg.Load(false))
	assert.True(t, cfg.Loaded)
	assert.Equal(t, map[string]string{"GIT_BRANCH": "develop", "DB_HOST": "db"}, cfg.Values())

	// Process environment keeps precedence on a normal load
	v, ok := cfg.Get("GIT_BRANCH")
	assert.True(t, ok)
	assert.Equal(t, "master", v)

	v, _ = cfg.Get("DB_HOST")
	assert.Equal(t, "db", v)

	_, ok = cfg.Get("MISSING")
	assert.False(t, ok)
}

func TestConfigForceLoad(t *testing.T) {
	envFile := testutils.WriteFile(t, t.TempDir(), ".env", "GIT_BRANCH=develop\n")

	cfg := NewConfig(envFile, []string{"GIT_BRANCH=master", "HOME=/home/app"})
	require.NoError(t, cfg.Load(true))

	v, _ := cfg.Get("GIT_BRANCH")
	assert.Equal(t, "develop", v)

	v, _ = cfg.Get("HOME")
	assert.Equal(t, "/home/app", v)
}

func TestConfigLoadMissingFile(t *testing.T) {
	cfg := NewConfig(filepath.Join(t.TempDir(), ".env"), nil)

	require.Error(t, cfg.Load(true))
	assert.False(t, cfg.Loaded)
	_, ok := cfg.Get("GIT_BRANCH")
	assert.False(t, ok)
}

func TestConfigLoadSkipsUnparsableLines(t *testing.T) {
	envFile := testutils.WriteFile(t, t.TempDir(), ".env", "malformed line\nBAD-KEY=x\n=orphan\nGIT_BRANCH=release-2.0\n# A=1\nDB_HOST=db\n")

	cfg := NewConfig(envFile, nil)
	require.NoError(t, cfg.Load(true))
	assert.True(t, cfg.Loaded)
	assert.Equal(t, map[string]string{"GIT_BRANCH": "release-2.0", "DB_HOST": "db"}, cfg.Values())
}
