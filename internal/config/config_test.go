package config

import (
	"AppTasks/internal/constants"
	"AppTasks/internal/logger"
	"AppTasks/internal/testutils"
	"bytes"
	"context"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadAppConfig(t *testing.T) {
	tempDir := t.TempDir()
	t.Setenv(constants.ProjectDirEnvVar, "")

	conf := Default()
	conf.Paths.ProjectFolder = filepath.Join(tempDir, "project")
	conf.Version.Backup = false
	data, err := Marshal(conf)
	require.NoError(t, err)
	path := testutils.WriteFile(t, tempDir, constants.AppConfigFileName, string(data))
	t.Setenv(constants.ConfigFileEnvVar, path)

	loaded := LoadAppConfig(context.Background())
	assert.False(t, loaded.Version.Backup)
	assert.Equal(t, filepath.Join(tempDir, "project"), loaded.ProjectDir)
	assert.Equal(t, filepath.Join(tempDir, "project", ".env"), loaded.EnvFile)
	assert.Equal(t, filepath.Join(tempDir, "project", ".env.example"), loaded.TemplateFile)
	assert.Equal(t, filepath.Join(tempDir, "project", "build", "version.ok"), loaded.VersionOKFile)
}

func TestLoadAppConfigWarnsOnInvalidFile(t *testing.T) {
	var buf bytes.Buffer
	saved := slog.Default()
	slog.SetDefault(slog.New(logger.NewHandler(&buf, false, logger.LevelNotice)))
	t.Cleanup(func() { slog.SetDefault(saved) })

	path := testutils.WriteFile(t, t.TempDir(), constants.AppConfigFileName, "[paths\n")
	t.Setenv(constants.ConfigFileEnvVar, path)

	conf := LoadAppConfig(context.Background())
	assert.Equal(t, Default().Paths, conf.Paths)
	assert.Contains(t, buf.String(), "[WARN  ]")
	assert.Contains(t, buf.String(), path)
}

func TestLoadAppConfigFrom(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(constants.ProjectDirEnvVar, "")
	path := testutils.WriteFile(t, dir, "apptasks.toml", `
[paths]
project_folder = "`+filepath.ToSlash(dir)+`"
version_file = "/var/lib/app/version"
lock_file = "run/env.lock"
`)

	conf, err := LoadAppConfigFrom(path)
	require.NoError(t, err)

	assert.True(t, conf.Version.Backup)
	assert.Equal(t, "/var/lib/app/version", conf.VersionFile)
	assert.Equal(t, filepath.Join(dir, "run", "env.lock"), conf.LockFile)
	assert.Equal(t, filepath.Join(dir, ".env"), conf.EnvFile)
}

func TestLoadAppConfigFromErrors(t *testing.T) {
	dir := t.TempDir()

	conf, err := LoadAppConfigFrom(filepath.Join(dir, "missing.toml"))
	require.NoError(t, err)
	assert.Equal(t, Default().Paths, conf.Paths)

	bad := testutils.WriteFile(t, dir, "bad.toml", "[paths\n")
	_, err = LoadAppConfigFrom(bad)
	assert.Error(t, err)
}

func TestProjectDirEnvOverride(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(constants.ProjectDirEnvVar, dir)

	conf := Default()
	conf.Resolve()
	assert.Equal(t, dir, conf.ProjectDir)
	assert.Equal(t, filepath.Join(dir, ".env.lock"), conf.LockFile)
}

func TestExpandVariables(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	assert.Equal(t, dir+"/x", ExpandVariables("${PWD}/x"))
	assert.Equal(t, "/plain", ExpandVariables("/plain"))
	assert.Equal(t, "", ExpandVariables("${NOT_SUPPORTED}"))
}

func TestMarshal(t *testing.T) {
	data, err := Marshal(Default())
	require.NoError(t, err)
	assert.Contains(t, string(data), "[paths]")
	assert.Contains(t, string(data), "template_suffix = '.example'")
	assert.NotContains(t, string(data), "ProjectDir")
}
