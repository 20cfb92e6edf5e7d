package config

import (
	"AppTasks/internal/constants"
	"AppTasks/internal/logger"
	"AppTasks/internal/paths"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/user"
	"path/filepath"

	"github.com/adrg/xdg"
	toml "github.com/pelletier/go-toml/v2"
)

// AppConfig holds the application configuration settings.
type AppConfig struct {
	Paths   PathConfig    `toml:"paths"`
	Version VersionConfig `toml:"version"`

	// These are helper fields for runtime use, not saved to TOML
	ProjectDir    string `toml:"-"`
	EnvFile       string `toml:"-"`
	TemplateFile  string `toml:"-"`
	VersionFile   string `toml:"-"`
	VersionOKFile string `toml:"-"`
	LockFile      string `toml:"-"`
}

// PathConfig holds file and folder locations. Relative files resolve against ProjectFolder.
type PathConfig struct {
	ProjectFolder  string `toml:"project_folder"`
	EnvFile        string `toml:"env_file"`
	TemplateSuffix string `toml:"template_suffix"`
	VersionFile    string `toml:"version_file"`
	VersionOKFile  string `toml:"version_ok_file"`
	LockFile       string `toml:"lock_file"`
}

// VersionConfig holds settings for recording the project version.
type VersionConfig struct {
	Backup bool `toml:"backup"`
}

// Default returns the built-in configuration.
func Default() AppConfig {
	return AppConfig{
		Paths: PathConfig{
			ProjectFolder:  "${PWD}",
			EnvFile:        constants.EnvFileName,
			TemplateSuffix: constants.EnvTemplateSuffix,
			VersionFile:    constants.DefaultVersionFile,
			VersionOKFile:  constants.DefaultVersionOK,
			LockFile:       constants.EnvFileName + constants.LockFileSuffix,
		},
		Version: VersionConfig{
			Backup: true,
		},
	}
}

// ExpandVariables expands environment variables in the config values.
// It supports:
// - ${XDG_CONFIG_HOME} -> xdg.ConfigHome
// - ${XDG_DATA_HOME}   -> xdg.DataHome
// - ${XDG_STATE_HOME}  -> xdg.StateHome
// - ${XDG_CACHE_HOME}  -> xdg.CacheHome
// - ${HOME}            -> os.UserHomeDir()
// - ${USER}            -> Current username
// - ${PWD}             -> Current working directory
func ExpandVariables(val string) string {
	mapper := func(varName string) string {
		switch varName {
		case "XDG_CONFIG_HOME":
			return xdg.ConfigHome
		case "XDG_DATA_HOME":
			return xdg.DataHome
		case "XDG_STATE_HOME":
			return xdg.StateHome
		case "XDG_CACHE_HOME":
			return xdg.CacheHome
		case "HOME":
			home, err := os.UserHomeDir()
			if err != nil {
				return ""
			}
			return home
		case "USER":
			u, err := user.Current()
			if err != nil {
				return os.Getenv("USERNAME") // Fallback for Windows
			}
			return u.Username
		case "PWD":
			wd, err := os.Getwd()
			if err != nil {
				return constants.DefaultProjectDir
			}
			return wd
		}
		return ""
	}
	return os.Expand(val, mapper)
}

// Resolve fills the runtime fields from the configured paths.
// $APPTASKS_DIR, when set, replaces the configured project folder.
func (c *AppConfig) Resolve() {
	project := c.Paths.ProjectFolder
	if dir := os.Getenv(constants.ProjectDirEnvVar); dir != "" {
		project = dir
	}
	project = ExpandVariables(project)
	if project == "" {
		project = constants.DefaultProjectDir
	}
	if abs, err := filepath.Abs(project); err == nil {
		project = abs
	}

	c.ProjectDir = project
	c.EnvFile = paths.ResolveIn(project, ExpandVariables(c.Paths.EnvFile))
	c.TemplateFile = c.EnvFile + c.Paths.TemplateSuffix
	c.VersionFile = paths.ResolveIn(project, ExpandVariables(c.Paths.VersionFile))
	c.VersionOKFile = paths.ResolveIn(project, ExpandVariables(c.Paths.VersionOKFile))
	c.LockFile = paths.ResolveIn(project, ExpandVariables(c.Paths.LockFile))
}

// LoadAppConfig reads the configuration file and returns the configuration.
// A missing file yields the defaults; an invalid one is reported and also
// yields the defaults.
func LoadAppConfig(ctx context.Context) AppConfig {
	path := paths.GetConfigFilePath()
	conf, err := LoadAppConfigFrom(path)
	if err != nil {
		logger.Warn(ctx, "Ignoring configuration file '{{_File_}}%s{{|-|}}': %v", path, err)
		conf = Default()
		conf.Resolve()
	}
	return conf
}

// LoadAppConfigFrom reads the configuration from path on top of the defaults.
// A missing file is not an error.
func LoadAppConfigFrom(path string) (AppConfig, error) {
	conf := Default()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := toml.Unmarshal(data, &conf); err != nil {
			return conf, fmt.Errorf("parsing '%s': %w", path, err)
		}
	case !errors.Is(err, fs.ErrNotExist):
		return conf, fmt.Errorf("reading '%s': %w", path, err)
	}

	conf.Resolve()
	return conf, nil
}

// Marshal returns the TOML form of the configuration.
func Marshal(conf AppConfig) ([]byte, error) {
	return toml.Marshal(conf)
}
