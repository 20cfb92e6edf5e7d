package paths

import (
	"AppTasks/internal/constants"
	"os"
	"path/filepath"
	"runtime"

	"github.com/adrg/xdg"
)

// GetConfigFilePath returns the path of the apptasks.toml settings file.
//
// Lookup order: $APPTASKS_CONFIG, ./apptasks.toml in the working directory,
// then the per-user file (e.g., ~/.config/apptasks/apptasks.toml).
func GetConfigFilePath() string {
	if p := os.Getenv(constants.ConfigFileEnvVar); p != "" {
		return p
	}
	if wd, err := os.Getwd(); err == nil {
		local := filepath.Join(wd, constants.AppConfigFileName)
		if info, err := os.Stat(local); err == nil && info.Mode().IsRegular() {
			return local
		}
	}
	return GetUserConfigFilePath()
}

// GetUserConfigFilePath returns the per-user settings file location.
func GetUserConfigFilePath() string {
	return filepath.Join(GetConfigDir(), constants.AppConfigFileName)
}

// GetConfigDir returns the absolute path to the apptasks configuration directory.
func GetConfigDir() string {
	if runtime.GOOS == "darwin" {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", constants.AppConfigFolderName)
	}
	return filepath.Join(xdg.ConfigHome, constants.AppConfigFolderName)
}

// GetStateDir returns the absolute path to the apptasks state directory.
func GetStateDir() string {
	return filepath.Join(xdg.StateHome, constants.AppStateFolderName)
}

// GetLogFilePath returns the path of the application log file.
func GetLogFilePath() string {
	return filepath.Join(GetStateDir(), constants.AppLogFileName)
}

// ResolveIn joins path onto dir unless path is already absolute.
func ResolveIn(dir, path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(dir, path)
}

// GetExecDirectory returns the directory of the currently running executable.
func GetExecDirectory() string {
	exe, err := os.Executable()
	if err != nil {
		return "."
	}
	return filepath.Dir(exe)
}
