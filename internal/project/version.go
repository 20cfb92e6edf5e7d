package project

import (
	"AppTasks/internal/constants"
	"AppTasks/internal/fsutil"
	"AppTasks/internal/logger"
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Getter is the read side of a loaded configuration.
type Getter interface {
	Get(key string) (string, bool)
}

// ResolveVersion returns the project version taken from GIT_BRANCH in cfg,
// or constants.UnknownVersion when it is not set.
func ResolveVersion(ctx context.Context, cfg Getter) string {
	logger.Info(ctx, "Getting project version")

	version := constants.UnknownVersion
	if cfg != nil {
		if v, ok := cfg.Get(constants.VersionEnvVarName); ok && strings.TrimSpace(v) != "" {
			version = strings.TrimSpace(v)
		}
	}

	logger.Info(ctx, "Version: {{_Version_}}%s{{|-|}}", version)
	return version
}

// WriteVersion records version in path, creating the parent folder as needed.
// With backup set, an existing file is first copied to <path>.bak and its
// content is returned as previous. The file is only replaced once the new
// version is fully written, so a failure leaves the previous version in place.
func WriteVersion(ctx context.Context, path, version string, backup bool) (previous string, err error) {
	if version == "" {
		return "", &VersionWriteError{Path: path, Version: version, Err: errors.New("empty version")}
	}

	if err := os.MkdirAll(filepath.Dir(path), constants.DefaultFolderMode); err != nil {
		return "", &VersionWriteError{Path: path, Version: version, Err: err}
	}

	if backup {
		data, readErr := os.ReadFile(path)
		switch {
		case readErr == nil:
			previous = strings.TrimSpace(string(data))
			bak, err := fsutil.BackupFile(path)
			if err != nil {
				return "", &VersionWriteError{Path: path, Version: version, Err: err}
			}
			logger.Debug(ctx, "Backed up '{{_File_}}%s{{|-|}}' to '{{_File_}}%s{{|-|}}'.", path, bak)
		case !errors.Is(readErr, fs.ErrNotExist):
			return "", &VersionWriteError{Path: path, Version: version, Err: readErr}
		}
	}

	if err := fsutil.WriteFileAtomic(path, []byte(version), constants.DefaultFileMode); err != nil {
		return previous, &VersionWriteError{Path: path, Version: version, Err: err}
	}

	logger.Notice(ctx, "Version '{{_Version_}}%s{{|-|}}' saved to '{{_File_}}%s{{|-|}}'.", version, path)
	return previous, nil
}
