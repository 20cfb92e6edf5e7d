package fsutil

import (
	"AppTasks/internal/constants"
	"fmt"
	"os"
	"path/filepath"
)

// IsRegularFile returns true if path is a regular file.
// If the path does not exist, the error from os.Stat() is returned.
func IsRegularFile(path string) (bool, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return false, err
	}

	return fi.Mode().IsRegular(), nil
}

// BackupFile copies a file to <OldName><constants.BackupSuffix> and returns the new path.
// The original stays in place and an existing backup is replaced.
func BackupFile(path string) (string, error) {
	bakFilePath := path + constants.BackupSuffix

	info, err := os.Stat(path)
	if err != nil {
		return bakFilePath, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return bakFilePath, err
	}

	return bakFilePath, WriteFileAtomic(bakFilePath, data, info.Mode().Perm())
}

// WriteFileAtomic writes data to a temporary file next to path and renames it over path.
// Readers either see the previous content or the complete new content, never a truncated file.
// An existing file keeps its permissions; perm applies to new files.
func WriteFileAtomic(path string, data []byte, perm os.FileMode) (err error) {
	dir := filepath.Dir(path)

	if info, statErr := os.Stat(path); statErr == nil {
		perm = info.Mode().Perm()
	}

	tmp, err := os.CreateTemp(dir, constants.TempFilePattern)
	if err != nil {
		return fmt.Errorf("creating temp file in '%s': %w", dir, err)
	}
	tmpPath := tmp.Name()

	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmpPath)
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		return fmt.Errorf("writing '%s': %w", tmpPath, err)
	}
	if err = tmp.Sync(); err != nil {
		return fmt.Errorf("syncing '%s': %w", tmpPath, err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("closing '%s': %w", tmpPath, err)
	}
	if err = os.Chmod(tmpPath, perm); err != nil {
		return fmt.Errorf("setting permissions on '%s': %w", tmpPath, err)
	}
	if err = os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("renaming '%s' to '%s': %w", tmpPath, path, err)
	}

	return nil
}
