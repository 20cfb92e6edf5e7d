package tasks

import (
	"AppTasks/internal/constants"
	"AppTasks/internal/logger"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
)

// ErrLocked is returned when another process holds the run lock.
var ErrLocked = errors.New("run lock is held by another process")

// acquireLock takes the exclusive run lock at path without waiting.
// The returned function releases it.
func acquireLock(ctx context.Context, path string) (func(), error) {
	if err := os.MkdirAll(filepath.Dir(path), constants.DefaultFolderMode); err != nil {
		return nil, fmt.Errorf("creating lock folder for '%s': %w", path, err)
	}

	lock := flock.New(path)
	ok, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("locking '%s': %w", path, err)
	}
	if !ok {
		return nil, fmt.Errorf("'%s': %w", path, ErrLocked)
	}
	logger.Debug(ctx, "Acquired run lock '{{_File_}}%s{{|-|}}'.", path)

	return func() {
		if err := lock.Unlock(); err != nil {
			logger.Warn(ctx, "Failed to release run lock '{{_File_}}%s{{|-|}}': %v", path, err)
		}
	}, nil
}
