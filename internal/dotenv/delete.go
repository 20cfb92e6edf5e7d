package dotenv

import (
	"AppTasks/internal/logger"
	"context"
	"errors"
	"io/fs"
	"os"
)

// Delete removes envFile. A missing file is only reported as a warning.
func Delete(ctx context.Context, envFile string) error {
	logger.Notice(ctx, "Deleting '{{_File_}}%s{{|-|}}' file.", envFile)

	if _, err := os.Lstat(envFile); errors.Is(err, fs.ErrNotExist) {
		logger.Warn(ctx, "Failed to delete .env file. File not found '{{_File_}}%s{{|-|}}'.", envFile)
		return nil
	}

	if err := os.Remove(envFile); err != nil {
		return &PathError{Kind: ErrFileDeleteFailure, Path: envFile, Msg: "Failed to delete .env file", Err: err}
	}

	logger.Notice(ctx, "Deleted .env file at '{{_File_}}%s{{|-|}}'.", envFile)
	return nil
}
