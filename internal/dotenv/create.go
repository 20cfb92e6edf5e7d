package dotenv

import (
	"AppTasks/internal/constants"
	"AppTasks/internal/fsutil"
	"AppTasks/internal/logger"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
)

// CreateResult describes what Create wrote.
type CreateResult struct {
	TemplateLines int
	OutputLines   int
	Appended      []string
}

// Create writes envFile from templateFile with overrides applied.
//
// The template must exist and be a readable regular file. The output is
// written to a temporary file next to envFile and renamed into place, so a
// failed write leaves any previous envFile untouched.
func Create(ctx context.Context, templateFile, envFile string, overrides *OverrideSet) (CreateResult, error) {
	logger.Notice(ctx, "Creating '{{_File_}}%s{{|-|}}' file from '{{_File_}}%s{{|-|}}'.", envFile, templateFile)

	content, err := readTemplate(templateFile)
	if err != nil {
		return CreateResult{}, err
	}

	template := ParseLines(content)
	lines, appended := mergeLines(template, overrides)

	for _, key := range overrides.Keys() {
		v, _ := overrides.Get(key)
		logger.Debug(ctx, "Override {{_Var_}}%s=%s{{|-|}}", key, v)
	}
	if len(appended) > 0 {
		logger.Info(ctx, "Adding variables not found in template: {{_Var_}}%s{{|-|}}", strings.Join(appended, " "))
	}

	if err := fsutil.WriteFileAtomic(envFile, []byte(strings.Join(lines, "\n")), constants.DefaultFileMode); err != nil {
		return CreateResult{}, &PathError{
			Kind: ErrWriteFailure,
			Path: envFile,
			Msg:  fmt.Sprintf("Failed to save %d lines", len(template)),
			Err:  err,
		}
	}

	logger.Notice(ctx, "Saved {{_Var_}}%d{{|-|}} lines to '{{_File_}}%s{{|-|}}'.", len(template), envFile)

	return CreateResult{
		TemplateLines: len(template),
		OutputLines:   len(lines),
		Appended:      appended,
	}, nil
}

// readTemplate checks that path is a readable regular file and returns its content.
func readTemplate(path string) (string, error) {
	regular, err := fsutil.IsRegularFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", &PathError{Kind: ErrTemplateNotFound, Path: path, Msg: ".env template file does not exist"}
		}
		return "", &PathError{Kind: ErrTemplateNotReadable, Path: path, Msg: ".env template file is not readable", Err: err}
	}
	if !regular {
		return "", &PathError{Kind: ErrTemplateNotReadable, Path: path, Msg: ".env template file is not a file"}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", &PathError{Kind: ErrTemplateNotReadable, Path: path, Msg: ".env template file is not readable", Err: err}
	}
	return string(data), nil
}
