package project

import (
	"errors"
	"fmt"
)

// ErrVersionWriteFailure is matched by errors.Is for any failure to record a project version.
var ErrVersionWriteFailure = errors.New("version write failure")

// VersionWriteError names the file and version that could not be written.
type VersionWriteError struct {
	Path    string
	Version string
	Err     error
}

func (e *VersionWriteError) Error() string {
	msg := fmt.Sprintf("Failed to write version '%s' to '%s'", e.Version, e.Path)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *VersionWriteError) Is(target error) bool { return target == ErrVersionWriteFailure }

func (e *VersionWriteError) Unwrap() error { return e.Err }
