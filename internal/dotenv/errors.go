package dotenv

import (
	"errors"
	"fmt"
)

var (
	// ErrTemplateNotFound is returned when the .env template does not exist.
	ErrTemplateNotFound = errors.New("template not found")
	// ErrTemplateNotReadable is returned when the template exists but is not a readable regular file.
	ErrTemplateNotReadable = errors.New("template not readable")
	// ErrWriteFailure is returned when the merged .env file cannot be written.
	ErrWriteFailure = errors.New("write failure")
	// ErrMalformedOverrideToken is returned for an override token that is not KEY=VALUE.
	ErrMalformedOverrideToken = errors.New("malformed override token")
	// ErrFileDeleteFailure is returned when the .env file exists but cannot be removed.
	ErrFileDeleteFailure = errors.New("file delete failure")
)

// PathError records a failed operation on a file.
type PathError struct {
	Kind error // one of the Err* sentinels
	Path string
	Msg  string
	Err  error
}

func (e *PathError) Error() string {
	s := e.Msg
	if s == "" {
		s = e.Kind.Error()
	}
	s = fmt.Sprintf("%s [%s]", s, e.Path)
	if e.Err != nil {
		s += ": " + e.Err.Error()
	}
	return s
}

// Is reports whether target is the kind of this error.
func (e *PathError) Is(target error) bool {
	return target == e.Kind
}

func (e *PathError) Unwrap() error {
	return e.Err
}

// TokenError records an override token that could not be parsed.
type TokenError struct {
	Token string
}

func (e *TokenError) Error() string {
	return fmt.Sprintf("%s [%s]: expected KEY=VALUE", ErrMalformedOverrideToken, e.Token)
}

func (e *TokenError) Is(target error) bool {
	return target == ErrMalformedOverrideToken
}
