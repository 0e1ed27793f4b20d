package common

import (
	"errors"
	"fmt"
)

// Common error types used across filesystem packages
var (
	ErrInvalidPath       = errors.New("invalid path: target does not exist")
	ErrNoParentDirectory = errors.New("path has no parent directory")
	ErrPathEmpty         = errors.New("path cannot be empty")
	ErrPathInvalid       = errors.New("path contains invalid characters")
)

// IOError wraps a failed filesystem call with the operation and path involved.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("io error: %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// ErrorUtils provides common error handling utilities
type ErrorUtils struct{}

// NewErrorUtils creates a new ErrorUtils instance
func NewErrorUtils() *ErrorUtils {
	return &ErrorUtils{}
}

// WrapIO wraps err as an IOError. Returns nil for a nil err.
func (eu *ErrorUtils) WrapIO(err error, op, path string) error {
	if err == nil {
		return nil
	}
	return &IOError{Op: op, Path: path, Err: err}
}

// InvalidPath returns ErrInvalidPath annotated with path.
func (eu *ErrorUtils) InvalidPath(path string) error {
	return fmt.Errorf("%w: %s", ErrInvalidPath, path)
}

// IsIOError reports whether err carries an IOError anywhere in its chain.
func IsIOError(err error) bool {
	var ioErr *IOError
	return errors.As(err, &ioErr)
}
