// Package logerr defines the error kinds the engine raises itself: invalid
// arguments, a resource that has already gone away, a destroyed logger, and
// I/O/system failures. Producer-side failures (a formatter or backend
// returning an error) have no kind of their own here; the error a backend
// returns is passed on unchanged.
package logerr

import (
	"errors"
	"fmt"
)

// Sentinel kinds. Use errors.Is against these after wrapping with %w.
var (
	// ErrInvalidArgument covers zero worker count, nil module, non-positive
	// rotation parameters, and duplicate/missing names.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrResourceGone covers a dispatcher or worker pool that a live
	// logger/sink still references weakly but which has already been torn
	// down.
	ErrResourceGone = errors.New("resource no longer exists")

	// ErrDestroyed is returned by Logger.Log once the logger has been
	// deleted from its manager.
	ErrDestroyed = errors.New("logger destroyed")
)

// SystemError wraps an I/O or OS-level failure (file open/write/flush/
// rename) together with the underlying error, mirroring how the original
// system_error type carries a std::error_code alongside a message.
type SystemError struct {
	Msg string
	Err error
}

func (e *SystemError) Error() string {
	if e.Err == nil {
		return e.Msg
	}
	return fmt.Sprintf("%s: %v", e.Msg, e.Err)
}

func (e *SystemError) Unwrap() error { return e.Err }

// NewSystemError builds a SystemError, the Go analogue of
// logency::system_error(code, what).
func NewSystemError(msg string, err error) *SystemError {
	return &SystemError{Msg: msg, Err: err}
}

// InvalidArgument wraps a message as ErrInvalidArgument.
func InvalidArgument(format string, args ...any) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrInvalidArgument)
}

// ResourceGone wraps a message as ErrResourceGone.
func ResourceGone(format string, args ...any) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrResourceGone)
}

// Destroyed wraps a message as ErrDestroyed.
func Destroyed(format string, args ...any) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrDestroyed)
}
