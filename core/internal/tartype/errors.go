// Package tartype holds the types shared by the archive core and its
// internal packages.
package tartype

import (
	"errors"
	"fmt"
)

// Sentinel errors for archive operations.
var (
	// ErrPathTooLong is returned when a path has no valid ustar name/prefix split.
	ErrPathTooLong = errors.New("tarseal: path too long")

	// ErrFieldTooLong is returned when a value does not fit its header field.
	ErrFieldTooLong = errors.New("tarseal: field too long")

	// ErrReadFailure is returned when an entry's content could not be read.
	ErrReadFailure = errors.New("tarseal: read failure")

	// ErrSizeOverflow is returned when byte counts exceed supported limits.
	ErrSizeOverflow = errors.New("tarseal: size overflow")

	// ErrNothingSelected is returned when a seal is requested without entries.
	ErrNothingSelected = errors.New("tarseal: nothing selected")
)

// PathError reports a path that cannot be stored in a ustar header.
type PathError struct {
	Path string
	Err  error
}

func (e *PathError) Error() string {
	return fmt.Sprintf("%v: %q", e.Err, e.Path)
}

func (e *PathError) Unwrap() error { return e.Err }

// FieldError reports a header field whose value exceeds its fixed width.
type FieldError struct {
	Field string
	Value string
	Err   error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%v: %s=%q", e.Err, e.Field, e.Value)
}

func (e *FieldError) Unwrap() error { return e.Err }

// ReadError reports a content provider that failed while being drained.
// It matches both ErrReadFailure and the underlying cause.
type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("%v: %s: %v", ErrReadFailure, e.Path, e.Err)
}

func (e *ReadError) Unwrap() []error { return []error{ErrReadFailure, e.Err} }
