package tarseal

import "github.com/meigma/tarseal/core/internal/tartype"

// Sentinel errors for archive operations.
var (
	// ErrPathTooLong is returned when a path has no valid ustar name/prefix split.
	ErrPathTooLong = tartype.ErrPathTooLong

	// ErrFieldTooLong is returned when a value does not fit its header field.
	ErrFieldTooLong = tartype.ErrFieldTooLong

	// ErrReadFailure is returned when an entry's content could not be read.
	ErrReadFailure = tartype.ErrReadFailure

	// ErrSizeOverflow is returned when byte counts exceed supported limits.
	ErrSizeOverflow = tartype.ErrSizeOverflow

	// ErrNothingSelected is returned when a seal is requested without entries.
	ErrNothingSelected = tartype.ErrNothingSelected
)

// Structured errors carrying the offending input.
type (
	// PathError reports a path that cannot be stored in a ustar header.
	PathError = tartype.PathError

	// FieldError reports a header field whose value exceeds its fixed width.
	FieldError = tartype.FieldError

	// ReadError reports a content provider that failed while being drained.
	ReadError = tartype.ReadError
)
