package tarseal

import (
	tarcore "github.com/meigma/tarseal/core"
	"github.com/meigma/tarseal/crypt"
)

// Errors re-exported from core.
var (
	// ErrPathTooLong is returned when a path has no valid ustar name/prefix split.
	ErrPathTooLong = tarcore.ErrPathTooLong

	// ErrFieldTooLong is returned when a value does not fit its header field.
	ErrFieldTooLong = tarcore.ErrFieldTooLong

	// ErrReadFailure is returned when an entry's content could not be read.
	ErrReadFailure = tarcore.ErrReadFailure

	// ErrSizeOverflow is returned when byte counts exceed supported limits.
	ErrSizeOverflow = tarcore.ErrSizeOverflow

	// ErrNothingSelected is returned when Seal is called without any entries.
	ErrNothingSelected = tarcore.ErrNothingSelected
)

// Errors re-exported from crypt.
var (
	// ErrEncryption is returned when encryption fails.
	ErrEncryption = crypt.ErrEncryption

	// ErrNoKey is returned when no recipient key is available.
	ErrNoKey = crypt.ErrNoKey
)

// Structured errors re-exported from core.
type (
	PathError  = tarcore.PathError
	FieldError = tarcore.FieldError
	ReadError  = tarcore.ReadError
)
