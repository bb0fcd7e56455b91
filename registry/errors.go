package registry

import "errors"

// Sentinel errors for registry operations.
var (
	// ErrInvalidReference is returned when a reference or tag is malformed.
	ErrInvalidReference = errors.New("registry: invalid reference")

	// ErrInvalidManifest is returned when a manifest is not a sealed archive manifest.
	ErrInvalidManifest = errors.New("registry: invalid sealed archive manifest")

	// ErrDigestMismatch is returned when content does not match its expected digest.
	ErrDigestMismatch = errors.New("registry: digest mismatch")
)
