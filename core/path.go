package tarseal

import "github.com/meigma/tarseal/core/internal/pathutil"

// FallbackName is the entry name used for paths that normalize to nothing.
const FallbackName = pathutil.FallbackName

// NormalizePath converts a user-provided path to an archive entry path.
//
// Backslashes become slashes, leading slashes are stripped, then a single
// leading "./" is stripped. An empty result becomes FallbackName.
func NormalizePath(p string) string {
	return pathutil.Normalize(p)
}
