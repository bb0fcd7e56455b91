package ustar

import (
	"strings"

	"github.com/meigma/tarseal/core/internal/tartype"
)

// Field widths for the split path.
const (
	NameSize   = 100
	PrefixSize = 155
)

// Split divides path into the ustar name and prefix fields.
//
// Paths of at most NameSize bytes are returned unchanged in name. Longer
// paths are split at a slash, trying the rightmost slash first and moving
// left, and the first split where both halves fit is returned. The slash at
// the split point is dropped. Lengths are measured in bytes.
func Split(path string) (name, prefix string, err error) {
	if len(path) <= NameSize {
		return path, "", nil
	}
	for i := strings.LastIndexByte(path, '/'); i > 0; i = strings.LastIndexByte(path[:i], '/') {
		name, prefix = path[i+1:], path[:i]
		if len(name) <= NameSize && len(prefix) <= PrefixSize {
			return name, prefix, nil
		}
	}
	return "", "", &tartype.PathError{Path: path, Err: tartype.ErrPathTooLong}
}
