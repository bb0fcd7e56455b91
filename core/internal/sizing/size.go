// Package sizing provides safe size arithmetic and bounded reads.
package sizing

import (
	"io"
	"math"
)

// ToInt converts a uint64 to int, returning overflowErr if it doesn't fit.
func ToInt(size uint64, overflowErr error) (int, error) {
	if size > uint64(math.MaxInt) {
		return 0, overflowErr
	}
	return int(size), nil
}

// AddUint64 adds two uint64 values, returning (result, false) on overflow.
func AddUint64(a, b uint64) (uint64, bool) {
	sum := a + b
	if sum < a {
		return 0, false
	}
	return sum, true
}

// ReadAllWithLimit reads r to EOF, stopping once more than maxSize bytes
// have been seen. The returned data holds at most maxSize bytes; over
// reports whether r had more.
func ReadAllWithLimit(r io.Reader, maxSize uint64) (data []byte, over bool, err error) {
	if maxSize > uint64(math.MaxInt64-1) {
		maxSize = uint64(math.MaxInt64 - 1)
	}
	lr := &io.LimitedReader{R: r, N: int64(maxSize) + 1} //nolint:gosec // clamped above
	data, err = io.ReadAll(lr)
	if err != nil {
		return nil, false, err
	}
	if uint64(len(data)) > maxSize {
		return data[:maxSize], true, nil
	}
	return data, false, nil
}
