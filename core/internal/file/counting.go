// Package file provides the counting writer archives are emitted through.
package file

import (
	"errors"
	"io"
)

// ErrOverflow indicates the byte counter exceeded its maximum value.
var ErrOverflow = errors.New("tarseal: write counter overflow")

// zeroBlock is a source of padding bytes.
var zeroBlock [512]byte

// CountingWriter wraps a writer and counts bytes written.
type CountingWriter struct {
	W io.Writer
	N int64
}

// Write implements io.Writer.
func (cw *CountingWriter) Write(p []byte) (int, error) {
	n, err := cw.W.Write(p)
	if n > 0 {
		if cw.N > (1<<63-1)-int64(n) {
			return n, ErrOverflow
		}
		cw.N += int64(n)
	}
	return n, err
}

// WriteZeros writes n zero bytes.
func (cw *CountingWriter) WriteZeros(n int) error {
	for n > 0 {
		chunk := min(n, len(zeroBlock))
		if _, err := cw.Write(zeroBlock[:chunk]); err != nil {
			return err
		}
		n -= chunk
	}
	return nil
}
