package tarseal

import (
	"bytes"
	"context"
	"io"
	"io/fs"
	"os"
	"strings"
)

// Entry is one file destined for the archive.
type Entry struct {
	// Path is the normalized archive path (see NormalizePath).
	Path string

	// Content supplies the file bytes. It is opened and read exactly once
	// per build.
	Content ContentProvider

	// Size is the expected content length. Zero means unknown; a non-zero
	// value must match the bytes actually read.
	Size uint64

	// ModTime is the modification time in unix seconds. Zero means unknown,
	// in which case the opened content's Stat time or the build time is used.
	ModTime uint64
}

// Source is a raw (path, content) pair as supplied by file selection,
// before path normalization.
type Source struct {
	Path    string
	Content ContentProvider
}

// ContentProvider opens the content of a single entry.
//
// If the returned reader also implements Stat() (fs.FileInfo, error), as
// *os.File and fs.File do, its modification time is used for entries
// without one and non-regular files are rejected.
type ContentProvider interface {
	Open(ctx context.Context) (io.ReadCloser, error)
}

// ContentFunc adapts a function to ContentProvider.
type ContentFunc func(ctx context.Context) (io.ReadCloser, error)

// Open calls f.
func (f ContentFunc) Open(ctx context.Context) (io.ReadCloser, error) { return f(ctx) }

// Bytes returns a provider serving b. b must not be modified during a build.
func Bytes(b []byte) ContentProvider {
	return ContentFunc(func(context.Context) (io.ReadCloser, error) {
		return io.NopCloser(bytes.NewReader(b)), nil
	})
}

// String returns a provider serving s.
func String(s string) ContentProvider {
	return ContentFunc(func(context.Context) (io.ReadCloser, error) {
		return io.NopCloser(strings.NewReader(s)), nil
	})
}

// File returns a provider reading the named file from the host filesystem.
func File(name string) ContentProvider {
	return ContentFunc(func(context.Context) (io.ReadCloser, error) {
		return os.Open(name)
	})
}

// FS returns a provider reading name from fsys.
func FS(fsys fs.FS, name string) ContentProvider {
	return ContentFunc(func(context.Context) (io.ReadCloser, error) {
		return fsys.Open(name)
	})
}

// statter is implemented by *os.File and fs.File.
type statter interface {
	Stat() (fs.FileInfo, error)
}
