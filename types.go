package tarseal

import tarcore "github.com/meigma/tarseal/core"

// Re-exported archive types.
type (
	// Source is a raw (path, content) pair from file selection.
	Source = tarcore.Source

	// Entry is one normalized file destined for the archive.
	Entry = tarcore.Entry

	// ContentProvider opens the content of a single entry.
	ContentProvider = tarcore.ContentProvider

	// ContentFunc adapts a function to ContentProvider.
	ContentFunc = tarcore.ContentFunc

	// Compression identifies the compression applied before encryption.
	Compression = tarcore.Compression
)

// Compression algorithms.
const (
	CompressionNone = tarcore.CompressionNone
	CompressionZstd = tarcore.CompressionZstd
	CompressionGzip = tarcore.CompressionGzip
)

// Content providers re-exported from core.
var (
	Bytes  = tarcore.Bytes
	String = tarcore.String
	File   = tarcore.File
	FS     = tarcore.FS
)

// ParseCompression parses a compression name ("none", "zstd", "gzip").
func ParseCompression(s string) (Compression, error) {
	return tarcore.ParseCompression(s)
}
