package tartype

// Compression identifies the compression applied to a finished archive.
type Compression uint8

const (
	CompressionNone Compression = iota
	CompressionZstd
	CompressionGzip
)

// String returns the human-readable name of the compression algorithm.
func (c Compression) String() string {
	switch c {
	case CompressionNone:
		return "none"
	case CompressionZstd:
		return "zstd"
	case CompressionGzip:
		return "gzip"
	default:
		return "unknown"
	}
}

// Extension returns the file name suffix for the algorithm, or "" for none.
func (c Compression) Extension() string {
	switch c {
	case CompressionZstd:
		return "zst"
	case CompressionGzip:
		return "gz"
	default:
		return ""
	}
}
