package tarseal

import (
	"bytes"
	"fmt"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"

	"github.com/meigma/tarseal/core/internal/tartype"
)

// Compression identifies the compression applied to a finished archive.
type Compression = tartype.Compression

const (
	CompressionNone = tartype.CompressionNone
	CompressionZstd = tartype.CompressionZstd
	CompressionGzip = tartype.CompressionGzip
)

// ParseCompression maps a name ("none", "zstd", "gzip") to a Compression.
func ParseCompression(name string) (Compression, error) {
	switch name {
	case "", "none":
		return CompressionNone, nil
	case "zstd", "zst":
		return CompressionZstd, nil
	case "gzip", "gz":
		return CompressionGzip, nil
	default:
		return CompressionNone, fmt.Errorf("unknown compression %q", name)
	}
}

// Compress returns archive compressed with c. CompressionNone returns
// archive unchanged.
func Compress(archive []byte, c Compression) ([]byte, error) {
	switch c {
	case CompressionNone:
		return archive, nil
	case CompressionZstd:
		enc, err := zstd.NewWriter(nil, zstd.WithEncoderConcurrency(1))
		if err != nil {
			return nil, fmt.Errorf("create zstd encoder: %w", err)
		}
		defer enc.Close()
		return enc.EncodeAll(archive, make([]byte, 0, len(archive)/2)), nil
	case CompressionGzip:
		var buf bytes.Buffer
		zw, err := gzip.NewWriterLevel(&buf, gzip.BestCompression)
		if err != nil {
			return nil, fmt.Errorf("create gzip writer: %w", err)
		}
		if _, err := zw.Write(archive); err != nil {
			return nil, fmt.Errorf("gzip: %w", err)
		}
		if err := zw.Close(); err != nil {
			return nil, fmt.Errorf("close gzip writer: %w", err)
		}
		return buf.Bytes(), nil
	default:
		return nil, fmt.Errorf("unknown compression %d", c)
	}
}
