package tarseal

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/opencontainers/go-digest"

	tarcore "github.com/meigma/tarseal/core"
	"github.com/meigma/tarseal/crypt"
)

// Sealed is an encrypted archive ready for download or storage.
type Sealed struct {
	// Name is the file name, encrypted-<YYYYMMDDTHHMMSS>.tar.<ext>.
	Name string

	// Data is the encrypted archive.
	Data []byte

	// Digest is the SHA-256 digest of Data.
	Digest digest.Digest

	// Entries lists the archived paths in archive order.
	Entries []string

	// ArchiveSize is the size of the plaintext ustar archive.
	ArchiveSize int

	// Compression is the algorithm applied before encryption.
	Compression Compression

	// Armored reports whether Data is ASCII-armored.
	Armored bool
}

// Size returns the length of the encrypted data.
func (s *Sealed) Size() int64 {
	return int64(len(s.Data))
}

// Seal collects the input sets, builds a ustar archive, optionally
// compresses it, and encrypts it to key.
//
// Sets are merged with later duplicates replacing earlier ones and sorted by
// normalized path (see core.Collect). An empty selection fails with
// ErrNothingSelected. Any failure returns a nil Sealed; no partial output is
// produced.
func Seal(ctx context.Context, key *crypt.Key, sets [][]Source, opts ...SealOption) (*Sealed, error) {
	cfg := sealConfig{now: time.Now}
	for _, opt := range opts {
		opt(&cfg)
	}
	s := &sealer{cfg: cfg}

	s.reportProgress(StageCollecting, 0, 0)
	entries := tarcore.Collect(sets...)
	if len(entries) == 0 {
		return nil, ErrNothingSelected
	}
	s.log().Info("sealing archive", "entries", len(entries), "compression", cfg.compression.String(), "armor", cfg.armor)

	archive, err := tarcore.Build(ctx, entries,
		tarcore.WithLogger(cfg.logger),
		tarcore.WithProgress(cfg.progress),
		tarcore.WithReadConcurrency(cfg.readConcurrency),
		tarcore.WithClock(cfg.now),
	)
	if err != nil {
		return nil, err
	}

	s.reportProgress(StageCompressing, 0, uint64(len(archive)))
	payload, err := tarcore.Compress(archive, cfg.compression)
	if err != nil {
		return nil, err
	}
	s.log().Debug("archive compressed", "archive_size", len(archive), "payload_size", len(payload))

	exts := []string{crypt.Extension(cfg.armor)}
	if ext := cfg.compression.Extension(); ext != "" {
		exts = append([]string{ext}, exts...)
	}

	done := cfg.now()
	s.reportProgress(StageEncrypting, 0, uint64(len(payload)))
	data, err := crypt.Encrypt(ctx, payload, key,
		crypt.WithArmor(cfg.armor),
		crypt.WithFileName(FileName(done, cfg.compression.Extension())),
		crypt.WithPacketConfig(cfg.packetConfig),
	)
	if err != nil {
		return nil, err
	}

	paths := make([]string, len(entries))
	for i, e := range entries {
		paths[i] = e.Path
	}
	sealed := &Sealed{
		Name:        FileName(done, strings.Join(exts, ".")),
		Data:        data,
		Digest:      digest.FromBytes(data),
		Entries:     paths,
		ArchiveSize: len(archive),
		Compression: cfg.compression,
		Armored:     cfg.armor,
	}
	s.reportProgress(StageEncrypting, uint64(len(data)), uint64(len(data)))
	s.log().Info("archive sealed", "name", sealed.Name, "size", len(data), "digest", sealed.Digest.String())
	return sealed, nil
}

// sealer holds per-call state for Seal.
type sealer struct {
	cfg sealConfig
}

// log returns the logger, falling back to a discard logger if nil.
func (s *sealer) log() *slog.Logger {
	if s.cfg.logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return s.cfg.logger
}

// reportProgress sends a progress event if a callback is configured.
func (s *sealer) reportProgress(stage ProgressStage, bytesDone, bytesTotal uint64) {
	if s.cfg.progress == nil {
		return
	}
	s.cfg.progress(ProgressEvent{Stage: stage, BytesDone: bytesDone, BytesTotal: bytesTotal})
}

// String implements fmt.Stringer.
func (s *Sealed) String() string {
	return fmt.Sprintf("%s (%d bytes, %d entries, %s)", s.Name, len(s.Data), len(s.Entries), s.Digest)
}
