package tarseal

import (
	"log/slog"
	"time"

	"github.com/ProtonMail/go-crypto/openpgp/packet"
)

// sealConfig holds configuration for Seal.
type sealConfig struct {
	logger          *slog.Logger
	progress        ProgressFunc
	readConcurrency int
	compression     Compression
	armor           bool
	packetConfig    *packet.Config
	now             func() time.Time
}

// SealOption configures Seal.
type SealOption func(*sealConfig)

// WithLogger sets the logger for sealing.
// If not set, logging is disabled.
func WithLogger(logger *slog.Logger) SealOption {
	return func(cfg *sealConfig) {
		cfg.logger = logger
	}
}

// WithProgress sets a callback receiving progress for every stage.
func WithProgress(fn ProgressFunc) SealOption {
	return func(cfg *sealConfig) {
		cfg.progress = fn
	}
}

// WithReadConcurrency sets how many content providers may be read at once.
// Values < 1 use runtime.NumCPU().
func WithReadConcurrency(n int) SealOption {
	return func(cfg *sealConfig) {
		cfg.readConcurrency = n
	}
}

// WithCompression compresses the archive before encryption.
// The default is CompressionNone.
func WithCompression(c Compression) SealOption {
	return func(cfg *sealConfig) {
		cfg.compression = c
	}
}

// WithArmor produces ASCII-armored output with the .asc extension.
func WithArmor(enabled bool) SealOption {
	return func(cfg *sealConfig) {
		cfg.armor = enabled
	}
}

// WithPacketConfig overrides the OpenPGP packet configuration.
func WithPacketConfig(c *packet.Config) SealOption {
	return func(cfg *sealConfig) {
		cfg.packetConfig = c
	}
}

// WithClock sets the time source for entry modification times and the
// file name timestamp.
func WithClock(now func() time.Time) SealOption {
	return func(cfg *sealConfig) {
		cfg.now = now
	}
}
