package tarseal

import (
	"log/slog"
	"time"
)

// buildConfig holds configuration for archive assembly.
type buildConfig struct {
	logger          *slog.Logger
	progress        ProgressFunc
	readConcurrency int
	now             func() time.Time
}

// BuildOption configures archive assembly.
type BuildOption func(*buildConfig)

// WithLogger sets the logger for archive assembly.
// If not set, logging is disabled.
func WithLogger(logger *slog.Logger) BuildOption {
	return func(cfg *buildConfig) {
		cfg.logger = logger
	}
}

// WithProgress sets a callback receiving read and write progress.
func WithProgress(fn ProgressFunc) BuildOption {
	return func(cfg *buildConfig) {
		cfg.progress = fn
	}
}

// WithReadConcurrency sets how many content providers may be read at once.
// Values < 1 use runtime.NumCPU(). A value of 1 reads serially.
// Output order does not depend on this setting.
func WithReadConcurrency(n int) BuildOption {
	return func(cfg *buildConfig) {
		cfg.readConcurrency = n
	}
}

// WithClock sets the time source used for entries without a modification time.
func WithClock(now func() time.Time) BuildOption {
	return func(cfg *buildConfig) {
		cfg.now = now
	}
}
