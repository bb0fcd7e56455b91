package registry

import "time"

// PushOption configures a Push operation.
type PushOption func(*pushConfig)

type pushConfig struct {
	tags        []string
	annotations map[string]string
	now         func() time.Time
}

// WithTags applies additional tags to the pushed manifest.
//
// The primary tag is always applied first.
func WithTags(tags ...string) PushOption {
	return func(cfg *pushConfig) {
		cfg.tags = append(cfg.tags, tags...)
	}
}

// WithAnnotations sets custom annotations on the manifest.
//
// org.opencontainers.image.created is set automatically and can be overridden.
func WithAnnotations(annotations map[string]string) PushOption {
	return func(cfg *pushConfig) {
		if cfg.annotations == nil {
			cfg.annotations = make(map[string]string)
		}
		for k, v := range annotations {
			cfg.annotations[k] = v
		}
	}
}

// WithClock sets the time source for the created annotation.
func WithClock(now func() time.Time) PushOption {
	return func(cfg *pushConfig) {
		cfg.now = now
	}
}
