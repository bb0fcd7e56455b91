package registry

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	ocispec "github.com/opencontainers/image-spec/specs-go/v1"
	"oras.land/oras-go/v2"
	"oras.land/oras-go/v2/errdef"
	orasregistry "oras.land/oras-go/v2/registry"

	"github.com/meigma/tarseal"
)

// Push stores s in target and tags the resulting manifest.
//
// The encrypted archive becomes the only layer, annotated with its file
// name. It returns the manifest descriptor.
func Push(ctx context.Context, target oras.Target, tag string, s *tarseal.Sealed, opts ...PushOption) (ocispec.Descriptor, error) {
	cfg := pushConfig{now: time.Now}
	for _, opt := range opts {
		opt(&cfg)
	}
	for _, t := range append([]string{tag}, cfg.tags...) {
		if err := validateTag(t); err != nil {
			return ocispec.Descriptor{}, err
		}
	}

	// Step 1: Push the sealed archive as a layer blob
	layer := ocispec.Descriptor{
		MediaType: MediaTypeSealed,
		Digest:    s.Digest,
		Size:      s.Size(),
	}
	if err := target.Push(ctx, layer, bytes.NewReader(s.Data)); err != nil && !errors.Is(err, errdef.ErrAlreadyExists) {
		return ocispec.Descriptor{}, fmt.Errorf("push layer: %w", err)
	}
	layer.Annotations = map[string]string{ocispec.AnnotationTitle: s.Name}

	// Step 2: Pack and push the manifest
	manifestDesc, err := oras.PackManifest(ctx, target, oras.PackManifestVersion1_1, ArtifactType, oras.PackManifestOptions{
		Layers:              []ocispec.Descriptor{layer},
		ManifestAnnotations: manifestAnnotations(cfg),
	})
	if err != nil {
		return ocispec.Descriptor{}, fmt.Errorf("push manifest: %w", err)
	}

	// Step 3: Apply tags
	if err := target.Tag(ctx, manifestDesc, tag); err != nil {
		return ocispec.Descriptor{}, fmt.Errorf("tag %q: %w", tag, err)
	}
	for _, additionalTag := range cfg.tags {
		if err := target.Tag(ctx, manifestDesc, additionalTag); err != nil {
			return ocispec.Descriptor{}, fmt.Errorf("tag %q: %w", additionalTag, err)
		}
	}
	return manifestDesc, nil
}

func manifestAnnotations(cfg pushConfig) map[string]string {
	annotations := make(map[string]string, len(cfg.annotations)+1)
	for k, v := range cfg.annotations {
		annotations[k] = v
	}
	if _, ok := annotations[ocispec.AnnotationCreated]; !ok {
		annotations[ocispec.AnnotationCreated] = cfg.now().UTC().Format(time.RFC3339)
	}
	return annotations
}

// validateTag checks tag against the OCI distribution tag grammar.
func validateTag(tag string) error {
	ref := orasregistry.Reference{Reference: tag}
	if err := ref.ValidateReferenceAsTag(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidReference, err)
	}
	return nil
}
