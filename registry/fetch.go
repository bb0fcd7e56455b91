package registry

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/opencontainers/go-digest"
	ocispec "github.com/opencontainers/image-spec/specs-go/v1"
	"oras.land/oras-go/v2"
	"oras.land/oras-go/v2/content"
)

// Fetched is a sealed archive retrieved from a registry.
type Fetched struct {
	// Name is the archive file name from the layer title annotation.
	Name string

	// Data is the encrypted archive.
	Data []byte

	// Digest is the layer digest, verified against Data.
	Digest digest.Digest

	// Manifest is the manifest descriptor the reference resolved to.
	Manifest ocispec.Descriptor
}

// Fetch resolves ref (a tag or digest) in target and returns the sealed
// archive it points to. Content is verified against its digest.
func Fetch(ctx context.Context, target oras.ReadOnlyTarget, ref string) (*Fetched, error) {
	manifestDesc, err := target.Resolve(ctx, ref)
	if err != nil {
		return nil, fmt.Errorf("resolve %q: %w", ref, err)
	}
	raw, err := content.FetchAll(ctx, target, manifestDesc)
	if err != nil {
		return nil, fmt.Errorf("fetch manifest: %w", err)
	}

	var manifest ocispec.Manifest
	if err := json.Unmarshal(raw, &manifest); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidManifest, err)
	}
	if manifest.ArtifactType != ArtifactType {
		return nil, fmt.Errorf("%w: artifact type %q", ErrInvalidManifest, manifest.ArtifactType)
	}
	if len(manifest.Layers) != 1 || manifest.Layers[0].MediaType != MediaTypeSealed {
		return nil, fmt.Errorf("%w: expected one %s layer", ErrInvalidManifest, MediaTypeSealed)
	}

	layer := manifest.Layers[0]
	data, err := content.FetchAll(ctx, target, layer)
	if err != nil {
		return nil, fmt.Errorf("fetch layer: %w", err)
	}
	if digest.FromBytes(data) != layer.Digest {
		return nil, ErrDigestMismatch
	}

	return &Fetched{
		Name:     layer.Annotations[ocispec.AnnotationTitle],
		Data:     data,
		Digest:   layer.Digest,
		Manifest: manifestDesc,
	}, nil
}
