package registry

// Media types for sealed archives in OCI registries.
const (
	// ArtifactType identifies sealed archives as an OCI 1.1 artifact type.
	ArtifactType = "application/vnd.meigma.tarseal.v1"

	// MediaTypeSealed is the layer media type for an OpenPGP-encrypted tar archive.
	MediaTypeSealed = "application/vnd.meigma.tarseal.layer.v1.tar+pgp"
)
