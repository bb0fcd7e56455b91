// Package registry stores sealed archives in OCI registries.
//
// A sealed archive is pushed as a single-layer OCI 1.1 artifact: the layer
// is the encrypted archive and the manifest carries the artifact type and
// the archive's file name. Any oras.Target works, so the same code pushes to
// a remote repository or to an in-memory or on-disk OCI layout.
package registry
