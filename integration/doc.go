//go:build integration

// Package integration provides end-to-end tests for sealing and registry
// storage.
//
// These tests require Docker and spin up a real OCI registry using testcontainers.
// Run with: go test -tags=integration ./integration/...
package integration
