// Package tarseal packages named byte blobs into a POSIX ustar archive and
// seals it with OpenPGP public-key encryption.
//
// This package provides the high-level pipeline through [Seal]. For archive
// assembly alone, without encryption, use the core subpackage.
//
// # Quick Start
//
// Seal two input sets for the holder of a public key:
//
//	key, err := crypt.FetchKey(ctx, "https://example.com/pubkey.asc")
//	if err != nil {
//	    return err
//	}
//	sealed, err := tarseal.Seal(ctx, key, [][]tarseal.Source{
//	    {{Path: "notes.txt", Content: tarseal.String("hello")}},
//	    {{Path: "report.pdf", Content: tarseal.File("/tmp/report.pdf")}},
//	})
//	if err != nil {
//	    return err
//	}
//	path, err := sealed.WriteFile(".")
//
// The sealed file is named encrypted-<YYYYMMDDTHHMMSS>.tar.gpg (or .asc when
// armored), using the UTC time at which sealing completed.
//
// # Storage
//
// Sealed archives can also be pushed to an OCI registry with the
// registry subpackage.
package tarseal
