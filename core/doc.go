// Package tarseal builds POSIX ustar archives from named byte blobs.
//
// The output is bit-exact ustar: 512-byte headers with octal numeric fields
// and a self-referential checksum, content padded to block boundaries, and
// two zero blocks at the end. Paths longer than 100 bytes are stored using
// the ustar name/prefix split; paths that cannot be split are rejected with
// ErrPathTooLong rather than truncated.
//
// A typical build collects one or more input sets, then assembles them:
//
//	entries := tarseal.Collect(
//	    []tarseal.Source{{Path: "a.txt", Content: tarseal.String("hi")}},
//	    []tarseal.Source{{Path: "dir/b.txt", Content: tarseal.File("/tmp/b.txt")}},
//	)
//	archive, err := tarseal.Build(ctx, entries)
//
// Content providers may be read concurrently, but entries are always written
// in the order given. A failed build never returns partial output.
package tarseal
