package tarseal

import (
	"slices"
	"strings"
)

// Collect merges file sets into a sorted, duplicate-free entry list.
//
// Paths are normalized first. Sets are merged in argument order and entries
// within a set in slice order; when two sources normalize to the same path
// the later one replaces the earlier. The result is sorted by path using
// byte-wise comparison. No input yields an empty, non-nil slice.
func Collect(sets ...[]Source) []Entry {
	index := make(map[string]int)
	entries := make([]Entry, 0)
	for _, set := range sets {
		for _, src := range set {
			e := Entry{Path: NormalizePath(src.Path), Content: src.Content}
			if i, ok := index[e.Path]; ok {
				entries[i] = e
				continue
			}
			index[e.Path] = len(entries)
			entries = append(entries, e)
		}
	}
	slices.SortFunc(entries, func(a, b Entry) int {
		return strings.Compare(a.Path, b.Path)
	})
	return entries
}
