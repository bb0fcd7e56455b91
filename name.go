package tarseal

import (
	"strings"
	"time"
)

// fileNamePrefix starts every sealed archive name.
const fileNamePrefix = "encrypted-"

// timestampLayout is the ISO-8601 basic format truncated to seconds.
const timestampLayout = "20060102T150405"

// FileName returns the download name for an archive sealed at t:
// encrypted-<YYYYMMDDTHHMMSS>.tar.<ext>, with t converted to UTC.
// ext may hold several suffixes, e.g. "zst.gpg"; an empty ext yields a
// name ending in ".tar".
func FileName(t time.Time, ext string) string {
	name := fileNamePrefix + t.UTC().Format(timestampLayout) + ".tar"
	if ext = strings.TrimPrefix(ext, "."); ext != "" {
		name += "." + ext
	}
	return name
}
