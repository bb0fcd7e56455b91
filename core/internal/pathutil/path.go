// Package pathutil provides path manipulation for slash-separated archive paths.
package pathutil

import "strings"

// FallbackName is used when a path normalizes to the empty string.
const FallbackName = "file"

// Normalize converts a user-provided path to an archive entry name.
//
// It performs the following transformations, in order:
//   - Converts backslashes to slashes: `dir\a.txt` → "dir/a.txt"
//   - Strips all leading slashes: "/etc/nginx" → "etc/nginx"
//   - Strips one leading "./": "./a.txt" → "a.txt"
//   - Converts empty results to FallbackName: "/" → "file"
//
// Interior "." and ".." elements and repeated slashes are preserved.
func Normalize(p string) string {
	p = strings.ReplaceAll(p, `\`, "/")
	p = strings.TrimLeft(p, "/")
	p = strings.TrimPrefix(p, "./")
	if p == "" {
		return FallbackName
	}
	return p
}
