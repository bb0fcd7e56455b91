// Package ustar encodes POSIX ustar header blocks.
//
// Only regular files are supported. Long paths are stored with the ustar
// name/prefix split; GNU and PAX extensions are never emitted.
package ustar
