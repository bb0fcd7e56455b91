package ustar

import (
	"fmt"
	"strconv"

	"github.com/meigma/tarseal/core/internal/tartype"
)

// BlockSize is the size of every header and content block.
const BlockSize = 512

// Fixed values written to every header.
const (
	mode     = 0o644
	owner    = "root"
	magic    = "ustar\x00"
	version  = "00"
	typeFile = '0'
)

// field is a fixed-width region of a header block.
type field struct {
	name   string
	offset int
	size   int
}

var (
	fieldName     = field{"name", 0, NameSize}
	fieldMode     = field{"mode", 100, 8}
	fieldUID      = field{"uid", 108, 8}
	fieldGID      = field{"gid", 116, 8}
	fieldSize     = field{"size", 124, 12}
	fieldMtime    = field{"mtime", 136, 12}
	fieldChecksum = field{"checksum", 148, 8}
	fieldTypeflag = field{"typeflag", 156, 1}
	fieldMagic    = field{"magic", 257, 6}
	fieldVersion  = field{"version", 263, 2}
	fieldUname    = field{"uname", 265, 32}
	fieldGname    = field{"gname", 297, 32}
	fieldPrefix   = field{"prefix", 345, PrefixSize}
)

// MaxSize is the largest content size the 12-byte size field can hold.
const MaxSize = 1<<33 - 1

// Header holds the variable fields of a regular-file header.
type Header struct {
	Name    string
	Prefix  string
	Size    uint64
	ModTime uint64 // unix seconds
}

// Block is one encoded 512-byte header.
type Block [BlockSize]byte

// EncodeHeader serializes h into a ustar header block.
//
// String fields that do not fit their width and numbers that need more octal
// digits than the field allows fail with tartype.ErrFieldTooLong.
func EncodeHeader(h Header) (Block, error) {
	var b Block
	strs := []struct {
		f field
		v string
	}{
		{fieldName, h.Name},
		{fieldMagic, magic},
		{fieldVersion, version},
		{fieldUname, owner},
		{fieldGname, owner},
		{fieldPrefix, h.Prefix},
	}
	for _, s := range strs {
		if err := b.putString(s.f, s.v); err != nil {
			return Block{}, err
		}
	}
	nums := []struct {
		f field
		v uint64
	}{
		{fieldMode, mode},
		{fieldUID, 0},
		{fieldGID, 0},
		{fieldSize, h.Size},
		{fieldMtime, h.ModTime},
	}
	for _, n := range nums {
		if err := b.putOctal(n.f, n.v); err != nil {
			return Block{}, err
		}
	}
	b[fieldTypeflag.offset] = typeFile

	sum := Checksum(&b)
	digits := strconv.FormatUint(uint64(sum), 8)
	f := fieldChecksum
	copy(b[f.offset:], zeroPad(digits, 6))
	b[f.offset+6] = 0
	b[f.offset+7] = ' '
	return b, nil
}

// Checksum sums all bytes of b with the checksum field read as spaces.
// b is not modified.
func Checksum(b *Block) uint32 {
	var sum uint32
	f := fieldChecksum
	for i, c := range b {
		if i >= f.offset && i < f.offset+f.size {
			c = ' '
		}
		sum += uint32(c)
	}
	return sum
}

// storedChecksum parses the checksum recorded in b.
func storedChecksum(b *Block) (uint32, error) {
	f := fieldChecksum
	raw := b[f.offset : f.offset+6]
	v, err := strconv.ParseUint(string(raw), 8, 32)
	if err != nil {
		return 0, err
	}
	return uint32(v), nil
}

// VerifyChecksum reports whether the checksum recorded in b matches its
// contents.
func VerifyChecksum(b *Block) error {
	stored, err := storedChecksum(b)
	if err != nil {
		return fmt.Errorf("parse checksum: %w", err)
	}
	if sum := Checksum(b); sum != stored {
		return fmt.Errorf("checksum mismatch: stored %o, computed %o", stored, sum)
	}
	return nil
}

// PadSize returns the number of zero bytes needed after size content bytes
// to reach a block boundary.
func PadSize(size uint64) uint64 {
	return (BlockSize - size%BlockSize) % BlockSize
}

func (b *Block) putString(f field, s string) error {
	if len(s) > f.size {
		return &tartype.FieldError{Field: f.name, Value: s, Err: tartype.ErrFieldTooLong}
	}
	copy(b[f.offset:f.offset+f.size], s)
	return nil
}

// putOctal writes v as zero-padded octal digits followed by a NUL.
func (b *Block) putOctal(f field, v uint64) error {
	digits := strconv.FormatUint(v, 8)
	if len(digits) > f.size-1 {
		return &tartype.FieldError{Field: f.name, Value: digits, Err: tartype.ErrFieldTooLong}
	}
	copy(b[f.offset:], zeroPad(digits, f.size-1))
	b[f.offset+f.size-1] = 0
	return nil
}

func zeroPad(digits string, width int) string {
	for len(digits) < width {
		digits = "0" + digits
	}
	return digits
}
