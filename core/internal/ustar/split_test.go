package ustar

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meigma/tarseal/core/internal/tartype"
)

func TestSplit(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		path       string
		wantName   string
		wantPrefix string
	}{
		{
			name:     "short path unchanged",
			path:     "dir/b.txt",
			wantName: "dir/b.txt",
		},
		{
			name:     "exactly name size",
			path:     strings.Repeat("a", 96) + "/b.c",
			wantName: strings.Repeat("a", 96) + "/b.c",
		},
		{
			name:       "rightmost separator first",
			path:       strings.Repeat("d/", 60) + "f.txt",
			wantName:   "f.txt",
			wantPrefix: strings.TrimSuffix(strings.Repeat("d/", 60), "/"),
		},
		{
			name:       "moves left when prefix too long",
			path:       strings.Repeat("a", 150) + "/" + strings.Repeat("b", 10) + "/c.txt",
			wantName:   strings.Repeat("b", 10) + "/c.txt",
			wantPrefix: strings.Repeat("a", 150),
		},
		{
			name:       "maximum fields",
			path:       strings.Repeat("p", 155) + "/" + strings.Repeat("n", 100),
			wantName:   strings.Repeat("n", 100),
			wantPrefix: strings.Repeat("p", 155),
		},
		{
			name:       "multibyte measured in bytes",
			path:       "データ/" + strings.Repeat("あ", 32) + ".x",
			wantName:   strings.Repeat("あ", 32) + ".x",
			wantPrefix: "データ",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			name, prefix, err := Split(tt.path)
			require.NoError(t, err)
			assert.Equal(t, tt.wantName, name)
			assert.Equal(t, tt.wantPrefix, prefix)
			assert.Equal(t, tt.path, join(name, prefix))
			assert.LessOrEqual(t, len(name), NameSize)
			assert.LessOrEqual(t, len(prefix), PrefixSize)
		})
	}
}

func TestSplitPathTooLong(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		path string
	}{
		{"single long segment", strings.Repeat("x", 200)},
		{"multibyte over limit without separator", strings.Repeat("あ", 34)},
		{"name too long at every split", "a/" + strings.Repeat("b", 120)},
		{"leading slash is not a split point", "/" + strings.Repeat("b", 150)},
		{"prefix too long at every split", strings.Repeat("p", 156) + "/" + strings.Repeat("n", 100)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, _, err := Split(tt.path)
			require.ErrorIs(t, err, tartype.ErrPathTooLong)

			var pathErr *tartype.PathError
			require.True(t, errors.As(err, &pathErr))
			assert.Equal(t, tt.path, pathErr.Path)
		})
	}
}

func TestSplitShortPathsNeverSplit(t *testing.T) {
	t.Parallel()

	for n := 1; n <= NameSize; n++ {
		path := strings.Repeat("a/", n/2) + strings.Repeat("z", n%2)
		name, prefix, err := Split(path)
		require.NoError(t, err)
		assert.Equal(t, path, name)
		assert.Empty(t, prefix)
	}
}

// join reverses Split.
func join(name, prefix string) string {
	if prefix == "" {
		return name
	}
	return prefix + "/" + name
}
