package command

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meigma/tarseal"
	"github.com/meigma/tarseal/internal/testutil"
)

func sourcePaths(set []tarseal.Source) []string {
	paths := make([]string, 0, len(set))
	for _, s := range set {
		paths = append(paths, s.Path)
	}
	return paths
}

func TestSelectInputs(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	testutil.CreateTestFiles(t, dir, map[string]string{
		"docs/a.txt":      "alpha",
		"docs/sub/b.txt":  "beta",
		"docs/sub/deep/c": "gamma",
		"single.txt":      "single",
	})
	require.NoError(t, os.Symlink("a.txt", filepath.Join(dir, "docs", "link.txt")))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "docs", "empty"), 0o755))

	sel, err := selectInputs(context.Background(), []string{
		filepath.Join(dir, "docs"),
		filepath.Join(dir, "single.txt"),
	})
	require.NoError(t, err)
	t.Cleanup(func() { sel.Close() })

	require.Len(t, sel.sets, 2)
	assert.ElementsMatch(t, []string{"docs/a.txt", "docs/sub/b.txt", "docs/sub/deep/c"}, sourcePaths(sel.sets[0]))
	assert.Equal(t, []string{"single.txt"}, sourcePaths(sel.sets[1]))

	rc, err := sel.sets[0][0].Content.Open(context.Background())
	require.NoError(t, err)
	defer rc.Close()
	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.NotEmpty(t, data)
}

func TestSelectInputsSkipsSymlinkArgument(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	testutil.CreateTestFiles(t, dir, map[string]string{"real.txt": "x"})
	link := filepath.Join(dir, "link.txt")
	require.NoError(t, os.Symlink("real.txt", link))

	sel, err := selectInputs(context.Background(), []string{link})
	require.NoError(t, err)
	t.Cleanup(func() { sel.Close() })

	require.Len(t, sel.sets, 1)
	assert.Empty(t, sel.sets[0])
}

func TestSelectInputsMissing(t *testing.T) {
	t.Parallel()

	_, err := selectInputs(context.Background(), []string{filepath.Join(t.TempDir(), "missing")})
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestSelectInputsCanceled(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	testutil.CreateTestFiles(t, dir, map[string]string{"a.txt": "a"})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := selectInputs(ctx, []string{dir})
	require.ErrorIs(t, err, context.Canceled)
}

func TestBaseName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		arg  string
		want string
	}{
		{arg: "/tmp/docs", want: "docs"},
		{arg: "/tmp/docs/", want: "docs"},
		{arg: "/", want: ""},
		{arg: "relative/file.txt", want: "file.txt"},
	}
	for _, tt := range tests {
		t.Run(tt.arg, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, baseName(tt.arg))
		})
	}
}
