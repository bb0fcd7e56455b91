package command

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"

	"github.com/meigma/tarseal"
)

// selection holds the input sets chosen on the command line and the
// directory roots their content is read through.
type selection struct {
	sets  [][]tarseal.Source
	roots []*os.Root
}

func (s *selection) Close() error {
	var errs []error
	for _, r := range s.roots {
		errs = append(errs, r.Close())
	}
	return errors.Join(errs...)
}

// selectInputs turns each argument into one input set. Directories are walked
// recursively; only regular files are kept and symbolic links are skipped.
// Archive paths are relative to the argument's parent, so a directory keeps
// its own name as the first path segment.
func selectInputs(ctx context.Context, args []string) (*selection, error) {
	sel := &selection{sets: make([][]tarseal.Source, 0, len(args))}
	for _, arg := range args {
		set, err := sel.add(ctx, arg)
		if err != nil {
			sel.Close()
			return nil, fmt.Errorf("select %s: %w", arg, err)
		}
		sel.sets = append(sel.sets, set)
	}
	return sel, nil
}

func (s *selection) add(ctx context.Context, arg string) ([]tarseal.Source, error) {
	info, err := os.Lstat(arg)
	if err != nil {
		return nil, err
	}
	base := baseName(arg)

	switch {
	case info.Mode()&fs.ModeSymlink != 0:
		return nil, nil
	case info.Mode().IsRegular():
		return []tarseal.Source{{Path: base, Content: tarseal.File(arg)}}, nil
	case !info.IsDir():
		return nil, nil
	}

	root, err := os.OpenRoot(arg)
	if err != nil {
		return nil, err
	}
	s.roots = append(s.roots, root)

	fsys := root.FS()
	var set []tarseal.Source
	err = fs.WalkDir(fsys, ".", func(p string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		ok, err := isRegular(root, p, d)
		if err != nil || !ok {
			return err
		}
		set = append(set, tarseal.Source{
			Path:    path.Join(base, p),
			Content: tarseal.FS(fsys, p),
		})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return set, nil
}

// isRegular reports whether d is a regular file, resolving unknown types
// with Lstat so symbolic links are never followed.
func isRegular(root *os.Root, p string, d fs.DirEntry) (bool, error) {
	dtype := d.Type()
	if dtype&fs.ModeSymlink != 0 {
		return false, nil
	}
	if dtype != 0 {
		return dtype.IsRegular(), nil
	}
	info, err := root.Lstat(filepath.FromSlash(p))
	if err != nil {
		return false, err
	}
	return info.Mode().IsRegular(), nil
}

// baseName returns the last element of arg, or "" when arg names a
// filesystem root.
func baseName(arg string) string {
	abs, err := filepath.Abs(arg)
	if err != nil {
		abs = filepath.Clean(arg)
	}
	base := filepath.Base(abs)
	if base == string(filepath.Separator) || base == "." || base == filepath.VolumeName(abs) {
		return ""
	}
	return filepath.ToSlash(base)
}
