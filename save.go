package tarseal

import (
	"os"
	"path/filepath"
)

// WriteFile writes the sealed archive into dir under s.Name and returns the
// full path. The file is written to a temporary name and renamed into place,
// so a failed write leaves no partial archive behind. The file is readable
// by its owner only (mode 0600). Existing files with the same name are
// replaced.
func (s *Sealed) WriteFile(dir string) (string, error) {
	finalPath := filepath.Join(dir, s.Name)

	tmp, err := os.CreateTemp(dir, ".tarseal-*")
	if err != nil {
		return "", err
	}
	tmpPath := tmp.Name()
	if _, err := tmp.Write(s.Data); err != nil {
		tmp.Close()
		_ = os.Remove(tmpPath)
		return "", err
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		_ = os.Remove(tmpPath)
		return "", err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return "", err
	}
	if err := os.Rename(tmpPath, finalPath); err != nil {
		_ = os.Remove(tmpPath)
		return "", err
	}
	return finalPath, nil
}
