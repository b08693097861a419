package test_helpers

import (
	"os"
	"path/filepath"
)

// SparseImage creates a disk image of size bytes under dir without allocating its blocks
func SparseImage(dir string, name string, size int64) (string, error) {
	path := filepath.Join(dir, name)

	f, err := os.Create(path)
	if err != nil {
		return "", err
	}

	if err := f.Close(); err != nil {
		return "", err
	}

	if err := os.Truncate(path, size); err != nil {
		return "", err
	}

	return path, nil
}
