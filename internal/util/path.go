package util

import (
	"fmt"
	"os"
	"path/filepath"
)

// ResolveCreateFolder resolves folderPath to an absolute, existing
// directory: an absolute path is created if missing; a relative path
// is tried under the working directory first, falling back to the
// system temp directory if that can't be created (e.g. a read-only
// working tree).
func ResolveCreateFolder(folderPath string) (string, error) {
	folderPath = filepath.Clean(folderPath)

	if filepath.IsAbs(folderPath) {
		if folderExists(folderPath) {
			return folderPath, nil
		}
		return folderPath, os.MkdirAll(folderPath, 0o755)
	}

	dir, _ := os.Getwd()
	candidate := filepath.Join(dir, folderPath)
	if folderExists(candidate) {
		return candidate, nil
	}
	if err := os.MkdirAll(candidate, 0o755); err == nil {
		return candidate, nil
	}

	candidate = filepath.Join(os.TempDir(), filepath.Base(folderPath))
	if folderExists(candidate) {
		return candidate, nil
	}
	if err := os.MkdirAll(candidate, 0o755); err != nil {
		return candidate, fmt.Errorf("util: could not create log folder %q: %w", folderPath, err)
	}
	return candidate, nil
}

func folderExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
