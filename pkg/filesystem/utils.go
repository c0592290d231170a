// Package filesystem resolves the data and config paths used by the cache
// database and the configuration loader.
package filesystem

import (
	"fmt"
	"os"
	"path/filepath"
)

// GetDefaultPath places filename next to the running executable. Config
// files and the cache database fall back to this location when the working
// directory has no copy.
func GetDefaultPath(filename string) (string, error) {
	exePath, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("failed to get executable path: %w", err)
	}
	return filepath.Join(filepath.Dir(exePath), filename), nil
}

// EnsureDirectoryExists creates the parent directory of filePath, with any
// missing intermediates. A path in the current directory needs no setup.
func EnsureDirectoryExists(filePath string) error {
	dir := filepath.Dir(filePath)
	if dir == "." {
		return nil
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}
	return nil
}
