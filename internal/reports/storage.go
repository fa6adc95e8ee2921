package reports

import (
	"fmt"
	"os"
	"path/filepath"
)

// Store writes a rendered report into dir under filename, creating the
// directory on first use, and returns the stored path.
func Store(dir, filename string, data []byte) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("reports: creating dir: %w", err)
	}
	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("reports: writing %s: %w", path, err)
	}
	return path, nil
}

// Delete removes a stored report file. A file that is already gone is not an
// error.
func Delete(dir, filename string) error {
	err := os.Remove(filepath.Join(dir, filename))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
