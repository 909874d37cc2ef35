// Package localdir resolves and accesses the device-local data directory
// used for persisted preferences (theme, category overrides, session blob).
package localdir

import (
	"fmt"
	"os"
	"path/filepath"

	"hwilson/finwat/internal/models"
)

// Dir locates the device-local data directory. An explicit directory wins;
// otherwise files live under ~/.finwat.
func Dir(explicit string) (string, error) {
	if explicit != "" {
		return explicit, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("error resolving home directory: %w", err)
	}
	return filepath.Join(homeDir, ".finwat"), nil
}

// ReadFile reads a named file from the data directory. A missing file is
// reported via os.IsNotExist on the returned error.
func ReadFile(dir, name string) ([]byte, error) {
	return os.ReadFile(filepath.Join(dir, name))
}

// WriteFile writes a named file into the data directory, creating the
// directory if needed.
func WriteFile(dir, name string, data []byte) error {
	if err := os.MkdirAll(dir, models.PermissionDirectory); err != nil {
		return fmt.Errorf("error creating data directory: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, name), data, models.PermissionDataFile); err != nil {
		return fmt.Errorf("error writing %s: %w", name, err)
	}
	return nil
}

// RemoveFile deletes a named file from the data directory. A missing file
// is not an error.
func RemoveFile(dir, name string) error {
	err := os.Remove(filepath.Join(dir, name))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("error removing %s: %w", name, err)
	}
	return nil
}
