// Package fsutil holds the filesystem helpers shared by the bridge
// services: directory creation, whole-file read/write and resolution of
// the per-user application directories.
package fsutil

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

const appDirName = "smart-stock-insider"

// EnsureDirExists creates path and any missing parents. Calling it on an
// existing directory is a no-op.
func EnsureDirExists(path string) error {
	if err := os.MkdirAll(path, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", path, err)
	}
	return nil
}

// WriteToFile writes content to path, creating the parent directory first.
func WriteToFile(path string, content string) error {
	if err := EnsureDirExists(filepath.Dir(path)); err != nil {
		return err
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write file %s: %w", path, err)
	}
	return nil
}

// ReadFromFile returns the full contents of path. A missing file yields an
// error satisfying errors.Is(err, fs.ErrNotExist).
func ReadFromFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read file %s: %w", path, err)
	}
	return string(data), nil
}

// IsNotExist reports whether err came from reading a path that does not
// exist.
func IsNotExist(err error) bool {
	return errors.Is(err, fs.ErrNotExist)
}

// AppDataDir resolves the per-user data directory for the application. It
// does not create the directory.
func AppDataDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve user config directory: %w", err)
	}
	return filepath.Join(base, appDirName), nil
}

// AppLogsDir resolves the logs directory, always "logs" under the app data
// directory.
func AppLogsDir() (string, error) {
	dataDir, err := AppDataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dataDir, "logs"), nil
}
