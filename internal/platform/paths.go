package platform

import (
	"fmt"
	"os"
	"path/filepath"
)

// Application directory and file names
const (
	AppDirName     = "project-manager"
	ConfigFileName = "config.yaml"
)

// File permissions
const (
	DefaultDirPermissions  = 0o700
	DefaultFilePermissions = 0o600
)

// ConfigDir returns the per-user configuration directory for the application
func ConfigDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user config directory: %w", err)
	}
	return filepath.Join(base, AppDirName), nil
}

// ConfigFile returns the config file path inside dir
func ConfigFile(dir string) string {
	return filepath.Join(dir, ConfigFileName)
}

// CreateDirectoryIfNotExists creates directory if it doesn't exist
func CreateDirectoryIfNotExists(dirPath string) error {
	if _, err := os.Stat(dirPath); os.IsNotExist(err) {
		return os.MkdirAll(dirPath, DefaultDirPermissions)
	}
	return nil
}

// WriteFileIfNotExists writes data to path unless a file is already there.
// It reports whether the file was written.
func WriteFileIfNotExists(path string, data []byte) (bool, error) {
	if err := CreateDirectoryIfNotExists(filepath.Dir(path)); err != nil {
		return false, fmt.Errorf("failed to create directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, DefaultFilePermissions)
	if os.IsExist(err) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to create file: %w", err)
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		return false, fmt.Errorf("failed to write file: %w", err)
	}
	if err := f.Close(); err != nil {
		return false, fmt.Errorf("failed to close file: %w", err)
	}
	return true, nil
}
