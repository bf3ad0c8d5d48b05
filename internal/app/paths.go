package app

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	appDirName = "dietlog"
	dbFileName = "dietlog.db"
)

// DefaultDataDir is where the stores and config.yaml live unless the user
// points elsewhere.
func DefaultDataDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(base, appDirName), nil
}

// EnsureDataDir creates the data directory if needed.
func EnsureDataDir(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create data directory: %w", err)
	}
	return nil
}

// DBPath is the sqlite database location inside the data directory.
func DBPath(dir string) string {
	return filepath.Join(dir, dbFileName)
}
