package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// AppName is the directory name used under the XDG config and data homes.
const AppName = "datepicker"

// ExpandPath expands ~ and environment variables in file paths
// Examples:
//   - "~/data/history.db" -> "/home/user/data/history.db"
//   - "$HOME/data" -> "/home/user/data"
//   - "/abs/path" -> "/abs/path" (unchanged)
func ExpandPath(path string) (string, error) {
	if path == "" {
		return path, nil
	}

	// Expand environment variables first
	path = os.ExpandEnv(path)

	// Handle tilde expansion
	if strings.HasPrefix(path, "~/") || path == "~" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}

		if path == "~" {
			return homeDir, nil
		}

		path = filepath.Join(homeDir, path[2:])
	}

	return path, nil
}

// ConfigDir returns $XDG_CONFIG_HOME/datepicker, falling back to the
// platform user config directory.
func ConfigDir() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user config dir: %w", err)
	}
	return filepath.Join(dir, AppName), nil
}

// DataDir returns the data directory.
// Priority: $XDG_DATA_HOME/datepicker > ~/.local/share/datepicker
func DataDir() (string, error) {
	if xdgDataHome := os.Getenv("XDG_DATA_HOME"); xdgDataHome != "" {
		return filepath.Join(xdgDataHome, AppName), nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}
	return filepath.Join(homeDir, ".local", "share", AppName), nil
}
