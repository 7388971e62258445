//go:build darwin

package config

import (
	"os"
	"path/filepath"
)

// GetConfigPath returns the preference file path under
// ~/Library/Application Support, the conventional location for a
// menu-bar app.
func GetConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "config.yaml"
	}
	return filepath.Join(home, "Library", "Application Support", "vpnman", "config.yaml")
}
