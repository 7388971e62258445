//go:build !darwin

package config

import (
	"os"
	"path/filepath"
)

func GetConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "config.yaml"
	}
	return filepath.Join(dir, "vpnman", "config.yaml")
}
