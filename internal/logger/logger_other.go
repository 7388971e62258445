//go:build !darwin

package logger

import (
	"os"
	"path/filepath"
)

func getLogDir() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		return "."
	}
	return filepath.Join(dir, "vpnman")
}
