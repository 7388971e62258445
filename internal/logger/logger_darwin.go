//go:build darwin

package logger

import (
	"os"
	"path/filepath"
)

// getLogDir returns the log directory.
// Uses ~/Library/Logs/vpnman/ so logs show up in Console.app.
func getLogDir() string {
	home, err := os.UserHomeDir()
	if err == nil {
		return filepath.Join(home, "Library", "Logs", "vpnman")
	}

	// Fallback: next to executable
	exe, err := os.Executable()
	if err != nil {
		return "."
	}
	return filepath.Dir(exe)
}
