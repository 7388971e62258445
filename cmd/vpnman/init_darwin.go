//go:build darwin

package main

import (
	"os"
	"strings"
)

func init() {
	// When launched from Finder / launchd the PATH is minimal
	// (/usr/bin:/bin:/usr/sbin:/sbin). scutil itself lives in /usr/sbin,
	// but $EDITOR-style helpers may live in Homebrew or MacPorts dirs.
	extraPaths := []string{
		"/opt/homebrew/bin", // Homebrew on Apple Silicon
		"/usr/local/bin",    // Homebrew on Intel
		"/opt/local/bin",    // MacPorts
	}

	current := os.Getenv("PATH")
	parts := strings.Split(current, ":")
	existing := make(map[string]bool, len(parts))
	for _, p := range parts {
		existing[p] = true
	}

	var toAdd []string
	for _, p := range extraPaths {
		if !existing[p] {
			toAdd = append(toAdd, p)
		}
	}

	if len(toAdd) > 0 {
		os.Setenv("PATH", current+":"+strings.Join(toAdd, ":"))
	}
}
