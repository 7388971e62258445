//go:build darwin

// Package sysinfo reports basic host details for the startup log line.
package sysinfo

import "golang.org/x/sys/unix"

// OSRelease returns the Darwin kernel release, e.g. "24.1.0".
func OSRelease() string {
	release, err := unix.Sysctl("kern.osrelease")
	if err != nil {
		return "unknown"
	}
	return release
}
