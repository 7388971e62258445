//go:build !darwin

package sysinfo

import "runtime"

func OSRelease() string {
	return runtime.GOOS
}
