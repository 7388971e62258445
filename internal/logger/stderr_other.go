//go:build !darwin

package logger

import "os"

func redirectStderr(_ *os.File) {}
