//go:build !darwin

package loginitem

import "fmt"

func SetEnabled(bool) error {
	return fmt.Errorf("launch at login is only supported on macOS")
}

func Enabled() bool {
	return false
}
