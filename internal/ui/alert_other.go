//go:build !darwin

package ui

import "github.com/ubahwin/vpnman/internal/logger"

func ShowAlert(title, message string) {
	logger.Error("%s: %s", title, message)
}

func openLogFile() {}
