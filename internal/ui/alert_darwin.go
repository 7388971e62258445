//go:build darwin

package ui

import (
	"fmt"
	"os/exec"
	"strings"

	"github.com/ubahwin/vpnman/internal/logger"
)

// ShowAlert displays a blocking modal dialog with the error description.
func ShowAlert(title, message string) {
	script := fmt.Sprintf(`display alert "%s" message "%s" as critical`,
		escapeAppleScript(title), escapeAppleScript(message))

	// Run, not Start: the dialog is modal from the caller's perspective.
	if err := exec.Command("osascript", "-e", script).Run(); err != nil {
		logger.Error("failed to show alert %q: %v", message, err)
	}
}

// openLogFile reveals the log in the default text viewer.
func openLogFile() {
	logPath := logger.GetLogPath()
	if logPath == "" {
		return
	}
	if err := exec.Command("open", logPath).Start(); err != nil {
		logger.Error("failed to open log file: %v", err)
	}
}

// escapeAppleScript escapes a string for use inside an AppleScript
// double-quoted string.
func escapeAppleScript(s string) string {
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, "\"", "\\\"")
	return s
}
