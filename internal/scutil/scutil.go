// Package scutil wraps the macOS scutil(8) network configuration tool.
package scutil

import (
	"fmt"
	"os/exec"
	"strings"
	"unicode/utf8"
)

// Configuration is one VPN configuration managed by the system,
// as reported by `scutil --nc list`.
type Configuration struct {
	ID          string
	Name        string
	Connected   bool
	ServiceType string
}

// Runner executes scutil network-configuration commands and returns
// their combined stdout/stderr text.
type Runner interface {
	List() (string, error)
	Start(name string) (string, error)
	Stop(name string) (string, error)
}

// CommandRunner is the Runner backed by the real scutil binary.
// Each call spawns one process; there is no pooling and no timeout.
type CommandRunner struct{}

// NewCommandRunner returns a Runner that shells out to scutil.
func NewCommandRunner() CommandRunner {
	return CommandRunner{}
}

// List runs `scutil --nc list`.
func (r CommandRunner) List() (string, error) {
	return r.run("--nc", "list")
}

// Start runs `scutil --nc start <name>`.
func (r CommandRunner) Start(name string) (string, error) {
	return r.run("--nc", "start", name)
}

// Stop runs `scutil --nc stop <name>`.
func (r CommandRunner) Stop(name string) (string, error) {
	return r.run("--nc", "stop", name)
}

func (r CommandRunner) run(args ...string) (string, error) {
	out, err := exec.Command("scutil", args...).CombinedOutput()
	if err != nil {
		return "", &ExecError{
			Command: "scutil " + strings.Join(args, " "),
			Output:  strings.TrimSpace(string(out)),
			Err:     err,
		}
	}
	if !utf8.Valid(out) {
		return "", &ExecError{
			Command: "scutil " + strings.Join(args, " "),
			Err:     fmt.Errorf("output is not valid UTF-8"),
		}
	}
	return string(out), nil
}
