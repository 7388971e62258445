package scutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeScutil puts a shell script named scutil at the front of PATH so
// CommandRunner spawns it instead of the real tool.
func fakeScutil(t *testing.T, script string) {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "scutil")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+script), 0755))
	t.Setenv("PATH", dir)
}

func TestCommandRunnerArgv(t *testing.T) {
	fakeScutil(t, `echo "$@"`)
	r := NewCommandRunner()

	out, err := r.List()
	require.NoError(t, err)
	assert.Equal(t, "--nc list\n", out)

	out, err = r.Start("MyVPN")
	require.NoError(t, err)
	assert.Equal(t, "--nc start MyVPN\n", out)

	out, err = r.Stop("MyVPN")
	require.NoError(t, err)
	assert.Equal(t, "--nc stop MyVPN\n", out)
}

func TestCommandRunnerNonZeroExitAttachesOutput(t *testing.T) {
	fakeScutil(t, "echo 'No service could be found'\nexit 1\n")

	_, err := NewCommandRunner().Start("MyVPN")
	require.Error(t, err)

	var execErr *ExecError
	require.ErrorAs(t, err, &execErr)
	assert.Equal(t, "No service could be found", execErr.Output)
	assert.Contains(t, execErr.Command, "--nc start MyVPN")
	assert.Contains(t, err.Error(), "No service could be found")
}

func TestCommandRunnerCapturesStderr(t *testing.T) {
	fakeScutil(t, "echo 'written to stderr' >&2\nexit 1\n")

	_, err := NewCommandRunner().Stop("MyVPN")
	var execErr *ExecError
	require.ErrorAs(t, err, &execErr)
	assert.Equal(t, "written to stderr", execErr.Output)
}

func TestCommandRunnerRejectsUndecodableOutput(t *testing.T) {
	fakeScutil(t, `printf '\377\376bad'`)

	_, err := NewCommandRunner().List()
	require.Error(t, err)

	var execErr *ExecError
	require.ErrorAs(t, err, &execErr)
	assert.Contains(t, err.Error(), "UTF-8")
}

func TestCommandRunnerMissingBinary(t *testing.T) {
	t.Setenv("PATH", t.TempDir())

	_, err := NewCommandRunner().List()
	var execErr *ExecError
	require.ErrorAs(t, err, &execErr)
}
