package scutil

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExecErrorMessage(t *testing.T) {
	cause := fmt.Errorf("exit status 1")
	err := &ExecError{
		Command: "scutil --nc start MyVPN",
		Output:  "No service",
		Err:     cause,
	}

	assert.Contains(t, err.Error(), "scutil --nc start MyVPN")
	assert.Contains(t, err.Error(), "No service", "captured output is attached as detail")
	assert.True(t, errors.Is(err, cause))
}

func TestExecErrorMessageWithoutOutput(t *testing.T) {
	err := &ExecError{
		Command: "scutil --nc list",
		Err:     fmt.Errorf("output is not valid UTF-8"),
	}

	assert.Equal(t, "scutil --nc list: output is not valid UTF-8", err.Error())
}

func TestParseErrorNamesLine(t *testing.T) {
	err := &ParseError{Line: "* (Connected) vpn"}
	assert.Contains(t, err.Error(), `"* (Connected) vpn"`)
}
