package scutil

import "fmt"

// ExecError reports a failed scutil invocation: the process could not be
// launched, exited non-zero, or produced undecodable output. Output holds
// the captured combined stdout/stderr, when any.
type ExecError struct {
	Command string
	Output  string
	Err     error
}

func (e *ExecError) Error() string {
	if e.Output != "" {
		return fmt.Sprintf("%s: %v: %s", e.Command, e.Err, e.Output)
	}
	return fmt.Sprintf("%s: %v", e.Command, e.Err)
}

func (e *ExecError) Unwrap() error {
	return e.Err
}

// ParseError reports a listing line that did not match the expected
// token layout.
type ParseError struct {
	Line string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("malformed scutil listing line: %q", e.Line)
}
