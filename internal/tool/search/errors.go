package search

import (
	"fmt"
)

// CommandStartError is returned when the external search command cannot be started.
type CommandStartError struct {
	Cmd   string
	Cause error
}

func (e *CommandStartError) Error() string {
	return fmt.Sprintf("failed to start %s: %v", e.Cmd, e.Cause)
}

func (e *CommandStartError) Unwrap() error {
	return e.Cause
}

// CommandFailedError is returned when the external search command exits with
// an error status other than "no matches found".
type CommandFailedError struct {
	Cmd      string
	ExitCode int
	Stderr   string
}

func (e *CommandFailedError) Error() string {
	return fmt.Sprintf("%s exited with code %d: %s", e.Cmd, e.ExitCode, e.Stderr)
}

// BadPatternError is returned when a search pattern is not a valid regular expression.
type BadPatternError struct {
	Pattern string
	Cause   error
}

func (e *BadPatternError) Error() string {
	return fmt.Sprintf("invalid search pattern %q: %v", e.Pattern, e.Cause)
}

func (e *BadPatternError) Unwrap() error {
	return e.Cause
}
