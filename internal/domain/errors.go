package domain

import (
	"errors"
	"fmt"
)

// Domain errors.
var (
	ErrUnknownShell     = errors.New("unknown shell")
	ErrNoHistoryFile    = errors.New("history file could not be determined")
	ErrInvalidSplitMode = errors.New("invalid split mode (use whitespace or lines)")
	ErrNotTerminal      = errors.New("interactive picker requires a terminal")
	ErrNoMatches        = errors.New("no bundles matched")
	ErrCLNotFound       = errors.New("cl command not found in PATH")
	ErrConfigExists     = errors.New("config file already exists")
)

// ExitError carries the exit status of a failed cl invocation so that it
// can be propagated unmodified to our own exit status. The wrapped tool
// has already written its diagnostics to stderr by the time this is
// returned, so main exits without printing it again.
type ExitError struct {
	Code int
}

// Error returns the error message.
func (e *ExitError) Error() string {
	return fmt.Sprintf("cl exited with status %d", e.Code)
}

// ExitStatus extracts the propagated exit code from an error chain.
// Returns 0, false if the error does not carry one.
func ExitStatus(err error) (int, bool) {
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code, true
	}
	return 0, false
}
