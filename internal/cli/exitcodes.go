package cli

import (
	"errors"
	"fmt"
)

// Exit codes for CLI commands.
// These codes follow Unix conventions and provide consistent error reporting
// across all CLI commands.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitError indicates a general error occurred.
	// Use for: storage errors or any failure that doesn't fit below.
	ExitError = 1

	// ExitUsage indicates incorrect command usage.
	// Use for: non-numeric ids or positions, bad flag combinations.
	ExitUsage = 2

	// ExitNotFound indicates a requested task was not found.
	ExitNotFound = 3

	// ExitDataErr indicates invalid or malformed data.
	ExitDataErr = 4

	// ExitValidation indicates a validation error.
	// Use for: unknown tag labels, out-of-range positions.
	ExitValidation = 5
)

// ExitCodeError carries the process exit code for a failed command.
// Reported is set when the OutputFormatter already printed the message.
type ExitCodeError struct {
	Code     int
	Err      error
	Reported bool
}

func (e *ExitCodeError) Error() string {
	return e.Err.Error()
}

func (e *ExitCodeError) Unwrap() error {
	return e.Err
}

// Exit wraps err with an exit code
func Exit(code int, err error) error {
	return &ExitCodeError{Code: code, Err: err}
}

// Exitf formats an error and wraps it with an exit code
func Exitf(code int, format string, args ...any) error {
	return &ExitCodeError{Code: code, Err: fmt.Errorf(format, args...)}
}

// Reported returns true if err was already printed by an OutputFormatter
func Reported(err error) bool {
	var exitErr *ExitCodeError
	return errors.As(err, &exitErr) && exitErr.Reported
}

// CodeFor maps an error returned by a command to a process exit code
func CodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitCodeError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitError
}
