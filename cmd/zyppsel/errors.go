package main

import (
	"errors"
	"fmt"
)

// Exit codes.
const (
	ExitSuccess      = 0 // Successful execution
	ExitFailure      = 1 // Some requested change was rejected
	ExitCommandError = 2 // Bad arguments, unreadable manifest or config
)

// ExitError carries the exit code for an error.
type ExitError struct {
	Code    int
	Message string
	Err     error
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

func commandError(message string, err error) *ExitError {
	return &ExitError{Code: ExitCommandError, Message: message, Err: err}
}

// exitCode extracts the exit code from an error. Errors that are not an
// ExitError are command errors (cobra reports bad flags that way).
func exitCode(err error) int {
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitCommandError
}
