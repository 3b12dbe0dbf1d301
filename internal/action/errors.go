package action

import "errors"

// Errors returned by actions.
var (
	// ErrUnknownAction is returned by New for an unrecognized action name.
	ErrUnknownAction = errors.New("unknown action")

	// ErrStateClosed is returned when running a Lua action after Close.
	ErrStateClosed = errors.New("lua state is closed")

	// ErrExecutionTimeout is returned when a script runs past its timeout.
	ErrExecutionTimeout = errors.New("lua execution timeout")
)
