package app

import (
	"errors"
	"fmt"
)

// Application errors.
var (
	// ErrAlreadyRunning indicates Run was called while a run is active.
	ErrAlreadyRunning = errors.New("application already running")

	// ErrNoConfig indicates an operation needs a config path that was not set.
	ErrNoConfig = errors.New("no config file")

	// ErrUnknownLogFormat indicates a log format other than text or json.
	ErrUnknownLogFormat = errors.New("unknown log format")
)

// BindingError reports a configured binding that could not be installed.
type BindingError struct {
	Index int    // Position in the binding file
	Keys  string // Combination as written
	Err   error  // Underlying error
}

// Error renders the error as "binding i (keys): cause".
func (e *BindingError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("binding %d (%s): %v", e.Index, e.Keys, e.Err)
}

// Unwrap returns the cause.
func (e *BindingError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
