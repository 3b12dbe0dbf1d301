package config

import (
	"errors"
	"fmt"
	"strconv"
)

// Errors returned by Load, Parse and Validate.
var (
	// ErrFileNotFound indicates the binding file does not exist.
	ErrFileNotFound = errors.New("config file not found")

	// ErrUnsupportedFormat indicates an extension other than .toml, .yaml
	// or .yml.
	ErrUnsupportedFormat = errors.New("unsupported config format")

	// ErrValidationFailed matches every *ValidationError.
	ErrValidationFailed = errors.New("validation failed")
)

// ParseError is a binding file that could not be decoded. Line and Column
// are 1-based and zero when the decoder reported no position.
type ParseError struct {
	Path   string
	Line   int
	Column int
	Reason string // overrides Err's text when set
	Err    error
}

// Error renders the error as "path:line:column: reason".
func (e *ParseError) Error() string {
	loc := e.Path
	if e.Line > 0 {
		loc += ":" + strconv.Itoa(e.Line)
		if e.Column > 0 {
			loc += ":" + strconv.Itoa(e.Column)
		}
	}
	reason := e.Reason
	if reason == "" && e.Err != nil {
		reason = e.Err.Error()
	}
	return loc + ": " + reason
}

// Unwrap returns the decoder error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// ValidationError is one bad value in a decoded binding file.
type ValidationError struct {
	Index   int // binding position, -1 for top-level fields
	Field   string
	Message string
	Value   any
}

// Error renders the error as "bindings[i].field: message (got "value")".
func (e *ValidationError) Error() string {
	field := e.Field
	if e.Index >= 0 {
		field = fmt.Sprintf("bindings[%d].%s", e.Index, e.Field)
	}
	return fmt.Sprintf("%s: %s (got %q)", field, e.Message, fmt.Sprint(e.Value))
}

// Is reports whether target is ErrValidationFailed.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidationFailed
}
