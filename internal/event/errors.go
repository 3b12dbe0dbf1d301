package event

import "errors"

// Sentinel errors for element management.
var (
	// ErrEmptyName is returned when an element is created without a name.
	ErrEmptyName = errors.New("element name cannot be empty")

	// ErrUnknownElement is returned when a named element does not exist.
	ErrUnknownElement = errors.New("unknown element")

	// ErrNotInDocument is returned when an element owned by another document is used.
	ErrNotInDocument = errors.New("element does not belong to this document")
)
