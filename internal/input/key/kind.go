package key

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownKind is returned when an event kind name is not recognized.
var ErrUnknownKind = errors.New("unknown event kind")

// Kind identifies which phase of a key interaction an event describes.
// The zero value is KindDown.
type Kind uint8

const (
	// KindDown is a key being pushed down (DOM "keydown").
	KindDown Kind = iota

	// KindPress is a character being produced (DOM "keypress").
	KindPress

	// KindUp is a key being released (DOM "keyup").
	KindUp
)

// Kinds lists every valid event kind.
var Kinds = []Kind{KindDown, KindPress, KindUp}

// String returns the short name of the kind.
func (k Kind) String() string {
	switch k {
	case KindDown:
		return "down"
	case KindPress:
		return "press"
	case KindUp:
		return "up"
	default:
		return fmt.Sprintf("Kind(%d)", k)
	}
}

// DOMName returns the DOM event type for the kind, e.g. "keydown".
func (k Kind) DOMName() string {
	if !k.Valid() {
		return k.String()
	}
	return "key" + k.String()
}

// Valid returns true if k is one of the defined kinds.
func (k Kind) Valid() bool {
	return k <= KindUp
}

// ParseKind parses a kind name. Both short names ("down") and DOM event
// types ("keydown") are accepted, case-insensitively.
func ParseKind(s string) (Kind, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	name = strings.TrimPrefix(name, "key")
	switch name {
	case "down":
		return KindDown, nil
	case "press":
		return KindPress, nil
	case "up":
		return KindUp, nil
	}
	return KindDown, fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownKind, k)
	}
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
// An empty value decodes to KindDown.
func (k *Kind) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		*k = KindDown
		return nil
	}
	parsed, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}
