package key

import (
	"fmt"
	"time"
)

// Event represents a raw key event as delivered by a host.
type Event struct {
	// Kind is the phase of the key interaction.
	Kind Kind

	// Code is the numeric key code (keydown/keyup) or character code (keypress).
	Code int

	// Modifiers contains the active modifier keys.
	Modifiers Modifier

	// Timestamp is when the event occurred.
	Timestamp time.Time
}

// NewEvent creates a key event with the current timestamp.
func NewEvent(kind Kind, code int, mods Modifier) Event {
	return Event{
		Kind:      kind,
		Code:      code,
		Modifiers: mods,
		Timestamp: time.Now(),
	}
}

// Down creates a keydown event.
func Down(code int, mods Modifier) Event {
	return NewEvent(KindDown, code, mods)
}

// Press creates a keypress event for the character r.
func Press(r rune, mods Modifier) Event {
	return NewEvent(KindPress, int(r), mods)
}

// Up creates a keyup event.
func Up(code int, mods Modifier) Event {
	return NewEvent(KindUp, code, mods)
}

// Identity returns the resolved key identity of the event.
func (e Event) Identity() string {
	return Resolve(e)
}

// Equals returns true if two events describe the same key interaction.
// Timestamps are not compared.
func (e Event) Equals(other Event) bool {
	return e.Kind == other.Kind &&
		e.Code == other.Code &&
		e.Modifiers == other.Modifiers
}

// String returns a compact description like "down ctrl+k (75)".
func (e Event) String() string {
	id := e.Identity()
	if e.Modifiers.IsEmpty() {
		return fmt.Sprintf("%s %s (%d)", e.Kind, id, e.Code)
	}
	return fmt.Sprintf("%s %s+%s (%d)", e.Kind, e.Modifiers, id, e.Code)
}

// GoString implements fmt.GoStringer for debugging.
func (e Event) GoString() string {
	return fmt.Sprintf("Event{Kind: %s, Code: %d, Modifiers: %q}",
		e.Kind, e.Code, e.Modifiers.String())
}
