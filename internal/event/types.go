package event

import (
	"github.com/google/uuid"

	"github.com/dshills/shortcuts/internal/input/key"
)

// Listener receives key events dispatched to a Target.
type Listener interface {
	HandleEvent(ev key.Event)
}

// ListenerFunc is a function adapter for Listener.
type ListenerFunc func(ev key.Event)

// HandleEvent implements the Listener interface.
func (f ListenerFunc) HandleEvent(ev key.Event) {
	f(ev)
}

// ListenerID identifies an installed listener. IDs are unique for the life
// of the process and are never reused.
type ListenerID string

// Target is anything listeners can be attached to.
type Target interface {
	// AddEventListener installs l for events of the given kind and returns
	// the ID needed to remove it.
	AddEventListener(kind key.Kind, l Listener) ListenerID

	// RemoveEventListener detaches the listener with the given ID for kind.
	// It reports whether a listener was removed.
	RemoveEventListener(kind key.Kind, id ListenerID) bool
}

// registration is an installed listener.
type registration struct {
	id       ListenerID
	kind     key.Kind
	listener Listener
}

// newRegistration creates a registration with a fresh ID.
func newRegistration(kind key.Kind, l Listener) *registration {
	return &registration{
		id:       ListenerID(uuid.New().String()),
		kind:     kind,
		listener: l,
	}
}
