package shortcut

import (
	"github.com/dshills/shortcuts/internal/event"
	"github.com/dshills/shortcuts/internal/input/key"
)

// Callback is invoked with the event that satisfied a combination.
type Callback func(ev key.Event)

// Binding is the live association between a combination, an event kind, a
// target and an installed listener.
type Binding struct {
	// Combination is the combination string exactly as it was added.
	Combination string

	// Kind is the event kind the listener is installed for.
	Kind key.Kind

	// Target is where the listener is installed. The registry does not own it.
	Target event.Target

	// ListenerID is the handle returned by the target.
	ListenerID event.ListenerID

	active bool
}

// Active reports whether the binding's listener is still installed.
func (b Binding) Active() bool {
	return b.active
}

// TargetName returns the target's name when the target has one.
func (b Binding) TargetName() string {
	if named, ok := b.Target.(interface{ Name() string }); ok {
		return named.Name()
	}
	return ""
}
