package event

import (
	"slices"
	"sync"

	"github.com/dshills/shortcuts/internal/input/key"
)

// Element is a named event target that may have a parent. Events dispatched
// to an element bubble to its ancestors.
//
// Element is safe for concurrent use.
type Element struct {
	name   string
	parent *Element

	mu        sync.Mutex
	listeners map[key.Kind][]*registration
	byID      map[ListenerID]*registration
}

// NewElement creates an element. A nil parent makes it a root.
func NewElement(name string, parent *Element) *Element {
	return &Element{
		name:      name,
		parent:    parent,
		listeners: make(map[key.Kind][]*registration),
		byID:      make(map[ListenerID]*registration),
	}
}

// Name returns the element name.
func (e *Element) Name() string {
	return e.name
}

// Parent returns the parent element, or nil for a root.
func (e *Element) Parent() *Element {
	return e.parent
}

// Contains reports whether other is e or one of its descendants.
func (e *Element) Contains(other *Element) bool {
	for n := other; n != nil; n = n.parent {
		if n == e {
			return true
		}
	}
	return false
}

// AddEventListener implements Target. A nil listener is ignored and yields
// an empty ID.
func (e *Element) AddEventListener(kind key.Kind, l Listener) ListenerID {
	if l == nil {
		return ""
	}
	reg := newRegistration(kind, l)

	e.mu.Lock()
	defer e.mu.Unlock()

	e.listeners[kind] = append(e.listeners[kind], reg)
	e.byID[reg.id] = reg
	return reg.id
}

// RemoveEventListener implements Target. The kind must match the kind the
// listener was added for.
func (e *Element) RemoveEventListener(kind key.Kind, id ListenerID) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	reg, ok := e.byID[id]
	if !ok || reg.kind != kind {
		return false
	}

	regs := e.listeners[kind]
	for i, r := range regs {
		if r.id == id {
			e.listeners[kind] = slices.Delete(regs, i, i+1)
			break
		}
	}
	if len(e.listeners[kind]) == 0 {
		delete(e.listeners, kind)
	}
	delete(e.byID, id)
	return true
}

// ListenerCount returns the number of listeners installed for kind.
func (e *Element) ListenerCount(kind key.Kind) int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.listeners[kind])
}

// Dispatch delivers ev to this element's listeners for ev.Kind and then to
// each ancestor's. It returns the number of listeners invoked.
func (e *Element) Dispatch(ev key.Event) int {
	delivered := 0
	for n := e; n != nil; n = n.parent {
		for _, reg := range n.snapshot(ev.Kind) {
			if !n.installed(reg.id) {
				// Removed by an earlier listener in this dispatch.
				continue
			}
			reg.listener.HandleEvent(ev)
			delivered++
		}
	}
	return delivered
}

// snapshot returns a copy of the listeners for kind.
func (e *Element) snapshot(kind key.Kind) []*registration {
	e.mu.Lock()
	defer e.mu.Unlock()
	return slices.Clone(e.listeners[kind])
}

func (e *Element) installed(id ListenerID) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	_, ok := e.byID[id]
	return ok
}
