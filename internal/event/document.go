package event

import (
	"fmt"
	"sort"
	"sync"

	"github.com/dshills/shortcuts/internal/input/key"
)

// BodyName is the name of every document's root element.
const BodyName = "body"

// Document owns a root Body element, a set of named elements and the element
// that currently has focus.
type Document struct {
	// Body is the root element. Listeners on Body see every dispatched event.
	Body *Element

	mu       sync.RWMutex
	elements map[string]*Element
	focused  *Element
}

// NewDocument creates a document with an empty body.
func NewDocument() *Document {
	body := NewElement(BodyName, nil)
	return &Document{
		Body:     body,
		elements: map[string]*Element{BodyName: body},
		focused:  body,
	}
}

// Element returns the named element, creating it as a child of Body if it
// does not exist yet. An empty name returns Body.
func (d *Document) Element(name string) *Element {
	if name == "" {
		return d.Body
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if el, ok := d.elements[name]; ok {
		return el
	}
	el := NewElement(name, d.Body)
	d.elements[name] = el
	return el
}

// CreateElement creates a named element under parent. A nil parent means
// Body. An existing element with the same name is returned unchanged.
func (d *Document) CreateElement(name string, parent *Element) (*Element, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	if parent == nil {
		parent = d.Body
	}
	if !d.Body.Contains(parent) {
		return nil, ErrNotInDocument
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if el, ok := d.elements[name]; ok {
		return el, nil
	}
	el := NewElement(name, parent)
	d.elements[name] = el
	return el, nil
}

// Lookup returns a named element without creating it.
func (d *Document) Lookup(name string) (*Element, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	el, ok := d.elements[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownElement, name)
	}
	return el, nil
}

// Names returns the names of all elements, sorted.
func (d *Document) Names() []string {
	d.mu.RLock()
	defer d.mu.RUnlock()

	names := make([]string, 0, len(d.elements))
	for name := range d.elements {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Focus moves focus to el. A nil element focuses Body.
func (d *Document) Focus(el *Element) error {
	if el == nil {
		el = d.Body
	}
	if !d.Body.Contains(el) {
		return ErrNotInDocument
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	d.focused = el
	return nil
}

// Focused returns the element that currently has focus.
func (d *Document) Focused() *Element {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.focused
}

// Dispatch delivers ev to the focused element, bubbling up to Body.
func (d *Document) Dispatch(ev key.Event) int {
	return d.Focused().Dispatch(ev)
}
