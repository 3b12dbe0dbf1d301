// Package event provides DOM-like event targets for keyboard events.
//
// An Element is a node in a tree of interactive elements. Listeners are
// attached per event kind with AddEventListener, which returns a stable
// ListenerID. The ID, not the listener value, is what RemoveEventListener
// takes, so callers never depend on function identity.
//
// # Dispatch
//
// Dispatch delivers an event to the element's own listeners for the event's
// kind and then bubbles it to each ancestor in turn:
//
//	doc := event.NewDocument()
//	editor := doc.Element("editor")
//	doc.Body.AddEventListener(key.KindDown, global)
//	editor.AddEventListener(key.KindDown, local)
//
//	doc.Focus(editor)
//	doc.Dispatch(ev) // local, then global
//
// A listener attached to the document body therefore behaves as a global
// listener, while one attached to an element only sees events that originate
// inside that element's subtree.
//
// Listeners run synchronously in the dispatching goroutine, in the order they
// were added. They are invoked without any lock held, so a listener may add
// or remove listeners, including itself.
package event
