// Package shortcut binds key combinations to callbacks on event targets.
//
// A combination is a "+"-separated list of fragments such as "ctrl+shift+k".
// The fragments "cmd", "ctrl", "shift" and "alt" require the matching
// modifier to be held. Any other fragment names the base key: multi-character
// fragments ("esc", "left", "f5") are compared with the special key name of
// the event's raw code, single characters ("k", "[", "A") with the resolved
// key identity.
//
// A combination matches when every fragment is satisfied. Fragment order
// does not matter, and extra modifiers on the event do not prevent a match.
//
// # Usage
//
//	doc := event.NewDocument()
//	reg := shortcut.NewRegistry(doc.Body)
//
//	// Global binding on keydown
//	reg.Add("ctrl+s", save)
//
//	// Scoped to an element, on keyup
//	reg.Add("esc", closePanel,
//	    shortcut.WithTarget(doc.Element("panel")),
//	    shortcut.WithEventKind(key.KindUp))
//
//	reg.Remove("ctrl+s")
//	reg.Remove("esc", key.KindUp)
//
// Neither Add nor Remove report errors. Adding a combination that is already
// bound for the same event kind does nothing, removing one that is not bound
// does nothing, and a malformed combination simply never matches.
package shortcut
