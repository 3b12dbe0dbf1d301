package key

import "strings"

// Resolve returns the canonical identity of the key behind ev.
//
// Keypress events yield the produced character, lowercased unless Shift is
// held, so bindings keep working with Caps Lock on. Keydown and keyup events
// yield the special key name when the code is in the table and the
// lowercased character otherwise, since those events report the same code
// with and without Shift.
//
// Resolve never fails: unknown codes resolve to a best-effort character.
func Resolve(ev Event) string {
	character := string(rune(ev.Code))

	if ev.Kind == KindPress {
		if !ev.Modifiers.HasShift() {
			character = strings.ToLower(character)
		}
		return character
	}

	if name, ok := keycodes[ev.Code]; ok {
		return name
	}
	return strings.ToLower(character)
}
