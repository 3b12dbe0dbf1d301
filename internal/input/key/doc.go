// Package key models low-level keyboard events and resolves them to key
// identities.
//
// This package defines the fundamental types for raw keyboard input:
//
//   - Kind: Which phase of a key interaction was observed (press, down, up)
//   - Modifier: The modifier keys held during the event (Meta, Ctrl, Shift, Alt)
//   - Event: A raw key event carrying a numeric key code and modifiers
//
// # Key Codes
//
// Codes follow the browser keyCode/which convention. Keydown and keyup
// events report a physical key code (65 for the A key regardless of Shift),
// keypress events report the character code of the produced character
// (97 for "a", 65 for "A").
//
// # Resolution
//
// Resolve turns an Event into a canonical key identity:
//
//	key.Resolve(key.NewEvent(key.KindDown, 27, key.ModNone))     // "esc"
//	key.Resolve(key.NewEvent(key.KindPress, 'a', key.ModNone))   // "a"
//	key.Resolve(key.NewEvent(key.KindPress, 'A', key.ModShift))  // "A"
//
// Keydown and keyup events consult a fixed table of special key codes and
// otherwise fall back to the lowercased character. Keypress events always
// use the character and keep its case only while Shift is held.
package key
