package key

import (
	"slices"
	"strings"
)

// Modifier is a set of modifier keys held during an event.
type Modifier uint8

// ModNone is the empty set.
const ModNone Modifier = 0

const (
	// ModShift is the Shift key.
	ModShift Modifier = 1 << iota
	// ModCtrl is the Control key.
	ModCtrl
	// ModAlt is the Alt key (Option on macOS).
	ModAlt
	// ModMeta is the Cmd key on macOS and the Windows key elsewhere.
	ModMeta
)

// modifierNames lists each modifier in combination order. The first name is
// the fragment that requires the modifier in a combination; the rest are
// aliases accepted by ParseModifiers.
var modifierNames = []struct {
	mod   Modifier
	names []string
}{
	{ModMeta, []string{"cmd", "meta", "command", "super", "win"}},
	{ModCtrl, []string{"ctrl", "control"}},
	{ModShift, []string{"shift"}},
	{ModAlt, []string{"alt", "option", "opt"}},
}

// Has reports whether every modifier in mod is held.
func (m Modifier) Has(mod Modifier) bool {
	return mod != ModNone && m&mod == mod
}

// HasShift reports whether Shift is held.
func (m Modifier) HasShift() bool { return m.Has(ModShift) }

// HasCtrl reports whether Control is held.
func (m Modifier) HasCtrl() bool { return m.Has(ModCtrl) }

// HasAlt reports whether Alt is held.
func (m Modifier) HasAlt() bool { return m.Has(ModAlt) }

// HasMeta reports whether Meta is held.
func (m Modifier) HasMeta() bool { return m.Has(ModMeta) }

// With returns m plus mod.
func (m Modifier) With(mod Modifier) Modifier {
	return m | mod
}

// IsEmpty reports whether no modifier is held.
func (m Modifier) IsEmpty() bool {
	return m == ModNone
}

// String joins the held modifiers' fragment names with "+", e.g.
// "cmd+ctrl+shift+alt".
func (m Modifier) String() string {
	var b strings.Builder
	for _, info := range modifierNames {
		if !m.Has(info.mod) {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte('+')
		}
		b.WriteString(info.names[0])
	}
	return b.String()
}

// FragmentModifier returns the modifier a combination fragment requires.
// Only the exact lowercase names "cmd", "ctrl", "shift" and "alt" count.
func FragmentModifier(fragment string) (Modifier, bool) {
	for _, info := range modifierNames {
		if info.names[0] == fragment {
			return info.mod, true
		}
	}
	return ModNone, false
}

// ParseModifiers reads a user-supplied modifier list such as "ctrl+alt" or
// "Control, Shift". Names are case-insensitive; unknown ones are skipped.
func ParseModifiers(s string) Modifier {
	fields := strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return r == '+' || r == ',' || r == ' '
	})

	var m Modifier
	for _, field := range fields {
		for _, info := range modifierNames {
			if slices.Contains(info.names, field) {
				m = m.With(info.mod)
				break
			}
		}
	}
	return m
}
