package key

import (
	"testing"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name  string
		event Event
		want  string
	}{
		{"escape down", Down(27, ModNone), "esc"},
		{"escape up", Up(27, ModNone), "esc"},
		{"letter down is lowercase", Down('A', ModNone), "a"},
		{"letter down with shift is lowercase", Down('A', ModShift), "a"},
		{"letter up", Up('K', ModCtrl), "k"},
		{"digit down", Down('1', ModNone), "1"},
		{"bracket down", Down(219, ModNone), "["},
		{"f5 down", Down(116, ModNone), "f5"},
		{"press lowercase", Press('a', ModNone), "a"},
		{"press shift keeps case", Press('A', ModShift), "A"},
		{"press uppercase without shift", Press('A', ModNone), "a"},
		{"press bracket", Press('[', ModNone), "["},
		{"press ignores table", Press(27, ModNone), "\x1b"},
		{"press non-ascii", Press('É', ModNone), "é"},
		{"unknown down code", Down(0x263A, ModNone), "☺"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Resolve(tt.event); got != tt.want {
				t.Errorf("Resolve(%#v) = %q, want %q", tt.event, got, tt.want)
			}
		})
	}
}

func TestResolveUnknownKindFallsBackToTable(t *testing.T) {
	ev := Event{Kind: Kind(7), Code: 13}
	if got := Resolve(ev); got != "enter" {
		t.Errorf("Resolve(kind 7, code 13) = %q, want %q", got, "enter")
	}
}

func TestResolveIsPure(t *testing.T) {
	ev := Down(27, ModShift)
	first := Resolve(ev)
	second := Resolve(ev)
	if first != second {
		t.Errorf("Resolve not deterministic: %q then %q", first, second)
	}
	if ev.Identity() != first {
		t.Errorf("Event.Identity() = %q, want %q", ev.Identity(), first)
	}
}
