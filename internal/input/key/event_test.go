package key

import (
	"testing"
)

func TestEventConstructors(t *testing.T) {
	d := Down(CodeEscape, ModNone)
	if d.Kind != KindDown || d.Code != 27 {
		t.Errorf("Down(27) = %#v", d)
	}
	if d.Timestamp.IsZero() {
		t.Error("Down should set a timestamp")
	}

	p := Press('a', ModShift)
	if p.Kind != KindPress || p.Code != 97 || !p.Modifiers.HasShift() {
		t.Errorf("Press('a', ModShift) = %#v", p)
	}

	u := Up('K', ModCtrl)
	if u.Kind != KindUp || u.Code != 75 || !u.Modifiers.HasCtrl() {
		t.Errorf("Up('K', ModCtrl) = %#v", u)
	}
}

func TestEventEquals(t *testing.T) {
	tests := []struct {
		a, b Event
		want bool
	}{
		{Down(27, ModNone), Down(27, ModNone), true},
		{Down(27, ModNone), Up(27, ModNone), false},
		{Down(27, ModNone), Down(13, ModNone), false},
		{Down(75, ModCtrl), Down(75, ModNone), false},
	}

	for _, tt := range tests {
		if got := tt.a.Equals(tt.b); got != tt.want {
			t.Errorf("%#v.Equals(%#v) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestEventString(t *testing.T) {
	tests := []struct {
		event Event
		want  string
	}{
		{Down(27, ModNone), "down esc (27)"},
		{Down(75, ModCtrl), "down ctrl+k (75)"},
		{Press('A', ModShift), "press shift+A (65)"},
		{Up(37, ModAlt|ModMeta), "up cmd+alt+left (37)"},
	}

	for _, tt := range tests {
		if got := tt.event.String(); got != tt.want {
			t.Errorf("Event.String() = %q, want %q", got, tt.want)
		}
	}
}
