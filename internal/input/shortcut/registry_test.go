package shortcut

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/dshills/shortcuts/internal/event"
	"github.com/dshills/shortcuts/internal/input/key"
)

// counter returns a callback and a pointer to its invocation count.
func counter() (Callback, *int) {
	n := new(int)
	return func(key.Event) { *n++ }, n
}

func TestRegistryAddDefaults(t *testing.T) {
	doc := event.NewDocument()
	reg := NewRegistry(doc.Body)
	cb, calls := counter()

	reg.Add("esc", cb)

	if !reg.Has("esc", key.KindDown) {
		t.Fatal("esc should be bound for keydown")
	}
	if doc.Body.ListenerCount(key.KindDown) != 1 {
		t.Errorf("body keydown listeners = %d, want 1", doc.Body.ListenerCount(key.KindDown))
	}

	doc.Dispatch(key.Down(27, key.ModNone))
	if *calls != 1 {
		t.Errorf("calls = %d, want 1", *calls)
	}

	doc.Dispatch(key.Up(27, key.ModNone))
	if *calls != 1 {
		t.Errorf("keyup should not trigger a keydown binding; calls = %d", *calls)
	}
}

func TestRegistryCallbackReceivesEvent(t *testing.T) {
	doc := event.NewDocument()
	reg := NewRegistry(doc.Body)

	var got key.Event
	reg.Add("ctrl+s", func(ev key.Event) { got = ev })

	sent := key.Down('S', key.ModCtrl)
	doc.Dispatch(sent)
	if !got.Equals(sent) || !got.Timestamp.Equal(sent.Timestamp) {
		t.Errorf("callback got %#v, want %#v", got, sent)
	}
}

func TestRegistryDuplicateAddIsNoop(t *testing.T) {
	doc := event.NewDocument()
	reg := NewRegistry(doc.Body)
	cb, calls := counter()
	other, otherCalls := counter()

	reg.Add("ctrl+k", cb)
	reg.Add("ctrl+k", other)

	if doc.Body.ListenerCount(key.KindDown) != 1 {
		t.Fatalf("listeners = %d, want 1", doc.Body.ListenerCount(key.KindDown))
	}

	doc.Dispatch(key.Down('K', key.ModCtrl))
	doc.Dispatch(key.Down('K', key.ModCtrl))
	if *calls != 2 {
		t.Errorf("first callback calls = %d, want 2", *calls)
	}
	if *otherCalls != 0 {
		t.Errorf("duplicate callback calls = %d, want 0", *otherCalls)
	}
}

func TestRegistrySameCombinationDifferentKinds(t *testing.T) {
	doc := event.NewDocument()
	reg := NewRegistry(doc.Body)
	down, downCalls := counter()
	up, upCalls := counter()

	reg.Add("k", down)
	reg.Add("k", up, WithEventKind(key.KindUp))

	if reg.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", reg.Len())
	}

	doc.Dispatch(key.Down('K', key.ModNone))
	doc.Dispatch(key.Up('K', key.ModNone))
	if *downCalls != 1 || *upCalls != 1 {
		t.Errorf("down calls = %d, up calls = %d; want 1 and 1", *downCalls, *upCalls)
	}
}

func TestRegistryCaseSensitiveAdd(t *testing.T) {
	doc := event.NewDocument()
	reg := NewRegistry(doc.Body)
	lower, _ := counter()
	upper, _ := counter()

	reg.Add("shift+a", lower, WithEventKind(key.KindPress))
	reg.Add("shift+A", upper, WithEventKind(key.KindPress))

	if reg.Len() != 2 {
		t.Errorf("Len() = %d, want 2 (combinations differ by case)", reg.Len())
	}
}

func TestRegistryKeyupScenario(t *testing.T) {
	doc := event.NewDocument()
	reg := NewRegistry(doc.Body)
	cb, calls := counter()

	reg.Add("ctrl+k", cb, WithEventKind(key.KindUp))

	doc.Dispatch(key.Up('K', key.ModCtrl))
	if *calls != 1 {
		t.Fatalf("calls after keyup = %d, want 1", *calls)
	}

	doc.Dispatch(key.Down('K', key.ModCtrl))
	if *calls != 1 {
		t.Errorf("calls after keydown = %d, want 1", *calls)
	}
}

func TestRegistryRemove(t *testing.T) {
	doc := event.NewDocument()
	reg := NewRegistry(doc.Body)
	cb, calls := counter()

	reg.Add("ctrl+k", cb)
	doc.Dispatch(key.Down('K', key.ModCtrl))

	reg.Remove("ctrl+k")
	doc.Dispatch(key.Down('K', key.ModCtrl))

	if *calls != 1 {
		t.Errorf("calls = %d, want 1", *calls)
	}
	if reg.Has("ctrl+k", key.KindDown) || reg.Len() != 0 {
		t.Error("binding should be gone after Remove")
	}
	if doc.Body.ListenerCount(key.KindDown) != 0 {
		t.Errorf("listener not detached: %d remaining", doc.Body.ListenerCount(key.KindDown))
	}

	// Re-adding after removal installs a fresh listener.
	reg.Add("ctrl+k", cb)
	doc.Dispatch(key.Down('K', key.ModCtrl))
	if *calls != 2 {
		t.Errorf("calls after re-add = %d, want 2", *calls)
	}
}

func TestRegistryRemoveUnknownIsNoop(t *testing.T) {
	doc := event.NewDocument()
	reg := NewRegistry(doc.Body)
	cb, calls := counter()

	reg.Add("esc", cb)
	reg.Remove("ctrl+q")
	reg.Remove("esc", key.KindUp)

	doc.Dispatch(key.Down(27, key.ModNone))
	if *calls != 1 {
		t.Errorf("unrelated Remove affected binding; calls = %d", *calls)
	}
}

func TestRegistryRemoveLowercases(t *testing.T) {
	doc := event.NewDocument()
	reg := NewRegistry(doc.Body)
	cb, calls := counter()

	reg.Add("esc", cb)
	reg.Remove("ESC")

	if reg.Has("esc", key.KindDown) {
		t.Fatal("Remove(ESC) should remove esc")
	}
	doc.Dispatch(key.Down(27, key.ModNone))
	if *calls != 0 {
		t.Errorf("calls after removal = %d, want 0", *calls)
	}
}

func TestRegistryRemoveUppercaseCombination(t *testing.T) {
	doc := event.NewDocument()
	reg := NewRegistry(doc.Body)
	upper, _ := counter()
	lower, _ := counter()

	reg.Add("shift+A", upper, WithEventKind(key.KindPress))
	reg.Add("shift+a", lower, WithEventKind(key.KindPress))

	reg.Remove("shift+A", key.KindPress)
	if reg.Has("shift+A", key.KindPress) {
		t.Error("exact-case Remove should remove shift+A")
	}
	if !reg.Has("shift+a", key.KindPress) {
		t.Error("shift+a should survive removal of shift+A")
	}
}

func TestRegistryRemoveSeveralKinds(t *testing.T) {
	doc := event.NewDocument()
	reg := NewRegistry(doc.Body)
	cb, _ := counter()

	for _, k := range key.Kinds {
		reg.Add("x", cb, WithEventKind(k))
	}
	reg.Remove("x", key.KindDown, key.KindUp)

	if reg.Len() != 1 || !reg.Has("x", key.KindPress) {
		t.Errorf("bindings = %v, want only x/press", reg.Bindings())
	}
}

func TestRegistryElementScope(t *testing.T) {
	doc := event.NewDocument()
	editor := doc.Element("editor")
	sidebar := doc.Element("sidebar")
	reg := NewRegistry(doc.Body)

	global, globalCalls := counter()
	local, localCalls := counter()
	reg.Add("ctrl+s", global)
	reg.Add("esc", local, WithTarget(editor))

	if editor.ListenerCount(key.KindDown) != 1 {
		t.Fatalf("editor listeners = %d, want 1", editor.ListenerCount(key.KindDown))
	}

	_ = doc.Focus(sidebar)
	doc.Dispatch(key.Down(27, key.ModNone))
	doc.Dispatch(key.Down('S', key.ModCtrl))
	if *localCalls != 0 || *globalCalls != 1 {
		t.Errorf("sidebar focus: local=%d global=%d, want 0 and 1", *localCalls, *globalCalls)
	}

	_ = doc.Focus(editor)
	doc.Dispatch(key.Down(27, key.ModNone))
	doc.Dispatch(key.Down('S', key.ModCtrl))
	if *localCalls != 1 || *globalCalls != 2 {
		t.Errorf("editor focus: local=%d global=%d, want 1 and 2", *localCalls, *globalCalls)
	}

	reg.Remove("esc")
	if editor.ListenerCount(key.KindDown) != 0 {
		t.Error("Remove should detach from the stored target")
	}
}

func TestRegistryWithOptionsStruct(t *testing.T) {
	doc := event.NewDocument()
	panel := doc.Element("panel")
	reg := NewRegistry(doc.Body)
	cb, calls := counter()

	reg.Add("enter", cb, WithOptions(Options{EventKind: key.KindUp, Target: panel}))

	bindings := reg.Bindings()
	if len(bindings) != 1 {
		t.Fatalf("len(Bindings()) = %d, want 1", len(bindings))
	}
	b := bindings[0]
	if b.Kind != key.KindUp || b.Target != panel || b.TargetName() != "panel" || !b.Active() {
		t.Errorf("binding = %+v, want keyup on panel", b)
	}

	_ = doc.Focus(panel)
	doc.Dispatch(key.Up(13, key.ModNone))
	if *calls != 1 {
		t.Errorf("calls = %d, want 1", *calls)
	}
}

func TestRegistryWithOptionsKeepsEarlierKind(t *testing.T) {
	doc := event.NewDocument()
	panel := doc.Element("panel")
	reg := NewRegistry(doc.Body)
	cb, _ := counter()

	reg.Add("enter", cb, WithEventKind(key.KindUp), WithOptions(Options{Target: panel}))

	if !reg.Has("enter", key.KindUp) || reg.Has("enter", key.KindDown) {
		t.Errorf("bindings = %v, want enter on keyup only", reg.Bindings())
	}
	if panel.ListenerCount(key.KindUp) != 1 {
		t.Error("target from the options struct should still apply")
	}
}

func TestRegistryInvalidOptionsKeepDefaults(t *testing.T) {
	doc := event.NewDocument()
	reg := NewRegistry(doc.Body)
	cb, _ := counter()

	reg.Add("k", cb, WithEventKind(key.Kind(99)), WithTarget(nil))

	if !reg.Has("k", key.KindDown) {
		t.Error("invalid options should leave kind=down and target=root")
	}
	if doc.Body.ListenerCount(key.KindDown) != 1 {
		t.Error("listener should be installed on the root target")
	}
}

func TestRegistryNilCallbackOrTarget(t *testing.T) {
	reg := NewRegistry(nil)
	cb, _ := counter()
	reg.Add("k", cb)
	if reg.Len() != 0 {
		t.Error("Add without any target should do nothing")
	}

	doc := event.NewDocument()
	reg = NewRegistry(doc.Body)
	reg.Add("k", nil)
	if reg.Len() != 0 {
		t.Error("Add with nil callback should do nothing")
	}
}

func TestRegistryBindingsOrder(t *testing.T) {
	doc := event.NewDocument()
	reg := NewRegistry(doc.Body)
	cb, _ := counter()

	reg.Add("z", cb)
	reg.Add("a", cb, WithEventKind(key.KindUp))
	reg.Add("a", cb)

	bindings := reg.Bindings()
	got := make([]string, 0, len(bindings))
	for _, b := range bindings {
		got = append(got, b.Combination+"/"+b.Kind.String())
	}
	want := "a/down a/up z/down"
	if strings.Join(got, " ") != want {
		t.Errorf("Bindings() order = %v, want %s", got, want)
	}
}

func TestRegistryClear(t *testing.T) {
	doc := event.NewDocument()
	editor := doc.Element("editor")
	reg := NewRegistry(doc.Body)
	cb, calls := counter()

	reg.Add("a", cb)
	reg.Add("b", cb, WithTarget(editor), WithEventKind(key.KindPress))
	reg.Clear()

	if reg.Len() != 0 {
		t.Errorf("Len() after Clear = %d, want 0", reg.Len())
	}
	if doc.Body.ListenerCount(key.KindDown) != 0 || editor.ListenerCount(key.KindPress) != 0 {
		t.Error("Clear should detach every listener")
	}
	_ = doc.Focus(editor)
	doc.Dispatch(key.Down('A', key.ModNone))
	doc.Dispatch(key.Press('b', key.ModNone))
	if *calls != 0 {
		t.Errorf("calls after Clear = %d, want 0", *calls)
	}
}

func TestRegistryCallbackMayRemoveItself(t *testing.T) {
	doc := event.NewDocument()
	reg := NewRegistry(doc.Body)
	calls := 0
	reg.Add("esc", func(key.Event) {
		calls++
		reg.Remove("esc")
	})

	doc.Dispatch(key.Down(27, key.ModNone))
	doc.Dispatch(key.Down(27, key.ModNone))
	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
}

func TestRegistryLogsLifecycle(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	doc := event.NewDocument()
	reg := NewRegistry(doc.Body, WithLogger(logger))
	cb, _ := counter()

	reg.Add("esc", cb)
	reg.Add("esc", cb)
	reg.Remove("esc")

	out := buf.String()
	for _, msg := range []string{"shortcut added", "shortcut already bound", "shortcut removed"} {
		if !strings.Contains(out, msg) {
			t.Errorf("log output missing %q:\n%s", msg, out)
		}
	}
}
