package terminal

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/shortcuts/internal/event"
	"github.com/dshills/shortcuts/internal/input/key"
)

// recorder collects dispatched events.
type recorder struct {
	mu     sync.Mutex
	events []key.Event
}

func (r *recorder) Dispatch(ev key.Event) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, ev)
	return 0
}

func (r *recorder) len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.events)
}

func newSimScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	if err := s.Init(); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	s.SetSize(80, 10)
	return s
}

func waitFor(d time.Duration, cond func() bool) bool {
	deadline := time.Now().Add(d)
	for time.Now().Before(deadline) {
		if cond() {
			return true
		}
		time.Sleep(5 * time.Millisecond)
	}
	return cond()
}

func screenLine(s tcell.SimulationScreen, y int) string {
	w, _ := s.Size()
	var b strings.Builder
	for x := 0; x < w; x++ {
		r, _, _, _ := s.GetContent(x, y)
		b.WriteRune(r)
	}
	return strings.TrimRight(b.String(), " ")
}

func TestHostRunDispatchesAndStops(t *testing.T) {
	s := newSimScreen(t)
	defer s.Fini()

	rec := &recorder{}
	h := New(s, rec, WithTitle("test"))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- h.Run(ctx) }()

	s.InjectKey(tcell.KeyRune, 'k', tcell.ModNone)
	s.InjectKey(tcell.KeyEscape, 0, tcell.ModNone)

	if !waitFor(2*time.Second, func() bool { return rec.len() == 5 }) {
		t.Fatalf("dispatched %d events, want 5", rec.len())
	}

	cancel()
	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("Run() error = %v, want context.Canceled", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run() did not return after cancel")
	}

	rec.mu.Lock()
	kinds := make([]string, 0, len(rec.events))
	for _, ev := range rec.events {
		kinds = append(kinds, ev.Kind.String()+":"+key.Resolve(ev))
	}
	rec.mu.Unlock()
	want := "down:k press:k up:k down:esc up:esc"
	if strings.Join(kinds, " ") != want {
		t.Errorf("events = %v, want %s", kinds, want)
	}

	if got := h.Last(); got != "esc (code 27)" {
		t.Errorf("Last() = %q", got)
	}
	if got := screenLine(s, 0); got != "test" {
		t.Errorf("title line = %q", got)
	}
	if got := screenLine(s, 2); got != "last key: esc (code 27)" {
		t.Errorf("status line = %q", got)
	}
}

func TestHostRunIntoDocument(t *testing.T) {
	s := newSimScreen(t)
	defer s.Fini()

	doc := event.NewDocument()
	var mu sync.Mutex
	var seen []string
	doc.Body.AddEventListener(key.KindDown, event.ListenerFunc(func(ev key.Event) {
		mu.Lock()
		seen = append(seen, key.Resolve(ev)+"/"+ev.Modifiers.String())
		mu.Unlock()
	}))

	h := New(s, doc)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = h.Run(ctx) }()

	s.InjectKey(tcell.KeyCtrlS, 0, tcell.ModCtrl)

	ok := waitFor(2*time.Second, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(seen) == 1
	})
	if !ok {
		t.Fatal("keydown not delivered to the document")
	}
	mu.Lock()
	defer mu.Unlock()
	if seen[0] != "s/ctrl" {
		t.Errorf("seen = %q, want s/ctrl", seen[0])
	}
}

func TestHostRunEndsWhenScreenFinalized(t *testing.T) {
	s := newSimScreen(t)
	h := New(s, &recorder{})

	done := make(chan error, 1)
	go func() { done <- h.Run(context.Background()) }()

	time.Sleep(20 * time.Millisecond)
	s.Fini()

	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Run() error = %v, want nil", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run() did not return after Fini")
	}
}

func TestHostCancelledBeforeRun(t *testing.T) {
	s := newSimScreen(t)
	defer s.Fini()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := New(s, &recorder{}).Run(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("Run() error = %v, want context.Canceled", err)
	}
}
