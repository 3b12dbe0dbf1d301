package terminal

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/shortcuts/internal/input/key"
)

// Dispatcher receives translated key events. *event.Document and
// *event.Element both satisfy it.
type Dispatcher interface {
	Dispatch(ev key.Event) int
}

// Host pumps key events from a tcell screen into a Dispatcher and shows the
// most recent key on the screen.
type Host struct {
	screen tcell.Screen
	target Dispatcher
	logger *slog.Logger
	title  string

	mu   sync.Mutex
	last string
}

// Option configures a Host.
type Option func(*Host)

// WithLogger sets the logger used for per-event debug records.
func WithLogger(l *slog.Logger) Option {
	return func(h *Host) {
		if l != nil {
			h.logger = l
		}
	}
}

// WithTitle sets the first line drawn on the screen.
func WithTitle(title string) Option {
	return func(h *Host) {
		h.title = title
	}
}

// New creates a host for an already initialized screen.
func New(screen tcell.Screen, target Dispatcher, opts ...Option) *Host {
	h := &Host{
		screen: screen,
		target: target,
		logger: slog.New(slog.DiscardHandler),
		title:  "shortcuts: press keys, bound actions run as they match",
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// NewScreen creates and initializes a terminal screen.
func NewScreen() (tcell.Screen, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	return screen, nil
}

// Last returns a description of the most recently dispatched key.
func (h *Host) Last() string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.last
}

// Run reads screen events until ctx is done or the screen is finalized.
// It returns ctx.Err() when the context ends the loop and nil when the
// screen does.
func (h *Host) Run(ctx context.Context) error {
	stop := context.AfterFunc(ctx, func() {
		_ = h.screen.PostEvent(tcell.NewEventInterrupt(nil))
	})
	defer stop()

	h.draw()
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		ev := h.screen.PollEvent()
		switch e := ev.(type) {
		case nil:
			return nil
		case *tcell.EventKey:
			h.handleKey(e)
			h.draw()
		case *tcell.EventResize:
			h.screen.Sync()
			h.draw()
		case *tcell.EventInterrupt:
			// Woken for cancellation; the loop condition decides.
		}
	}
}

// handleKey dispatches the translated events of one stroke.
func (h *Host) handleKey(e *tcell.EventKey) {
	events := Translate(e)
	if len(events) == 0 {
		h.logger.Debug("untranslated key", "key", e.Name())
		return
	}

	for _, ev := range events {
		n := h.target.Dispatch(ev)
		h.logger.Debug("key event", "event", ev.String(), "listeners", n)
	}

	down := events[0]
	desc := key.Resolve(down)
	if mods := down.Modifiers.String(); mods != "" {
		desc = mods + "+" + desc
	}

	h.mu.Lock()
	h.last = fmt.Sprintf("%s (code %d)", desc, down.Code)
	h.mu.Unlock()
}

func (h *Host) draw() {
	h.screen.Clear()
	drawText(h.screen, 0, 0, h.title)
	if last := h.Last(); last != "" {
		drawText(h.screen, 0, 2, "last key: "+last)
	}
	h.screen.Show()
}

func drawText(s tcell.Screen, x, y int, text string) {
	for _, r := range text {
		s.SetContent(x, y, r, nil, tcell.StyleDefault)
		x++
	}
}
