package action

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/dshills/shortcuts/internal/config"
	"github.com/dshills/shortcuts/internal/input/key"
)

// Action is run with the event that matched a shortcut.
type Action interface {
	Run(ctx context.Context, ev key.Event) error
}

// Func adapts a function to Action.
type Func func(ctx context.Context, ev key.Event) error

// Run implements Action.
func (f Func) Run(ctx context.Context, ev key.Event) error {
	return f(ctx, ev)
}

// Deps are the collaborators New hands to the actions it builds.
type Deps struct {
	// Logger receives log action records and Lua print output.
	Logger *slog.Logger

	// Quit is called by quit actions.
	Quit context.CancelFunc

	// Focus is called by focus actions with the configured element name.
	Focus func(name string) error
}

// New builds the action described by a configured binding.
func New(b config.Binding, deps Deps) (Action, error) {
	logger := deps.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	switch b.Action {
	case config.ActionLog:
		msg := b.Message
		if msg == "" {
			msg = b.Description
		}
		if msg == "" {
			msg = b.Keys
		}
		return &Log{Message: msg, Logger: logger}, nil

	case config.ActionLua:
		return NewLua(b.Script, WithLogger(logger.With("keys", b.Keys)))

	case config.ActionQuit:
		return &Quit{Cancel: deps.Quit}, nil

	case config.ActionFocus:
		return &Focus{Element: b.Focus, Focus: deps.Focus}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownAction, b.Action)
}

// Close releases resources held by a, if any.
func Close(a Action) error {
	if c, ok := a.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
