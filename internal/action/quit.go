package action

import (
	"context"

	"github.com/dshills/shortcuts/internal/input/key"
)

// Quit cancels the application's run context.
type Quit struct {
	Cancel context.CancelFunc
}

// Run implements Action. A nil Cancel makes Run a no-op.
func (a *Quit) Run(context.Context, key.Event) error {
	if a.Cancel != nil {
		a.Cancel()
	}
	return nil
}
