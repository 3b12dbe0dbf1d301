package action

import (
	"context"

	"github.com/dshills/shortcuts/internal/input/key"
)

// Focus moves document focus to a named element, so that the element's
// scoped shortcuts become active.
type Focus struct {
	Element string
	Focus   func(name string) error
}

// Run implements Action. A nil Focus func makes Run a no-op.
func (a *Focus) Run(context.Context, key.Event) error {
	if a.Focus == nil {
		return nil
	}
	return a.Focus(a.Element)
}
