package action

import (
	"context"
	"log/slog"

	"github.com/dshills/shortcuts/internal/input/key"
)

// Log writes Message at info level along with the event that triggered it.
type Log struct {
	Message string
	Logger  *slog.Logger
}

// Run implements Action.
func (a *Log) Run(ctx context.Context, ev key.Event) error {
	logger := a.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger.InfoContext(ctx, a.Message,
		"key", ev.Identity(),
		"kind", ev.Kind.String(),
		"code", ev.Code,
		"modifiers", ev.Modifiers.String(),
	)
	return nil
}
