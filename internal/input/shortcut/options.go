package shortcut

import (
	"log/slog"

	"github.com/dshills/shortcuts/internal/event"
	"github.com/dshills/shortcuts/internal/input/key"
)

// Options configures a single Add call.
type Options struct {
	// EventKind is the kind of event to listen for. Default is key.KindDown.
	EventKind key.Kind

	// Target is where the listener is installed. Nil means the registry's
	// root target.
	Target event.Target
}

// Option is a function that configures an Add call.
type Option func(*Options)

// WithEventKind sets the event kind. Invalid kinds are ignored.
func WithEventKind(k key.Kind) Option {
	return func(o *Options) {
		if k.Valid() {
			o.EventKind = k
		}
	}
}

// WithTarget sets the listener target. A nil target is ignored.
func WithTarget(t event.Target) Option {
	return func(o *Options) {
		if t != nil {
			o.Target = t
		}
	}
}

// WithOptions applies the set fields of opts. The zero EventKind (down) is
// the default and counts as unset, so it never overrides an earlier
// WithEventKind; a nil Target is unset as well.
func WithOptions(opts Options) Option {
	return func(o *Options) {
		if opts.EventKind != key.KindDown {
			WithEventKind(opts.EventKind)(o)
		}
		WithTarget(opts.Target)(o)
	}
}

// RegistryOption configures a Registry.
type RegistryOption func(*Registry)

// WithLogger sets the logger used for binding lifecycle messages.
func WithLogger(l *slog.Logger) RegistryOption {
	return func(r *Registry) {
		if l != nil {
			r.logger = l
		}
	}
}
