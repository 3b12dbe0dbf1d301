package shortcut

import (
	"log/slog"
	"sort"
	"strings"
	"sync"

	"github.com/dshills/shortcuts/internal/event"
	"github.com/dshills/shortcuts/internal/input/key"
)

// Registry tracks the active bindings of one application.
//
// Registry is safe for concurrent use. Callbacks run on the goroutine that
// dispatches events to the target, without the registry lock held, so a
// callback may add or remove bindings.
type Registry struct {
	mu sync.Mutex

	// root is the default target for Add.
	root event.Target

	// bindings maps combination -> event kind -> binding.
	bindings map[string]map[key.Kind]*Binding

	logger *slog.Logger
}

// NewRegistry creates a registry whose bindings default to root.
func NewRegistry(root event.Target, opts ...RegistryOption) *Registry {
	r := &Registry{
		root:     root,
		bindings: make(map[string]map[key.Kind]*Binding),
		logger:   slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Add binds combination to cb. By default the listener is installed on the
// root target for keydown events; see WithEventKind and WithTarget.
//
// If combination is already bound for the resolved event kind, Add does
// nothing. Combinations are compared exactly, including case.
func (r *Registry) Add(combination string, cb Callback, opts ...Option) {
	cfg := Options{EventKind: key.KindDown, Target: r.root}
	for _, opt := range opts {
		opt(&cfg)
	}

	if cb == nil || cfg.Target == nil {
		r.logger.Debug("shortcut not added", "combination", combination,
			"kind", cfg.EventKind.String(), "reason", "missing callback or target")
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if existing := r.bindings[combination][cfg.EventKind]; existing != nil {
		r.logger.Debug("shortcut already bound", "combination", combination,
			"kind", cfg.EventKind.String())
		return
	}

	combo := Parse(combination)
	listener := event.ListenerFunc(func(ev key.Event) {
		if combo.Matches(ev) {
			cb(ev)
		}
	})

	id := cfg.Target.AddEventListener(cfg.EventKind, listener)

	byKind, ok := r.bindings[combination]
	if !ok {
		byKind = make(map[key.Kind]*Binding)
		r.bindings[combination] = byKind
	}
	byKind[cfg.EventKind] = &Binding{
		Combination: combination,
		Kind:        cfg.EventKind,
		Target:      cfg.Target,
		ListenerID:  id,
		active:      true,
	}

	r.logger.Debug("shortcut added", "combination", combination,
		"kind", cfg.EventKind.String(), "listener", string(id))
}

// Remove unbinds combination for each of kinds, or for keydown when no kind
// is given. The combination is looked up as written first and then
// lowercased, so Remove("ESC") removes a binding added as "esc".
// Removing a combination that is not bound does nothing.
func (r *Registry) Remove(combination string, kinds ...key.Kind) {
	if len(kinds) == 0 {
		kinds = []key.Kind{key.KindDown}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, kind := range kinds {
		name, b := r.lookupLocked(combination, kind)
		if b == nil {
			continue
		}
		r.detachLocked(name, b)
	}
}

// Has reports whether combination is bound for kind. The lookup is exact.
func (r *Registry) Has(combination string, kind key.Kind) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.bindings[combination][kind] != nil
}

// Len returns the number of active bindings.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	n := 0
	for _, byKind := range r.bindings {
		n += len(byKind)
	}
	return n
}

// Bindings returns a snapshot of the active bindings ordered by combination
// and then event kind.
func (r *Registry) Bindings() []Binding {
	r.mu.Lock()
	defer r.mu.Unlock()

	result := make([]Binding, 0, len(r.bindings))
	for _, byKind := range r.bindings {
		for _, b := range byKind {
			result = append(result, *b)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Combination != result[j].Combination {
			return result[i].Combination < result[j].Combination
		}
		return result[i].Kind < result[j].Kind
	})
	return result
}

// Clear removes every binding and detaches its listener.
func (r *Registry) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()

	for name, byKind := range r.bindings {
		for _, b := range byKind {
			r.detachLocked(name, b)
		}
	}
}

// lookupLocked finds the binding for combination and kind, trying the
// lowercased combination when the exact one is not bound.
// Caller must hold the lock.
func (r *Registry) lookupLocked(combination string, kind key.Kind) (string, *Binding) {
	if b := r.bindings[combination][kind]; b != nil {
		return combination, b
	}
	lower := strings.ToLower(combination)
	if b := r.bindings[lower][kind]; b != nil {
		return lower, b
	}
	return "", nil
}

// detachLocked removes the binding's listener from its target and forgets
// the binding. Caller must hold the lock.
func (r *Registry) detachLocked(name string, b *Binding) {
	b.Target.RemoveEventListener(b.Kind, b.ListenerID)
	b.active = false

	byKind := r.bindings[name]
	delete(byKind, b.Kind)
	if len(byKind) == 0 {
		delete(r.bindings, name)
	}

	r.logger.Debug("shortcut removed", "combination", name,
		"kind", b.Kind.String(), "listener", string(b.ListenerID))
}
