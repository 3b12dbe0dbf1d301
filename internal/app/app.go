package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/shortcuts/internal/action"
	"github.com/dshills/shortcuts/internal/config"
	"github.com/dshills/shortcuts/internal/config/watcher"
	"github.com/dshills/shortcuts/internal/event"
	"github.com/dshills/shortcuts/internal/host/terminal"
	"github.com/dshills/shortcuts/internal/input/key"
	"github.com/dshills/shortcuts/internal/input/shortcut"
)

// Options configures an App.
type Options struct {
	// ConfigPath is the binding file used by Load and Reload.
	ConfigPath string

	// Watch reloads the binding file while Run is active.
	Watch bool

	// Logger receives application logs. Nil discards them.
	Logger *slog.Logger

	// LogLevel, when set, is raised or lowered by a binding file's
	// log_level.
	LogLevel *slog.LevelVar
}

// App owns a document, the registry of its shortcuts and the actions those
// shortcuts run.
type App struct {
	opts     Options
	logger   *slog.Logger
	doc      *event.Document
	registry *shortcut.Registry

	mu      sync.Mutex
	file    *config.File
	actions []action.Action
	runCtx  context.Context
	cancel  context.CancelFunc
	running bool
}

// New creates an application with no bindings installed.
func New(opts Options) *App {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	doc := event.NewDocument()
	return &App{
		opts:     opts,
		logger:   logger,
		doc:      doc,
		registry: shortcut.NewRegistry(doc.Body, shortcut.WithLogger(logger.With("component", "registry"))),
	}
}

// Document returns the application's document.
func (a *App) Document() *event.Document {
	return a.doc
}

// Registry returns the application's shortcut registry.
func (a *App) Registry() *shortcut.Registry {
	return a.registry
}

// File returns the binding file currently applied, or nil.
func (a *App) File() *config.File {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.file
}

// Load reads, validates and applies the configured binding file.
func (a *App) Load() error {
	if a.opts.ConfigPath == "" {
		return ErrNoConfig
	}
	f, err := config.Load(a.opts.ConfigPath)
	if err != nil {
		return err
	}
	return a.Apply(f)
}

// Reload is Load with a log record of the outcome. On failure the
// previously applied bindings stay installed.
func (a *App) Reload() error {
	if err := a.Load(); err != nil {
		a.logger.Error("reload failed", "path", a.opts.ConfigPath, "error", err)
		return err
	}
	a.logger.Info("bindings reloaded", "path", a.opts.ConfigPath, "bindings", a.registry.Len())
	return nil
}

// Apply replaces every installed binding with those of f. The file is
// validated and all actions are built before anything is replaced, so a
// failing Apply leaves the previous bindings in place.
func (a *App) Apply(f *config.File) error {
	if f == nil {
		f = &config.File{}
	}
	if err := config.Validate(f); err != nil {
		return err
	}

	type prepared struct {
		binding config.Binding
		kind    key.Kind
		act     action.Action
	}

	deps := action.Deps{
		Logger: a.logger.With("component", "action"),
		Quit:   a.Quit,
		Focus:  a.focus,
	}

	items := make([]prepared, 0, len(f.Bindings))
	for i, b := range f.Bindings {
		kind, _ := b.Kind()
		act, err := action.New(b, deps)
		if err != nil {
			for _, p := range items {
				_ = action.Close(p.act)
			}
			return &BindingError{Index: i, Keys: b.Keys, Err: err}
		}
		items = append(items, prepared{binding: b, kind: kind, act: act})
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	a.registry.Clear()
	for _, old := range a.actions {
		_ = action.Close(old)
	}
	a.actions = a.actions[:0]

	for _, p := range items {
		target := a.doc.Element(p.binding.TargetName())
		a.registry.Add(p.binding.Keys, a.callback(p.binding, p.act),
			shortcut.WithEventKind(p.kind),
			shortcut.WithTarget(target),
		)
		a.actions = append(a.actions, p.act)
	}
	a.file = f

	if a.opts.LogLevel != nil && f.LogLevel != "" {
		a.opts.LogLevel.Set(ParseLogLevel(f.LogLevel))
	}

	a.logger.Debug("bindings applied", "count", len(items))
	return nil
}

// callback adapts an action to a registry callback.
func (a *App) callback(b config.Binding, act action.Action) shortcut.Callback {
	return func(ev key.Event) {
		a.logger.Debug("shortcut matched", "keys", b.Keys, "event", ev.String(), "action", b.Action)
		if err := act.Run(a.runContext(), ev); err != nil {
			a.logger.Error("action failed", "keys", b.Keys, "action", b.Action, "error", err)
		}
	}
}

// runContext returns the context of the active run, or a background
// context between runs.
func (a *App) runContext() context.Context {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.runCtx != nil {
		return a.runCtx
	}
	return context.Background()
}

func (a *App) focus(name string) error {
	el, err := a.doc.Lookup(name)
	if err != nil {
		return err
	}
	if err := a.doc.Focus(el); err != nil {
		return err
	}
	a.logger.Debug("focus changed", "element", name)
	return nil
}

// Quit ends the active run. It does nothing between runs.
func (a *App) Quit() {
	a.mu.Lock()
	cancel := a.cancel
	a.mu.Unlock()
	if cancel != nil {
		cancel()
	}
}

// Run pumps key events from screen into the document until ctx is done,
// a quit action runs, or the screen is finalized. A quit is a normal exit
// and returns nil.
func (a *App) Run(ctx context.Context, screen tcell.Screen) error {
	a.mu.Lock()
	if a.running {
		a.mu.Unlock()
		return ErrAlreadyRunning
	}
	runCtx, cancel := context.WithCancel(ctx)
	a.running = true
	a.runCtx = runCtx
	a.cancel = cancel
	a.mu.Unlock()

	defer func() {
		cancel()
		a.mu.Lock()
		a.running = false
		a.runCtx = nil
		a.cancel = nil
		a.mu.Unlock()
	}()

	if a.opts.Watch && a.opts.ConfigPath != "" {
		w, err := a.startWatcher()
		if err != nil {
			return fmt.Errorf("watching %s: %w", a.opts.ConfigPath, err)
		}
		defer w.Stop()
	}

	host := terminal.New(screen, a.doc, terminal.WithLogger(a.logger.With("component", "terminal")))
	a.logger.Info("running", "bindings", a.registry.Len(), "elements", a.doc.Names())

	err := host.Run(runCtx)
	if errors.Is(err, context.Canceled) && ctx.Err() == nil {
		// Quit action.
		return nil
	}
	return err
}

func (a *App) startWatcher() (*watcher.Watcher, error) {
	w := watcher.New(watcher.WithErrorFunc(func(err error) {
		a.logger.Warn("config watcher error", "error", err)
	}))
	if err := w.Add(a.opts.ConfigPath); err != nil {
		return nil, err
	}
	w.Subscribe(func(c watcher.Change) {
		if c.Kind.Gone() {
			a.logger.Warn("config file went away, keeping current bindings", "path", c.File, "change", c.Kind.String())
			return
		}
		_ = a.Reload()
	})
	if err := w.Start(); err != nil {
		return nil, err
	}
	a.logger.Debug("watching config", "files", w.Files())
	return w, nil
}

// Close releases every installed binding and action.
func (a *App) Close() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.registry.Clear()
	var errs []error
	for _, act := range a.actions {
		errs = append(errs, action.Close(act))
	}
	a.actions = nil
	return errors.Join(errs...)
}
