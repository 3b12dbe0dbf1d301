// Package watcher reports changes to binding files so they can be reloaded
// while the application runs.
//
// Files are watched through their parent directory, so editors that save by
// writing a temporary file and renaming it over the original are seen as a
// single change to the original path.
package watcher

import (
	"path/filepath"
	"slices"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultQuietPeriod is how long a file must go without notifications
// before its change is delivered.
const DefaultQuietPeriod = 100 * time.Millisecond

// Kind describes what happened to a watched file.
type Kind uint8

const (
	// Modified is a write to an existing file.
	Modified Kind = iota
	// Created is a file appearing under the watched path.
	Created
	// Removed is the file being deleted.
	Removed
	// Renamed is the file being moved away from the watched path.
	Renamed
)

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	switch k {
	case Modified:
		return "modified"
	case Created:
		return "created"
	case Removed:
		return "removed"
	case Renamed:
		return "renamed"
	}
	return "unknown"
}

// Gone reports whether the file no longer exists under its path.
func (k Kind) Gone() bool {
	return k == Removed || k == Renamed
}

// Change is delivered to subscribers once a file settles.
type Change struct {
	File string // absolute path
	Kind Kind
	At   time.Time // last notification folded into this change
}

// Option configures a Watcher.
type Option func(*Watcher)

// WithQuietPeriod sets the settle time. Zero delivers every notification
// as it arrives. Negative values are ignored.
func WithQuietPeriod(d time.Duration) Option {
	return func(w *Watcher) {
		if d >= 0 {
			w.quiet = d
		}
	}
}

// WithErrorFunc receives errors reported by the notifier.
func WithErrorFunc(fn func(error)) Option {
	return func(w *Watcher) {
		w.onError = fn
	}
}

// pending is a change waiting for its file to settle.
type pending struct {
	change Change
	timer  *time.Timer
}

// Watcher delivers settled changes of a set of files to subscribers.
type Watcher struct {
	quiet   time.Duration
	onError func(error)

	mu          sync.Mutex
	files       map[string]struct{}
	dirs        map[string]int // watched files per directory
	subscribers []func(Change)
	notifier    *fsnotify.Watcher
	pending     map[string]*pending
	loopDone    chan struct{}
}

// New returns a stopped watcher.
func New(opts ...Option) *Watcher {
	w := &Watcher{
		quiet:   DefaultQuietPeriod,
		files:   make(map[string]struct{}),
		dirs:    make(map[string]int),
		pending: make(map[string]*pending),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Add starts watching path. The file need not exist, but its directory
// must by the time the watcher runs.
func (w *Watcher) Add(path string) error {
	file, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if _, ok := w.files[file]; ok {
		return nil
	}
	dir := filepath.Dir(file)
	if w.notifier != nil && w.dirs[dir] == 0 {
		if err := w.notifier.Add(dir); err != nil {
			return err
		}
	}
	w.files[file] = struct{}{}
	w.dirs[dir]++
	return nil
}

// Files returns the watched paths in lexical order.
func (w *Watcher) Files() []string {
	w.mu.Lock()
	defer w.mu.Unlock()

	files := make([]string, 0, len(w.files))
	for f := range w.files {
		files = append(files, f)
	}
	slices.Sort(files)
	return files
}

// Subscribe registers fn for every settled change. A panicking subscriber
// does not affect the others.
func (w *Watcher) Subscribe(fn func(Change)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.subscribers = append(w.subscribers, fn)
}

// Start opens the notifier and begins delivering changes. Starting a
// running watcher does nothing.
func (w *Watcher) Start() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.notifier != nil {
		return nil
	}

	n, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	for dir := range w.dirs {
		if err := n.Add(dir); err != nil {
			_ = n.Close()
			return err
		}
	}

	w.notifier = n
	w.loopDone = make(chan struct{})
	go w.loop(n, w.loopDone)
	return nil
}

// Stop closes the notifier and discards changes that have not settled.
func (w *Watcher) Stop() {
	w.mu.Lock()
	n, done := w.notifier, w.loopDone
	w.notifier, w.loopDone = nil, nil
	for file, p := range w.pending {
		p.timer.Stop()
		delete(w.pending, file)
	}
	w.mu.Unlock()

	if n == nil {
		return
	}
	_ = n.Close()
	<-done
}

// loop drains n until it is closed.
func (w *Watcher) loop(n *fsnotify.Watcher, done chan struct{}) {
	defer close(done)

	for {
		select {
		case ev, ok := <-n.Events:
			if !ok {
				return
			}
			w.observe(ev)
		case err, ok := <-n.Errors:
			if !ok {
				return
			}
			if w.onError != nil {
				w.onError(err)
			}
		}
	}
}

// kindOf maps a notification to a Kind. Attribute-only changes are dropped.
func kindOf(op fsnotify.Op) (Kind, bool) {
	switch {
	case op.Has(fsnotify.Remove):
		return Removed, true
	case op.Has(fsnotify.Rename):
		return Renamed, true
	case op.Has(fsnotify.Create):
		return Created, true
	case op.Has(fsnotify.Write):
		return Modified, true
	}
	return 0, false
}

// merge folds next into a change that has not been delivered yet.
func merge(prev, next Kind) Kind {
	switch {
	case prev == Created && next == Modified:
		return Created
	case prev.Gone() && next == Created:
		// Replaced in place, as an atomic save does.
		return Modified
	}
	return next
}

func (w *Watcher) observe(ev fsnotify.Event) {
	kind, ok := kindOf(ev.Op)
	if !ok {
		return
	}
	c := Change{File: filepath.Clean(ev.Name), Kind: kind, At: time.Now()}

	w.mu.Lock()
	if _, watched := w.files[c.File]; !watched || w.notifier == nil {
		w.mu.Unlock()
		return
	}
	if w.quiet == 0 {
		w.mu.Unlock()
		w.deliver(c)
		return
	}
	w.schedule(c)
	w.mu.Unlock()
}

// schedule queues c, restarting the file's quiet timer. Callers hold mu.
func (w *Watcher) schedule(c Change) {
	if p := w.pending[c.File]; p != nil {
		c.Kind = merge(p.change.Kind, c.Kind)
		p.change = c
		p.timer.Reset(w.quiet)
		return
	}
	file := c.File
	w.pending[file] = &pending{
		change: c,
		timer:  time.AfterFunc(w.quiet, func() { w.settle(file) }),
	}
}

// settle delivers the pending change for file, if it is still queued and
// the watcher has not been stopped since.
func (w *Watcher) settle(file string) {
	w.mu.Lock()
	p := w.pending[file]
	delete(w.pending, file)
	running := w.notifier != nil
	w.mu.Unlock()

	if p != nil && running {
		w.deliver(p.change)
	}
}

func (w *Watcher) deliver(c Change) {
	w.mu.Lock()
	subs := slices.Clone(w.subscribers)
	w.mu.Unlock()

	for _, fn := range subs {
		notify(fn, c)
	}
}

func notify(fn func(Change), c Change) {
	defer func() { _ = recover() }()
	fn(c)
}
