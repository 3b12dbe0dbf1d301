package action

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/shortcuts/internal/input/key"
)

// DefaultExecutionTimeout bounds a single script run.
const DefaultExecutionTimeout = time.Second

// Lua runs a script each time its shortcut fires.
//
// The script is compiled once. Before each run the global "event" is set to
// a table describing the triggering event:
//
//	event.kind   "down", "press" or "up"
//	event.code   raw key code
//	event.key    resolved identity, e.g. "k" or "esc"
//	event.ctrl, event.shift, event.alt, event.meta   booleans
//
// print writes to the action's logger. Only the base, table, string and
// math libraries are available, without the functions that load code.
//
// gopher-lua states are not goroutine-safe; Run serializes calls.
type Lua struct {
	mu      sync.Mutex
	L       *lua.LState
	fn      *lua.LFunction
	logger  *slog.Logger
	timeout time.Duration
	closed  bool
}

// LuaOption configures a Lua action.
type LuaOption func(*Lua)

// WithLogger sets the logger that receives print output.
func WithLogger(l *slog.Logger) LuaOption {
	return func(a *Lua) {
		if l != nil {
			a.logger = l
		}
	}
}

// WithExecutionTimeout sets the per-run timeout. Zero disables it.
func WithExecutionTimeout(d time.Duration) LuaOption {
	return func(a *Lua) {
		if d >= 0 {
			a.timeout = d
		}
	}
}

// NewLua compiles script into a sandboxed state.
func NewLua(script string, opts ...LuaOption) (*Lua, error) {
	a := &Lua{
		logger:  slog.New(slog.DiscardHandler),
		timeout: DefaultExecutionTimeout,
	}
	for _, opt := range opts {
		opt(a)
	}

	L := lua.NewState(lua.Options{SkipOpenLibs: true})
	openSafeLibraries(L)
	a.L = L
	L.SetGlobal("print", L.NewFunction(a.print))

	fn, err := L.LoadString(script)
	if err != nil {
		L.Close()
		return nil, fmt.Errorf("compiling lua script: %w", err)
	}
	a.fn = fn
	return a, nil
}

// openSafeLibraries opens the libraries scripts may use and removes the
// base functions that load code from strings or files.
func openSafeLibraries(L *lua.LState) {
	lua.OpenBase(L)
	lua.OpenTable(L)
	lua.OpenString(L)
	lua.OpenMath(L)

	for _, name := range []string{"dofile", "loadfile", "load", "loadstring", "module", "require"} {
		L.SetGlobal(name, lua.LNil)
	}
}

// Run implements Action. The script sees ev as the global "event".
func (a *Lua) Run(ctx context.Context, ev key.Event) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.closed {
		return ErrStateClosed
	}

	if a.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.timeout)
		defer cancel()
	}
	a.L.SetContext(ctx)
	defer a.L.RemoveContext()

	a.L.SetGlobal("event", eventTable(a.L, ev))

	a.L.Push(a.fn)
	err := a.L.PCall(0, 0, nil)
	if err == nil {
		return nil
	}
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return fmt.Errorf("%w: %v", ErrExecutionTimeout, err)
	}
	if ctx.Err() != nil {
		return ctx.Err()
	}
	return fmt.Errorf("running lua script: %w", err)
}

// Close releases the Lua state. It is safe to call more than once.
func (a *Lua) Close() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if !a.closed {
		a.closed = true
		a.L.Close()
	}
	return nil
}

// global reads a variable from the script's state.
func (a *Lua) global(name string) lua.LValue {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.closed {
		return lua.LNil
	}
	return a.L.GetGlobal(name)
}

func (a *Lua) print(L *lua.LState) int {
	n := L.GetTop()
	parts := make([]string, 0, n)
	for i := 1; i <= n; i++ {
		parts = append(parts, L.ToStringMeta(L.Get(i)).String())
	}
	a.logger.Info(strings.Join(parts, "\t"), "source", "lua")
	return 0
}

func eventTable(L *lua.LState, ev key.Event) *lua.LTable {
	t := L.NewTable()
	t.RawSetString("kind", lua.LString(ev.Kind.String()))
	t.RawSetString("code", lua.LNumber(ev.Code))
	t.RawSetString("key", lua.LString(key.Resolve(ev)))
	t.RawSetString("ctrl", lua.LBool(ev.Modifiers.HasCtrl()))
	t.RawSetString("shift", lua.LBool(ev.Modifiers.HasShift()))
	t.RawSetString("alt", lua.LBool(ev.Modifiers.HasAlt()))
	t.RawSetString("meta", lua.LBool(ev.Modifiers.HasMeta()))
	return t
}
