package config

import (
	"strings"

	"github.com/dshills/shortcuts/internal/event"
	"github.com/dshills/shortcuts/internal/input/key"
)

// Action names understood by the application.
const (
	ActionLog   = "log"
	ActionLua   = "lua"
	ActionQuit  = "quit"
	ActionFocus = "focus"
)

// Actions lists every known action name.
var Actions = []string{ActionLog, ActionLua, ActionQuit, ActionFocus}

// File is the parsed content of a binding file.
type File struct {
	// LogLevel overrides the command-line log level when set.
	LogLevel string `toml:"log_level,omitempty" yaml:"log_level,omitempty"`

	// Bindings are installed in order.
	Bindings []Binding `toml:"bindings" yaml:"bindings"`

	// Path is where the file was loaded from. Not serialized.
	Path string `toml:"-" yaml:"-"`
}

// Binding is a single configured shortcut.
type Binding struct {
	// Keys is the combination string, e.g. "ctrl+shift+k".
	Keys string `toml:"keys" yaml:"keys"`

	// Event is the event kind: "down", "press" or "up". Empty means down.
	Event string `toml:"event,omitempty" yaml:"event,omitempty"`

	// Target names the element the listener is installed on. Empty means
	// the document body.
	Target string `toml:"target,omitempty" yaml:"target,omitempty"`

	// Action is one of the Action* names.
	Action string `toml:"action" yaml:"action"`

	// Message is logged by the log action.
	Message string `toml:"message,omitempty" yaml:"message,omitempty"`

	// Script is the source run by the lua action.
	Script string `toml:"script,omitempty" yaml:"script,omitempty"`

	// Focus names the element the focus action moves focus to.
	Focus string `toml:"focus,omitempty" yaml:"focus,omitempty"`

	// Description documents the binding.
	Description string `toml:"description,omitempty" yaml:"description,omitempty"`
}

// Kind returns the binding's event kind. An empty Event means keydown.
func (b Binding) Kind() (key.Kind, error) {
	if strings.TrimSpace(b.Event) == "" {
		return key.KindDown, nil
	}
	return key.ParseKind(b.Event)
}

// TargetName returns the target element name with the default applied.
func (b Binding) TargetName() string {
	if t := strings.TrimSpace(b.Target); t != "" {
		return t
	}
	return event.BodyName
}
