package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dshills/shortcuts/internal/input/key"
	"github.com/dshills/shortcuts/internal/input/shortcut"
)

var logLevels = map[string]bool{
	"":        true,
	"debug":   true,
	"info":    true,
	"warn":    true,
	"warning": true,
	"error":   true,
}

// Validate checks every binding in f. All problems are reported, joined;
// each one is a *ValidationError that matches ErrValidationFailed.
func Validate(f *File) error {
	if f == nil {
		return nil
	}

	var errs []error
	if !logLevels[strings.ToLower(strings.TrimSpace(f.LogLevel))] {
		errs = append(errs, &ValidationError{Index: -1, Field: "log_level",
			Message: "unknown log level", Value: f.LogLevel})
	}

	type slot struct {
		keys string
		kind key.Kind
	}
	first := make(map[slot]int, len(f.Bindings))

	for i, b := range f.Bindings {
		errs = append(errs, validateBinding(i, b)...)

		// The registry holds one binding per keys and event, whatever the
		// target, so a repeat would never be installed.
		kind, err := b.Kind()
		if err != nil || b.Keys == "" {
			continue
		}
		s := slot{b.Keys, kind}
		if j, seen := first[s]; seen {
			errs = append(errs, &ValidationError{Index: i, Field: "keys",
				Message: fmt.Sprintf("already bound for %s by bindings[%d]", kind, j), Value: b.Keys})
			continue
		}
		first[s] = i
	}
	return errors.Join(errs...)
}

func validateBinding(i int, b Binding) []error {
	var errs []error
	fail := func(field, msg string, value any) {
		errs = append(errs, &ValidationError{Index: i, Field: field, Message: msg, Value: value})
	}

	if b.Keys == "" {
		fail("keys", "must not be empty", b.Keys)
	} else {
		for _, frag := range shortcut.Parse(b.Keys).Fragments() {
			if frag == "" {
				fail("keys", "contains an empty fragment", b.Keys)
				break
			}
		}
	}

	if _, err := b.Kind(); err != nil {
		fail("event", "must be down, press or up", b.Event)
	}

	switch b.Action {
	case ActionLog:
	case ActionLua:
		if strings.TrimSpace(b.Script) == "" {
			fail("script", "required for lua action", b.Script)
		}
	case ActionQuit:
	case ActionFocus:
		if strings.TrimSpace(b.Focus) == "" {
			fail("focus", "required for focus action", b.Focus)
		}
	case "":
		fail("action", "must not be empty", b.Action)
	default:
		fail("action", "must be one of "+strings.Join(Actions, ", "), b.Action)
	}
	return errs
}
