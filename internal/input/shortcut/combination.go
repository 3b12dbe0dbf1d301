package shortcut

import (
	"strings"
	"unicode/utf8"

	"github.com/dshills/shortcuts/internal/input/key"
)

// Separator splits a combination into fragments.
const Separator = "+"

// Combination is a parsed key combination.
type Combination struct {
	raw       string
	fragments []string
}

// Parse splits a combination string into its fragments. Parse never fails;
// fragments that can never be satisfied (such as the empty fragments in
// "ctrl++") make the combination unmatchable.
func Parse(combination string) Combination {
	return Combination{
		raw:       combination,
		fragments: strings.Split(combination, Separator),
	}
}

// String returns the combination as it was written.
func (c Combination) String() string {
	return c.raw
}

// Fragments returns a copy of the combination's fragments.
func (c Combination) Fragments() []string {
	out := make([]string, len(c.fragments))
	copy(out, c.fragments)
	return out
}

// Matches reports whether ev satisfies every fragment of the combination.
func (c Combination) Matches(ev key.Event) bool {
	identity := key.Resolve(ev)

	satisfied := 0
	for _, f := range c.fragments {
		if fragmentSatisfied(f, ev, identity) {
			satisfied++
		}
	}
	return satisfied == len(c.fragments)
}

// fragmentSatisfied evaluates a single fragment against an event whose key
// identity has already been resolved.
func fragmentSatisfied(fragment string, ev key.Event, identity string) bool {
	if mod, ok := key.FragmentModifier(fragment); ok {
		return ev.Modifiers.Has(mod)
	}
	if utf8.RuneCountInString(fragment) > 1 {
		name, ok := key.KeycodeName(ev.Code)
		return ok && fragment == name
	}
	return fragment == identity
}
