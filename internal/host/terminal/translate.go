package terminal

import (
	"strings"
	"unicode"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/shortcuts/internal/input/key"
)

// specialCodes maps tcell special keys to browser key codes. Control
// letters are handled separately since tcell aliases some of them to
// Enter, Tab and Backspace.
var specialCodes = map[tcell.Key]int{
	tcell.KeyEnter:      key.CodeEnter,
	tcell.KeyTab:        key.CodeTab,
	tcell.KeyBacktab:    key.CodeTab,
	tcell.KeyBackspace:  key.CodeBackspace,
	tcell.KeyBackspace2: key.CodeBackspace,
	tcell.KeyEscape:     key.CodeEscape,
	tcell.KeyDelete:     key.CodeDelete,
	tcell.KeyInsert:     key.CodeInsert,
	tcell.KeyHome:       key.CodeHome,
	tcell.KeyEnd:        key.CodeEnd,
	tcell.KeyPgUp:       key.CodePageUp,
	tcell.KeyPgDn:       key.CodePageDown,
	tcell.KeyUp:         key.CodeUp,
	tcell.KeyDown:       key.CodeDown,
	tcell.KeyLeft:       key.CodeLeft,
	tcell.KeyRight:      key.CodeRight,
	tcell.KeyF1:         key.CodeF1,
	tcell.KeyF2:         key.CodeF1 + 1,
	tcell.KeyF3:         key.CodeF1 + 2,
	tcell.KeyF4:         key.CodeF1 + 3,
	tcell.KeyF5:         key.CodeF1 + 4,
	tcell.KeyF6:         key.CodeF1 + 5,
	tcell.KeyF7:         key.CodeF1 + 6,
	tcell.KeyF8:         key.CodeF1 + 7,
	tcell.KeyF9:         key.CodeF1 + 8,
	tcell.KeyF10:        key.CodeF1 + 9,
	tcell.KeyF11:        key.CodeF1 + 10,
	tcell.KeyF12:        key.CodeF1 + 11,
}

// shiftedSymbols are the characters a US layout types with Shift held.
const shiftedSymbols = `~!@#$%^&*()_+{}|:"<>?`

// convertMod converts a tcell modifier mask to key modifiers.
func convertMod(m tcell.ModMask) key.Modifier {
	var result key.Modifier
	if m&tcell.ModShift != 0 {
		result = result.With(key.ModShift)
	}
	if m&tcell.ModCtrl != 0 {
		result = result.With(key.ModCtrl)
	}
	if m&tcell.ModAlt != 0 {
		result = result.With(key.ModAlt)
	}
	if m&tcell.ModMeta != 0 {
		result = result.With(key.ModMeta)
	}
	return result
}

// Translate converts a terminal key event into the keydown, keypress and
// keyup events a browser would deliver for the same stroke. Keys the
// translation does not know yield nil.
func Translate(ev *tcell.EventKey) []key.Event {
	if ev == nil {
		return nil
	}

	mods := convertMod(ev.Modifiers())
	k := ev.Key()

	var (
		code      int
		pressChar rune
		printable bool
	)

	switch {
	case k == tcell.KeyRune:
		r := ev.Rune()
		code = key.DownCode(r)
		if unicode.IsUpper(r) || strings.ContainsRune(shiftedSymbols, r) {
			mods = mods.With(key.ModShift)
		}
		pressChar, printable = r, true

	case k == tcell.KeyBacktab:
		code = key.CodeTab
		mods = mods.With(key.ModShift)

	case specialCodes[k] != 0:
		code = specialCodes[k]
		if k == tcell.KeyEnter {
			pressChar, printable = '\r', true
		}

	case k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ:
		code = 'A' + int(k-tcell.KeyCtrlA)
		mods = mods.With(key.ModCtrl)

	default:
		return nil
	}

	// Browsers do not fire keypress while a command modifier is held.
	if mods.HasCtrl() || mods.HasAlt() || mods.HasMeta() {
		printable = false
	}

	when := ev.When()
	events := make([]key.Event, 0, 3)
	events = append(events, key.Event{Kind: key.KindDown, Code: code, Modifiers: mods, Timestamp: when})
	if printable {
		events = append(events, key.Event{Kind: key.KindPress, Code: int(pressChar), Modifiers: mods, Timestamp: when})
	}
	events = append(events, key.Event{Kind: key.KindUp, Code: code, Modifiers: mods, Timestamp: when})
	return events
}
