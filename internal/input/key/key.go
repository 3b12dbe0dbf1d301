package key

import (
	"maps"
	"slices"
)

// keycodes maps key codes of keys that cannot be identified from a
// keypress character to their canonical names.
//
// Only keydown and keyup resolution consults this table.
var keycodes = map[int]string{
	8:   "backspace",
	9:   "tab",
	13:  "enter",
	16:  "shift",
	17:  "ctrl",
	18:  "alt",
	20:  "capslock",
	27:  "esc",
	32:  "space",
	33:  "pageup",
	34:  "pagedown",
	35:  "end",
	36:  "home",
	37:  "left",
	38:  "up",
	39:  "right",
	40:  "down",
	45:  "ins",
	46:  "del",
	91:  "meta",
	93:  "meta",
	224: "meta",
	106: "*",
	107: "+",
	109: "-",
	110: ".",
	111: "/",
	112: "f1",
	113: "f2",
	114: "f3",
	115: "f4",
	116: "f5",
	117: "f6",
	118: "f7",
	119: "f8",
	120: "f9",
	121: "f10",
	122: "f11",
	123: "f12",
	186: ";",
	187: "=",
	188: ",",
	189: "-",
	190: ".",
	191: "/",
	192: "`",
	219: "[",
	220: "\\",
	221: "]",
	222: "'",
}

// Well-known key codes used by hosts that synthesize events.
const (
	CodeBackspace = 8
	CodeTab       = 9
	CodeEnter     = 13
	CodeEscape    = 27
	CodeSpace     = 32
	CodePageUp    = 33
	CodePageDown  = 34
	CodeEnd       = 35
	CodeHome      = 36
	CodeLeft      = 37
	CodeUp        = 38
	CodeRight     = 39
	CodeDown      = 40
	CodeInsert    = 45
	CodeDelete    = 46
	CodeF1        = 112
)

// KeycodeName returns the canonical name of a special key code.
func KeycodeName(code int) (string, bool) {
	name, ok := keycodes[code]
	return name, ok
}

// SpecialCodes returns the codes of the special key table in ascending order.
func SpecialCodes() []int {
	return slices.Sorted(maps.Keys(keycodes))
}

// punctuationCodes maps printable punctuation to the keydown code of the
// key that produces it on a US layout. Shifted symbols map to their base key.
var punctuationCodes = map[rune]int{
	';': 186, ':': 186,
	'=': 187, '+': 187,
	',': 188, '<': 188,
	'-': 189, '_': 189,
	'.': 190, '>': 190,
	'/': 191, '?': 191,
	'`': 192, '~': 192,
	'[': 219, '{': 219,
	'\\': 220, '|': 220,
	']': 221, '}': 221,
	'\'': 222, '"': 222,
	'!': '1', '@': '2', '#': '3', '$': '4', '%': '5',
	'^': '6', '&': '7', '*': '8', '(': '9', ')': '0',
}

// DownCode returns the keydown/keyup code of the key that produces r.
// Letters report their uppercase code, digits their own code, and
// punctuation the code of its physical key.
func DownCode(r rune) int {
	switch {
	case r >= 'a' && r <= 'z':
		return int(r - 'a' + 'A')
	case r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return int(r)
	case r == ' ':
		return CodeSpace
	}
	if code, ok := punctuationCodes[r]; ok {
		return code
	}
	return int(r)
}
