// Package terminal feeds key events from a tcell screen into an event
// target.
//
// Terminals report a single event per key stroke, so the host synthesizes
// the browser-style sequence for each one: a keydown, a keypress when the
// key produces a character, and a keyup. Codes follow browser conventions:
// letters report their uppercase code on keydown and keyup, special keys
// use the codes of the key table, and keypress reports the character.
package terminal
