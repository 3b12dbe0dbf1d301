// Package action implements what a configured shortcut does when its
// combination matches.
//
// Log writes a structured log record. Lua runs a sandboxed script with the
// triggering event exposed as a global table. Quit cancels the application
// context, and Focus moves document focus to a named element.
package action
