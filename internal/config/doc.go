// Package config loads shortcut binding files.
//
// A binding file lists key combinations and the action each one runs. Files
// may be written in TOML or YAML; the format is chosen by extension.
//
//	log_level = "info"
//
//	[[bindings]]
//	keys = "ctrl+s"
//	event = "down"
//	target = "editor"
//	action = "log"
//	message = "saved"
//
//	[[bindings]]
//	keys = "f2"
//	action = "focus"
//	focus = "editor"
//
//	[[bindings]]
//	keys = "esc"
//	action = "quit"
//
// # Sub-packages
//
//   - watcher: fsnotify based live reload of a binding file
//
// # Basic Usage
//
//	f, err := config.Load("bindings.toml")
//	if err != nil {
//	    return err
//	}
//	if err := config.Validate(f); err != nil {
//	    return err
//	}
package config
