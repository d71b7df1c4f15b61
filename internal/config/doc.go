// Package config loads binding profiles.
//
// A profile names a set of action bindings together with the mouse and
// viewport settings they were authored for. Profiles are read from TOML
// or YAML files, then environment overrides are applied on top:
//
//	┌─────────────────────────────┐
//	│  3. Environment (REBIND_*)  │  ← Highest priority
//	├─────────────────────────────┤
//	│  2. Profile file            │  ← ~/.config/rebind/profile.toml
//	├─────────────────────────────┤
//	│  1. Built-in defaults       │  ← Lowest priority
//	└─────────────────────────────┘
//
// # Sub-packages
//
//   - loader: file decoding (TOML, YAML) and environment variables
//   - watcher: file watching for live reload
//
// # File format
//
//	name = "arcade"
//
//	[viewport]
//	width = 1280
//	height = 720
//
//	[mouse]
//	invert_y_motion = true
//
//	[[bindings]]
//	action = "jump"
//	buttons = ["Space", "pad:0"]
//
// Button specs use the syntax accepted by button.Parse.
//
// # Basic Usage
//
//	p, err := config.Load(path)
//	if err != nil {
//	    return err
//	}
//	if err := p.Validate(); err != nil {
//	    return err
//	}
//	b, err := p.Builder()
package config
