// Package backend adapts host input sources to input.Event.
//
// Terminal wraps a tcell screen and decodes its key, mouse, resize and
// focus events. NullBackend is fed programmatically.
//
// Terminal key events have no release, so Terminal reports a press
// immediately followed by a release. Ctrl+letter chords report the
// letter key. Mouse presses and releases come from diffing the held
// button mask between mouse events, and each wheel bit becomes a scroll
// of one unit.
package backend
