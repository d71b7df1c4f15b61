// Package input defines the raw input events a host feeds into the binding
// engine.
//
// Hosts (a terminal backend, a windowing toolkit, a test) decode their
// native events into Event values. Only three kinds carry meaning for
// bindings:
//
//   - Press and Release carry the button.Button that changed state
//   - Move carries a mouse.Motion (cursor position, scroll, relative)
//
// Every other kind (Resize, Text, Focus) passes through the engine
// untranslated and is left to the host.
//
// # Usage
//
//	ev := input.Press(button.Keyboard(button.KeySpace))
//	if t, ok := translator.Translate(ev); ok {
//	    handle(t)
//	}
//
// Metrics counts translated, unbound and ignored events for diagnostics.
package input
