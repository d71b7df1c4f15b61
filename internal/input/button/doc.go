// Package button defines the physical input identifiers that bindings are
// made of.
//
// A Button is an opaque, comparable value naming one physical input: a
// keyboard key, a mouse button or a controller button. Buttons are used as
// map keys by the binding engine, which never looks inside them except to
// order them deterministically.
//
// # Text Form
//
// Buttons have a canonical text form used by configuration files and tools:
//
//	"key:W"       - keyboard key W
//	"key:Space"   - keyboard space bar
//	"mouse:left"  - primary mouse button
//	"pad:3"       - controller button 3
//
// A bare key name ("W", "Enter", "F5") is accepted as shorthand for a
// keyboard key.
package button
