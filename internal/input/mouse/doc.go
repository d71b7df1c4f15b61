// Package mouse provides pointer motion values and the axis transform
// applied to them before they reach the application.
//
// # Motion
//
// A Motion is one of:
//
//   - Cursor: absolute pointer position, origin at the top-left corner of
//     the viewport
//   - Scroll: wheel delta
//   - Relative: raw pointer delta (passed through unchanged)
//
// # Transform
//
// Config holds the per-axis inversion flags, the viewport size and a
// sensitivity value. Config.Apply mirrors cursor positions across the
// viewport and negates scroll deltas for inverted axes:
//
//	cfg := mouse.NewConfig(mouse.Size{Width: 800, Height: 600})
//	cfg.XMotionInverted = true
//	cfg.Apply(mouse.Cursor(45, 11)) // Cursor(755, 11)
//
// Sensitivity is stored and carried with the configuration but is not
// applied by Apply.
package mouse
