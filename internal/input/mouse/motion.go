package mouse

import "fmt"

// MotionKind discriminates Motion values.
type MotionKind uint8

const (
	// MotionNone is the zero Motion.
	MotionNone MotionKind = iota
	// MotionCursor is an absolute cursor position.
	MotionCursor
	// MotionScroll is a scroll wheel delta.
	MotionScroll
	// MotionRelative is a relative pointer delta.
	MotionRelative
)

// String returns a string representation of the motion kind.
func (k MotionKind) String() string {
	switch k {
	case MotionCursor:
		return "cursor"
	case MotionScroll:
		return "scroll"
	case MotionRelative:
		return "relative"
	default:
		return "none"
	}
}

// Motion is a pointer movement or scroll event.
// X and Y are a position for cursor motion and deltas otherwise.
type Motion struct {
	Kind MotionKind
	X    float64
	Y    float64
}

// Cursor returns an absolute cursor motion.
func Cursor(x, y float64) Motion {
	return Motion{Kind: MotionCursor, X: x, Y: y}
}

// Scroll returns a scroll motion.
func Scroll(dx, dy float64) Motion {
	return Motion{Kind: MotionScroll, X: dx, Y: dy}
}

// Relative returns a relative pointer motion.
func Relative(dx, dy float64) Motion {
	return Motion{Kind: MotionRelative, X: dx, Y: dy}
}

// String returns e.g. "cursor(45, 11)".
func (m Motion) String() string {
	return fmt.Sprintf("%s(%g, %g)", m.Kind, m.X, m.Y)
}

// Size is a viewport size in pixels (or cells for terminal hosts).
type Size struct {
	Width  uint32
	Height uint32
}

// DefaultSize is the viewport used when none is configured.
var DefaultSize = Size{Width: 800, Height: 600}

// IsZero returns true if either dimension is zero.
func (s Size) IsZero() bool {
	return s.Width == 0 || s.Height == 0
}

// String returns e.g. "800x600".
func (s Size) String() string {
	return fmt.Sprintf("%dx%d", s.Width, s.Height)
}
