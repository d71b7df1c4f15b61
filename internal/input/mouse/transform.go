package mouse

// Config controls how raw pointer motion is transformed.
type Config struct {
	// XMotionInverted mirrors cursor X across the viewport width.
	XMotionInverted bool

	// YMotionInverted mirrors cursor Y across the viewport height.
	YMotionInverted bool

	// XScrollInverted negates horizontal scroll deltas.
	XScrollInverted bool

	// YScrollInverted negates vertical scroll deltas.
	YScrollInverted bool

	// Sensitivity is reserved. It is carried through every conversion
	// unchanged and is not applied to motion.
	Sensitivity float64

	// Viewport is the size cursor positions are mirrored within.
	Viewport Size
}

// NewConfig returns a non-inverted configuration with zero sensitivity.
func NewConfig(viewport Size) Config {
	return Config{Viewport: viewport}
}

// DefaultConfig returns NewConfig(DefaultSize).
func DefaultConfig() Config {
	return NewConfig(DefaultSize)
}

// Apply transforms a motion according to the configuration.
// Cursor positions are mirrored for inverted axes, scroll deltas are
// negated, and every other kind passes through unchanged.
func (c Config) Apply(m Motion) Motion {
	switch m.Kind {
	case MotionCursor:
		x, y := m.X, m.Y
		if c.XMotionInverted {
			x = float64(c.Viewport.Width) - x
		}
		if c.YMotionInverted {
			y = float64(c.Viewport.Height) - y
		}
		return Cursor(x, y)

	case MotionScroll:
		dx, dy := m.X, m.Y
		if c.XScrollInverted {
			dx = -dx
		}
		if c.YScrollInverted {
			dy = -dy
		}
		return Scroll(dx, dy)

	default:
		return m
	}
}
