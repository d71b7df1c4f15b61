package mouse

import (
	"math"
	"testing"
)

var testSize = Size{Width: 800, Height: 600}

func TestMotionKind_String(t *testing.T) {
	tests := []struct {
		kind MotionKind
		want string
	}{
		{MotionNone, "none"},
		{MotionCursor, "cursor"},
		{MotionScroll, "scroll"},
		{MotionRelative, "relative"},
		{MotionKind(42), "none"},
	}

	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("%d.String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestMotion_String(t *testing.T) {
	if got := Cursor(45, 11.5).String(); got != "cursor(45, 11.5)" {
		t.Errorf("String() = %q", got)
	}
}

func TestSize(t *testing.T) {
	if DefaultSize != (Size{Width: 800, Height: 600}) {
		t.Errorf("DefaultSize = %v, want 800x600", DefaultSize)
	}
	if DefaultSize.String() != "800x600" {
		t.Errorf("String() = %q, want %q", DefaultSize.String(), "800x600")
	}
	if !(Size{Width: 10}).IsZero() {
		t.Error("Size with zero height should be zero")
	}
	if DefaultSize.IsZero() {
		t.Error("DefaultSize should not be zero")
	}
}

func TestNewConfig(t *testing.T) {
	cfg := NewConfig(testSize)
	if cfg.XMotionInverted || cfg.YMotionInverted || cfg.XScrollInverted || cfg.YScrollInverted {
		t.Error("new config should not invert any axis")
	}
	if cfg.Sensitivity != 0 {
		t.Errorf("Sensitivity = %v, want 0", cfg.Sensitivity)
	}
	if cfg.Viewport != testSize {
		t.Errorf("Viewport = %v, want %v", cfg.Viewport, testSize)
	}
	if DefaultConfig().Viewport != DefaultSize {
		t.Error("DefaultConfig should use DefaultSize")
	}
}

func TestApply_Cursor(t *testing.T) {
	tests := []struct {
		name    string
		invertX bool
		invertY bool
		in      Motion
		want    Motion
	}{
		{"unmodified", false, false, Cursor(45, 11), Cursor(45, 11)},
		{"mirror x", true, false, Cursor(45, 11), Cursor(755, 11)},
		{"mirror y", false, true, Cursor(45, 11), Cursor(45, 589)},
		{"mirror both", true, true, Cursor(45, 11), Cursor(755, 589)},
		{"outside viewport", true, false, Cursor(900, 0), Cursor(-100, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewConfig(testSize)
			cfg.XMotionInverted = tt.invertX
			cfg.YMotionInverted = tt.invertY
			if got := cfg.Apply(tt.in); got != tt.want {
				t.Errorf("Apply(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestApply_Scroll(t *testing.T) {
	tests := []struct {
		name    string
		invertX bool
		invertY bool
		want    Motion
	}{
		{"unmodified", false, false, Scroll(2, 3)},
		{"invert x", true, false, Scroll(-2, 3)},
		{"invert y", false, true, Scroll(2, -3)},
		{"invert both", true, true, Scroll(-2, -3)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewConfig(testSize)
			cfg.XScrollInverted = tt.invertX
			cfg.YScrollInverted = tt.invertY
			if got := cfg.Apply(Scroll(2, 3)); got != tt.want {
				t.Errorf("Apply() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestApply_ScrollFlagsDoNotAffectCursor(t *testing.T) {
	cfg := NewConfig(testSize)
	cfg.XScrollInverted = true
	cfg.YScrollInverted = true
	if got := cfg.Apply(Cursor(45, 11)); got != Cursor(45, 11) {
		t.Errorf("Apply() = %v, want unchanged cursor", got)
	}

	cfg = NewConfig(testSize)
	cfg.XMotionInverted = true
	cfg.YMotionInverted = true
	if got := cfg.Apply(Scroll(2, 3)); got != Scroll(2, 3) {
		t.Errorf("Apply() = %v, want unchanged scroll", got)
	}
}

func TestApply_RelativePassesThrough(t *testing.T) {
	cfg := Config{
		XMotionInverted: true,
		YMotionInverted: true,
		XScrollInverted: true,
		YScrollInverted: true,
		Sensitivity:     3,
		Viewport:        testSize,
	}

	for _, m := range []Motion{Relative(4, -7), {}, {Kind: MotionKind(9), X: 1, Y: 2}} {
		if got := cfg.Apply(m); got != m {
			t.Errorf("Apply(%v) = %v, want unchanged", m, got)
		}
	}
}

func TestApply_SensitivityIgnored(t *testing.T) {
	inputs := []Motion{Cursor(45, 11), Scroll(2, 3), Relative(1, 1)}

	for _, sensitivity := range []float64{0, 0.5, 1, 10, -2, math.Inf(1)} {
		cfg := NewConfig(testSize)
		cfg.XMotionInverted = true
		cfg.YScrollInverted = true

		base := cfg
		cfg.Sensitivity = sensitivity

		for _, in := range inputs {
			if got, want := cfg.Apply(in), base.Apply(in); got != want {
				t.Errorf("sensitivity %v: Apply(%v) = %v, want %v", sensitivity, in, got, want)
			}
		}
	}
}
