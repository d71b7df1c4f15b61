package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/dshills/rebind/internal/config/loader"
	"github.com/dshills/rebind/internal/input/button"
	"github.com/dshills/rebind/internal/input/keymap"
	"github.com/dshills/rebind/internal/input/mouse"
)

// EnvPrefix is the prefix of environment overrides.
const EnvPrefix = "REBIND_"

// Profile is a named set of bindings with its mouse settings.
type Profile struct {
	Name     string    `toml:"name" yaml:"name"`
	Viewport Viewport  `toml:"viewport" yaml:"viewport"`
	Mouse    Mouse     `toml:"mouse" yaml:"mouse"`
	Log      Log       `toml:"log" yaml:"log"`
	Bindings []Binding `toml:"bindings" yaml:"bindings"`
}

// Viewport is the size cursor positions are mirrored within.
type Viewport struct {
	Width  uint32 `toml:"width" yaml:"width"`
	Height uint32 `toml:"height" yaml:"height"`
}

// Size returns the viewport as a mouse.Size.
func (v Viewport) Size() mouse.Size {
	return mouse.Size{Width: v.Width, Height: v.Height}
}

// String returns e.g. "800x600".
func (v Viewport) String() string {
	return v.Size().String()
}

// ParseViewport parses "WIDTHxHEIGHT".
func ParseViewport(s string) (Viewport, error) {
	w, h, ok := strings.Cut(strings.ToLower(strings.TrimSpace(s)), "x")
	if !ok {
		return Viewport{}, fmt.Errorf("invalid viewport %q: want WIDTHxHEIGHT", s)
	}
	width, err := strconv.ParseUint(w, 10, 32)
	if err != nil {
		return Viewport{}, fmt.Errorf("invalid viewport width %q: %w", w, err)
	}
	height, err := strconv.ParseUint(h, 10, 32)
	if err != nil {
		return Viewport{}, fmt.Errorf("invalid viewport height %q: %w", h, err)
	}
	return Viewport{Width: uint32(width), Height: uint32(height)}, nil
}

// Mouse holds the pointer transform settings.
type Mouse struct {
	InvertXMotion bool    `toml:"invert_x_motion" yaml:"invert_x_motion"`
	InvertYMotion bool    `toml:"invert_y_motion" yaml:"invert_y_motion"`
	InvertXScroll bool    `toml:"invert_x_scroll" yaml:"invert_x_scroll"`
	InvertYScroll bool    `toml:"invert_y_scroll" yaml:"invert_y_scroll"`
	Sensitivity   float64 `toml:"sensitivity" yaml:"sensitivity"`
}

// Log holds logging settings.
type Log struct {
	Level string `toml:"level" yaml:"level"`
}

// Binding lists the buttons seeded for one action.
type Binding struct {
	Action  string   `toml:"action" yaml:"action"`
	Buttons []string `toml:"buttons" yaml:"buttons"`
}

// DefaultProfile returns an 800x600 profile with no bindings, no
// inversion and info logging.
func DefaultProfile() *Profile {
	return &Profile{
		Name: "default",
		Viewport: Viewport{
			Width:  mouse.DefaultSize.Width,
			Height: mouse.DefaultSize.Height,
		},
		Log:      Log{Level: "info"},
		Bindings: []Binding{},
	}
}

// DefaultPath returns the profile path under the user config directory.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		home, _ := os.UserHomeDir()
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "rebind", "profile.toml")
}

// Load reads the profile at path from the OS file system.
func Load(path string) (*Profile, error) {
	return LoadFS(loader.DefaultFS(), path)
}

// LoadFS reads the profile at path from fsys. Settings missing from the
// file keep their DefaultProfile values. A profile without a name is
// named after the file.
func LoadFS(fsys loader.FileSystem, path string) (*Profile, error) {
	p := DefaultProfile()
	p.Name = ""
	if err := loader.LoadFile(fsys, path, p); err != nil {
		return nil, err
	}
	if p.Name == "" {
		p.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return p, nil
}

// LoadWithEnv loads the profile at path and applies REBIND_* overrides.
// If path is empty only the defaults and overrides are used.
func LoadWithEnv(path string) (*Profile, error) {
	p := DefaultProfile()
	if path != "" {
		var err error
		if p, err = Load(path); err != nil {
			return nil, err
		}
	}
	if err := p.ApplyEnv(loader.NewEnvLoader(EnvPrefix)); err != nil {
		return nil, err
	}
	return p, nil
}

// ApplyEnv applies overrides collected by env.
func (p *Profile) ApplyEnv(env *loader.EnvLoader) error {
	overrides, err := env.Load()
	if err != nil {
		return fmt.Errorf("loading environment: %w", err)
	}
	return p.ApplyOverrides(overrides)
}

// override sets one profile field from an untyped value.
type override struct {
	path string
	set  func(p *Profile, v any) error
}

var overrides = []override{
	{"name", func(p *Profile, v any) error {
		p.Name = fmt.Sprint(v)
		return nil
	}},
	{"log.level", func(p *Profile, v any) error {
		s, ok := v.(string)
		if !ok {
			return &TypeError{Path: "log.level", Expected: "string", Actual: v}
		}
		p.Log.Level = s
		return nil
	}},
	{"viewport", func(p *Profile, v any) error {
		s, ok := v.(string)
		if !ok {
			return &TypeError{Path: "viewport", Expected: "WIDTHxHEIGHT", Actual: v}
		}
		vp, err := ParseViewport(s)
		if err != nil {
			return err
		}
		p.Viewport = vp
		return nil
	}},
	{"mouse.invert_x_motion", boolOverride("mouse.invert_x_motion", func(p *Profile) *bool { return &p.Mouse.InvertXMotion })},
	{"mouse.invert_y_motion", boolOverride("mouse.invert_y_motion", func(p *Profile) *bool { return &p.Mouse.InvertYMotion })},
	{"mouse.invert_x_scroll", boolOverride("mouse.invert_x_scroll", func(p *Profile) *bool { return &p.Mouse.InvertXScroll })},
	{"mouse.invert_y_scroll", boolOverride("mouse.invert_y_scroll", func(p *Profile) *bool { return &p.Mouse.InvertYScroll })},
	{"mouse.sensitivity", func(p *Profile, v any) error {
		switch n := v.(type) {
		case float64:
			p.Mouse.Sensitivity = n
		case int64:
			p.Mouse.Sensitivity = float64(n)
		default:
			return &TypeError{Path: "mouse.sensitivity", Expected: "number", Actual: v}
		}
		return nil
	}},
}

func boolOverride(path string, field func(p *Profile) *bool) func(p *Profile, v any) error {
	return func(p *Profile, v any) error {
		b, ok := v.(bool)
		if !ok {
			return &TypeError{Path: path, Expected: "bool", Actual: v}
		}
		*field(p) = b
		return nil
	}
}

// ApplyOverrides sets every known path present in values. Unknown paths
// are ignored. All type errors are reported together.
func (p *Profile) ApplyOverrides(values map[string]any) error {
	var errs []error
	for _, o := range overrides {
		v, ok := loader.GetByPath(values, o.path)
		if !ok {
			continue
		}
		if err := o.set(p, v); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

var logLevels = []string{"", "debug", "info", "warn", "warning", "error"}

// Validate checks every setting and returns ValidationErrors listing all
// problems, or nil.
func (p *Profile) Validate() error {
	var errs ValidationErrors

	if p.Viewport.Width == 0 || p.Viewport.Height == 0 {
		errs = append(errs, &ValidationError{
			Path:    "viewport",
			Message: "width and height must be positive",
			Value:   p.Viewport,
			Code:    ErrCodeOutOfRange,
		})
	}

	if s := p.Mouse.Sensitivity; s < 0 || math.IsNaN(s) || math.IsInf(s, 0) {
		errs = append(errs, &ValidationError{
			Path:    "mouse.sensitivity",
			Message: "must be a finite, non-negative number",
			Value:   s,
			Code:    ErrCodeOutOfRange,
		})
	}

	if !slices.Contains(logLevels, strings.ToLower(p.Log.Level)) {
		errs = append(errs, &ValidationError{
			Path:    "log.level",
			Message: "must be one of debug, info, warn, error",
			Value:   p.Log.Level,
			Code:    ErrCodeInvalidEnum,
		})
	}

	for i, b := range p.Bindings {
		if strings.TrimSpace(b.Action) == "" {
			errs = append(errs, &ValidationError{
				Path:    fmt.Sprintf("bindings[%d].action", i),
				Message: "action is required",
				Value:   b.Action,
				Code:    ErrCodeRequiredMissing,
			})
		}
		for j, spec := range b.Buttons {
			if _, err := button.Parse(spec); err != nil {
				msg := err.Error()
				if s := suggestButtons(spec); len(s) > 0 {
					msg += " (did you mean " + strings.Join(s, ", ") + "?)"
				}
				errs = append(errs, &ValidationError{
					Path:    fmt.Sprintf("bindings[%d].buttons[%d]", i, j),
					Message: msg,
					Value:   spec,
					Code:    ErrCodeInvalidButton,
				})
			}
		}
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

// MouseConfig returns the mouse transform settings of the profile.
func (p *Profile) MouseConfig() mouse.Config {
	return mouse.Config{
		XMotionInverted: p.Mouse.InvertXMotion,
		YMotionInverted: p.Mouse.InvertYMotion,
		XScrollInverted: p.Mouse.InvertXScroll,
		YScrollInverted: p.Mouse.InvertYScroll,
		Sensitivity:     p.Mouse.Sensitivity,
		Viewport:        p.Viewport.Size(),
	}
}

// Builder seeds a keymap builder with the profile's bindings in file
// order. A button listed under several actions ends up bound to the last
// one; see Duplicates.
func (p *Profile) Builder() (*keymap.Builder[string], error) {
	m := p.MouseConfig()
	bd := keymap.NewBuilder[string](m.Viewport).
		XMotionInverted(m.XMotionInverted).
		YMotionInverted(m.YMotionInverted).
		XScrollInverted(m.XScrollInverted).
		YScrollInverted(m.YScrollInverted).
		Sensitivity(m.Sensitivity)

	for i, b := range p.Bindings {
		for j, spec := range b.Buttons {
			btn, err := button.Parse(spec)
			if err != nil {
				return nil, fmt.Errorf("bindings[%d].buttons[%d]: %w", i, j, err)
			}
			bd.WithMapping(b.Action, btn)
		}
	}
	return bd, nil
}

// Duplicate is a button listed under more than one action.
type Duplicate struct {
	Button button.Button
	// Actions ordered by their last listing of the button.
	Actions []string
	// Winner is the action the button ends up bound to.
	Winner string
}

// Duplicates returns every button listed under more than one action,
// ordered by button. Unparseable specs are skipped.
func (p *Profile) Duplicates() []Duplicate {
	claims := make(map[button.Button][]string)
	for _, b := range p.Bindings {
		for _, spec := range b.Buttons {
			btn, err := button.Parse(spec)
			if err != nil {
				continue
			}
			owners := claims[btn]
			if i := slices.Index(owners, b.Action); i >= 0 {
				owners = slices.Delete(owners, i, i+1)
			}
			claims[btn] = append(owners, b.Action)
		}
	}

	var out []Duplicate
	for btn, owners := range claims {
		if len(owners) < 2 {
			continue
		}
		out = append(out, Duplicate{
			Button:  btn,
			Actions: owners,
			Winner:  owners[len(owners)-1],
		})
	}
	slices.SortFunc(out, func(x, y Duplicate) int {
		return x.Button.Compare(y.Button)
	})
	return out
}

// Clone returns a deep copy.
func (p *Profile) Clone() *Profile {
	c := *p
	c.Bindings = make([]Binding, len(p.Bindings))
	for i, b := range p.Bindings {
		c.Bindings[i] = Binding{Action: b.Action, Buttons: slices.Clone(b.Buttons)}
	}
	return &c
}
