package keymap

import (
	"slices"

	"github.com/dshills/rebind/internal/input/button"
	"github.com/dshills/rebind/internal/input/mouse"
)

// Builder collects seed bindings and mouse settings and materializes them
// as a Translator or a Rebind.
type Builder[A Action] struct {
	mappings []Binding[A]
	mouse    mouse.Config
}

// NewBuilder creates a builder for the given viewport.
func NewBuilder[A Action](size mouse.Size) *Builder[A] {
	return &Builder[A]{
		mappings: make([]Binding[A], 0),
		mouse:    mouse.NewConfig(size),
	}
}

// NewDefaultBuilder creates a builder for an 800x600 viewport.
func NewDefaultBuilder[A Action]() *Builder[A] {
	return NewBuilder[A](mouse.DefaultSize)
}

// WithMapping appends a seed binding. Seeds are applied in order, so a
// later seed for the same button replaces the earlier action.
// button.None is ignored.
func (bd *Builder[A]) WithMapping(action A, b button.Button) *Builder[A] {
	if b.IsNone() {
		return bd
	}
	bd.mappings = append(bd.mappings, Binding[A]{Button: b, Action: action})
	return bd
}

// WithMappings appends one seed binding per button.
func (bd *Builder[A]) WithMappings(action A, buttons ...button.Button) *Builder[A] {
	for _, b := range buttons {
		bd.WithMapping(action, b)
	}
	return bd
}

// XMotionInverted sets whether cursor X is mirrored.
func (bd *Builder[A]) XMotionInverted(invert bool) *Builder[A] {
	bd.mouse.XMotionInverted = invert
	return bd
}

// YMotionInverted sets whether cursor Y is mirrored.
func (bd *Builder[A]) YMotionInverted(invert bool) *Builder[A] {
	bd.mouse.YMotionInverted = invert
	return bd
}

// XScrollInverted sets whether horizontal scroll is negated.
func (bd *Builder[A]) XScrollInverted(invert bool) *Builder[A] {
	bd.mouse.XScrollInverted = invert
	return bd
}

// YScrollInverted sets whether vertical scroll is negated.
func (bd *Builder[A]) YScrollInverted(invert bool) *Builder[A] {
	bd.mouse.YScrollInverted = invert
	return bd
}

// Sensitivity stores a sensitivity value.
func (bd *Builder[A]) Sensitivity(s float64) *Builder[A] {
	bd.mouse.Sensitivity = s
	return bd
}

// ViewportSize sets the viewport size.
func (bd *Builder[A]) ViewportSize(size mouse.Size) *Builder[A] {
	bd.mouse.Viewport = size
	return bd
}

// Mappings returns a copy of the seed bindings in insertion order.
func (bd *Builder[A]) Mappings() []Binding[A] {
	return slices.Clone(bd.mappings)
}

// MouseConfig returns the mouse configuration that will be built.
func (bd *Builder[A]) MouseConfig() mouse.Config {
	return bd.mouse
}

// BuildTranslator materializes the seeds as a Translator.
func (bd *Builder[A]) BuildTranslator() *Translator[A] {
	t := &Translator[A]{
		keymap: make(map[button.Button]A, len(bd.mappings)),
		mouse:  bd.mouse,
	}
	for _, m := range bd.mappings {
		t.bind(m.Button, m.Action)
	}
	return t
}

// BuildRebind materializes the seeds as a Rebind. The result equals
// BuildTranslator().ToRebind().
func (bd *Builder[A]) BuildRebind() *Rebind[A] {
	return bd.BuildTranslator().ToRebind()
}
