package keymap

import (
	"maps"
	"slices"

	"github.com/dshills/rebind/internal/input"
	"github.com/dshills/rebind/internal/input/button"
	"github.com/dshills/rebind/internal/input/mouse"
)

// Translator converts raw input events into Translated events.
// Lookups are a single map access.
type Translator[A Action] struct {
	keymap map[button.Button]A
	mouse  mouse.Config
}

// NewTranslator creates an empty translator with a non-inverted mouse
// configuration for the given viewport.
func NewTranslator[A Action](size mouse.Size) *Translator[A] {
	return &Translator[A]{
		keymap: make(map[button.Button]A),
		mouse:  mouse.NewConfig(size),
	}
}

// Translate converts ev. Press and Release events translate only when the
// button is bound. Move events always translate, with the motion
// transformed by the mouse configuration. Other kinds never translate.
func (t *Translator[A]) Translate(ev input.Event) (Translated[A], bool) {
	switch ev.Kind {
	case input.EventPress:
		if a, ok := t.keymap[ev.Button]; ok {
			return Translated[A]{Kind: TranslatedPress, Action: a}, true
		}
	case input.EventRelease:
		if a, ok := t.keymap[ev.Button]; ok {
			return Translated[A]{Kind: TranslatedRelease, Action: a}, true
		}
	case input.EventMove:
		return Translated[A]{Kind: TranslatedMove, Motion: t.mouse.Apply(ev.Motion)}, true
	}
	return Translated[A]{}, false
}

// SetSize changes the viewport used to mirror cursor positions.
// Bindings are not affected.
func (t *Translator[A]) SetSize(size mouse.Size) {
	t.mouse.Viewport = size
}

// Size returns the current viewport size.
func (t *Translator[A]) Size() mouse.Size {
	return t.mouse.Viewport
}

// MouseConfig returns the mouse transform configuration.
func (t *Translator[A]) MouseConfig() mouse.Config {
	return t.mouse
}

// Lookup returns the action bound to b.
func (t *Translator[A]) Lookup(b button.Button) (A, bool) {
	a, ok := t.keymap[b]
	return a, ok
}

// Len returns the number of bound buttons.
func (t *Translator[A]) Len() int {
	return len(t.keymap)
}

// Bindings returns every binding ordered by button.
func (t *Translator[A]) Bindings() []Binding[A] {
	out := make([]Binding[A], 0, len(t.keymap))
	for b, a := range t.keymap {
		out = append(out, Binding[A]{Button: b, Action: a})
	}
	slices.SortFunc(out, func(x, y Binding[A]) int {
		return x.Button.Compare(y.Button)
	})
	return out
}

// ButtonsFor returns the buttons bound to a, ordered by button.
func (t *Translator[A]) ButtonsFor(a A) []button.Button {
	var out []button.Button
	for b, bound := range t.keymap {
		if bound == a {
			out = append(out, b)
		}
	}
	slices.SortFunc(out, button.Button.Compare)
	return out
}

// Clone returns an independent copy.
func (t *Translator[A]) Clone() *Translator[A] {
	return &Translator[A]{
		keymap: maps.Clone(t.keymap),
		mouse:  t.mouse,
	}
}

// Equal reports whether both translators hold the same bindings and mouse
// configuration.
func (t *Translator[A]) Equal(other *Translator[A]) bool {
	if t == nil || other == nil {
		return t == other
	}
	return t.mouse == other.mouse && maps.Equal(t.keymap, other.keymap)
}

// bind maps b to a, replacing any previous action for b.
func (t *Translator[A]) bind(b button.Button, a A) {
	if b.IsNone() {
		return
	}
	t.keymap[b] = a
}
