package keymap

import (
	"cmp"
	"iter"
	"maps"
	"slices"

	"github.com/dshills/rebind/internal/input/button"
	"github.com/dshills/rebind/internal/input/mouse"
)

// Rebind is the editable, action-indexed form of a set of bindings.
type Rebind[A Action] struct {
	keymap map[A]*ButtonTuple
	mouse  mouse.Config
}

// NewRebind creates an empty Rebind with a non-inverted mouse
// configuration for the given viewport.
func NewRebind[A Action](size mouse.Size) *Rebind[A] {
	return &Rebind[A]{
		keymap: make(map[A]*ButtonTuple),
		mouse:  mouse.NewConfig(size),
	}
}

// DefaultRebind creates an empty Rebind for an 800x600 viewport.
func DefaultRebind[A Action]() *Rebind[A] {
	return NewRebind[A](mouse.DefaultSize)
}

// InsertAction adds a with an empty tuple. If a was already present its
// tuple is reset and the previous one returned with true.
func (r *Rebind[A]) InsertAction(a A) (ButtonTuple, bool) {
	return r.InsertActionWithButtons(a, NewButtonTuple())
}

// InsertActionWithButtons assigns buttons to a. If a was already present
// the previous tuple is returned with true.
func (r *Rebind[A]) InsertActionWithButtons(a A, buttons ButtonTuple) (ButtonTuple, bool) {
	prev, ok := r.keymap[a]
	r.keymap[a] = &buttons
	if !ok {
		return ButtonTuple{}, false
	}
	return *prev, true
}

// RemoveAction deletes a and returns its tuple.
func (r *Rebind[A]) RemoveAction(a A) (ButtonTuple, bool) {
	prev, ok := r.keymap[a]
	if !ok {
		return ButtonTuple{}, false
	}
	delete(r.keymap, a)
	return *prev, true
}

// Bindings returns a copy of the tuple stored for a.
// Returns false if a has never been inserted.
func (r *Rebind[A]) Bindings(a A) (ButtonTuple, bool) {
	bt, ok := r.keymap[a]
	if !ok {
		return ButtonTuple{}, false
	}
	return *bt, true
}

// BindingsMut returns the tuple stored for a for in-place editing, or nil
// if a has never been inserted.
func (r *Rebind[A]) BindingsMut(a A) *ButtonTuple {
	return r.keymap[a]
}

// ClearButton removes b from every action and returns the number of slots
// cleared. Useful before assigning b to a single action.
func (r *Rebind[A]) ClearButton(b button.Button) int {
	n := 0
	for _, bt := range r.keymap {
		n += bt.Remove(b)
	}
	return n
}

// Actions returns every stored action in ascending order.
func (r *Rebind[A]) Actions() []A {
	return slices.Sorted(maps.Keys(r.keymap))
}

// All yields every stored action with a copy of its tuple, in ascending
// action order. Unlike Actions followed by Bindings, it also reaches keys
// that never compare equal to themselves, such as NaN.
func (r *Rebind[A]) All() iter.Seq2[A, ButtonTuple] {
	return func(yield func(A, ButtonTuple) bool) {
		for _, e := range r.entries() {
			if !yield(e.action, *e.tuple) {
				return
			}
		}
	}
}

// actionEntry is one row of the reverse table.
type actionEntry[A Action] struct {
	action A
	tuple  *ButtonTuple
}

// entries returns the reverse table sorted by action. The tuples are taken
// from map iteration, never by re-indexing with the key.
func (r *Rebind[A]) entries() []actionEntry[A] {
	out := make([]actionEntry[A], 0, len(r.keymap))
	for a, bt := range r.keymap {
		out = append(out, actionEntry[A]{action: a, tuple: bt})
	}
	slices.SortStableFunc(out, func(x, y actionEntry[A]) int {
		return cmp.Compare(x.action, y.action)
	})
	return out
}

// Len returns the number of stored actions.
func (r *Rebind[A]) Len() int {
	return len(r.keymap)
}

// XMotionInverted returns whether cursor X is mirrored.
func (r *Rebind[A]) XMotionInverted() bool {
	return r.mouse.XMotionInverted
}

// SetXMotionInverted sets whether cursor X is mirrored.
func (r *Rebind[A]) SetXMotionInverted(invert bool) {
	r.mouse.XMotionInverted = invert
}

// YMotionInverted returns whether cursor Y is mirrored.
func (r *Rebind[A]) YMotionInverted() bool {
	return r.mouse.YMotionInverted
}

// SetYMotionInverted sets whether cursor Y is mirrored.
func (r *Rebind[A]) SetYMotionInverted(invert bool) {
	r.mouse.YMotionInverted = invert
}

// XScrollInverted returns whether horizontal scroll is negated.
func (r *Rebind[A]) XScrollInverted() bool {
	return r.mouse.XScrollInverted
}

// SetXScrollInverted sets whether horizontal scroll is negated.
func (r *Rebind[A]) SetXScrollInverted(invert bool) {
	r.mouse.XScrollInverted = invert
}

// YScrollInverted returns whether vertical scroll is negated.
func (r *Rebind[A]) YScrollInverted() bool {
	return r.mouse.YScrollInverted
}

// SetYScrollInverted sets whether vertical scroll is negated.
func (r *Rebind[A]) SetYScrollInverted(invert bool) {
	r.mouse.YScrollInverted = invert
}

// ViewportSize returns the viewport used to mirror cursor positions.
func (r *Rebind[A]) ViewportSize() mouse.Size {
	return r.mouse.Viewport
}

// SetViewportSize sets the viewport used to mirror cursor positions.
func (r *Rebind[A]) SetViewportSize(size mouse.Size) {
	r.mouse.Viewport = size
}

// Sensitivity returns the stored sensitivity value.
func (r *Rebind[A]) Sensitivity() float64 {
	return r.mouse.Sensitivity
}

// SetSensitivity stores a sensitivity value. It is carried into the
// Translator but does not affect motion.
func (r *Rebind[A]) SetSensitivity(s float64) {
	r.mouse.Sensitivity = s
}

// MouseConfig returns the mouse transform configuration.
func (r *Rebind[A]) MouseConfig() mouse.Config {
	return r.mouse
}

// Clone returns an independent deep copy.
func (r *Rebind[A]) Clone() *Rebind[A] {
	clone := &Rebind[A]{
		keymap: make(map[A]*ButtonTuple, len(r.keymap)),
		mouse:  r.mouse,
	}
	for a, bt := range r.keymap {
		copied := *bt
		clone.keymap[a] = &copied
	}
	return clone
}

// Equal reports whether both hold the same actions, tuples and mouse
// configuration.
func (r *Rebind[A]) Equal(other *Rebind[A]) bool {
	if r == nil || other == nil {
		return r == other
	}
	if r.mouse != other.mouse {
		return false
	}
	return maps.EqualFunc(r.keymap, other.keymap, func(x, y *ButtonTuple) bool {
		return *x == *y
	})
}

// Conflict describes a button claimed by more than one action.
type Conflict[A Action] struct {
	Button button.Button

	// Actions claiming the button, ascending.
	Actions []A

	// Winner is the action ToTranslator binds the button to.
	Winner A
}

// Conflicts returns every button stored under more than one action,
// ordered by button.
func (r *Rebind[A]) Conflicts() []Conflict[A] {
	claims := make(map[button.Button][]A)
	for _, e := range r.entries() {
		for _, b := range e.tuple.Buttons() {
			owners := claims[b]
			if len(owners) > 0 && cmp.Compare(owners[len(owners)-1], e.action) == 0 {
				// same button twice in one tuple
				continue
			}
			claims[b] = append(owners, e.action)
		}
	}

	var out []Conflict[A]
	for b, owners := range claims {
		if len(owners) < 2 {
			continue
		}
		out = append(out, Conflict[A]{
			Button:  b,
			Actions: owners,
			Winner:  owners[len(owners)-1],
		})
	}
	slices.SortFunc(out, func(x, y Conflict[A]) int {
		return x.Button.Compare(y.Button)
	})
	return out
}
