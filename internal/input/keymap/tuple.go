package keymap

import (
	"iter"
	"strings"

	"github.com/dshills/rebind/internal/input/button"
)

// MaxButtons is the number of buttons a single action can hold in a Rebind.
const MaxButtons = 3

// ButtonTuple holds up to MaxButtons buttons bound to one action.
// An empty slot holds button.None. Slots may be sparse: an empty slot can
// precede a set one after manual edits.
type ButtonTuple struct {
	slots [MaxButtons]button.Button
}

// NewButtonTuple returns a tuple with every slot empty.
func NewButtonTuple() ButtonTuple {
	return ButtonTuple{}
}

// TupleOf returns a tuple whose slot i holds buttons[i].
// button.None leaves a slot empty; buttons past MaxButtons are ignored.
func TupleOf(buttons ...button.Button) ButtonTuple {
	var t ButtonTuple
	for i := 0; i < len(buttons) && i < MaxButtons; i++ {
		t.slots[i] = buttons[i]
	}
	return t
}

// Contains reports whether any slot holds b.
func (t ButtonTuple) Contains(b button.Button) bool {
	if b.IsNone() {
		return false
	}
	for _, s := range t.slots {
		if s == b {
			return true
		}
	}
	return false
}

// Insert puts b into the first empty slot, scanning left to right.
// It returns false and leaves the tuple unchanged when every slot is taken
// or b is button.None. Duplicates are not checked.
func (t *ButtonTuple) Insert(b button.Button) bool {
	if b.IsNone() {
		return false
	}
	for i, s := range t.slots {
		if s.IsNone() {
			t.slots[i] = b
			return true
		}
	}
	return false
}

// NumButtonsSet returns the number of non-empty slots.
func (t ButtonTuple) NumButtonsSet() int {
	n := 0
	for _, s := range t.slots {
		if !s.IsNone() {
			n++
		}
	}
	return n
}

// MaxButtons returns the capacity of the tuple.
func (t ButtonTuple) MaxButtons() int {
	return MaxButtons
}

// IsEmpty returns true if no slot is set.
func (t ButtonTuple) IsEmpty() bool {
	return t.NumButtonsSet() == 0
}

// Slot returns the button in slot i and whether the slot is set.
func (t ButtonTuple) Slot(i int) (button.Button, bool) {
	if i < 0 || i >= MaxButtons {
		return button.None, false
	}
	b := t.slots[i]
	return b, !b.IsNone()
}

// Set stores b in slot i, replacing its content. Storing button.None
// clears the slot. Returns false if i is out of range.
func (t *ButtonTuple) Set(i int, b button.Button) bool {
	if i < 0 || i >= MaxButtons {
		return false
	}
	t.slots[i] = b
	return true
}

// Clear empties slot i.
func (t *ButtonTuple) Clear(i int) {
	t.Set(i, button.None)
}

// Remove empties every slot holding b and returns how many were cleared.
func (t *ButtonTuple) Remove(b button.Button) int {
	if b.IsNone() {
		return 0
	}
	n := 0
	for i, s := range t.slots {
		if s == b {
			t.slots[i] = button.None
			n++
		}
	}
	return n
}

// Buttons returns the set buttons in slot order.
func (t ButtonTuple) Buttons() []button.Button {
	out := make([]button.Button, 0, MaxButtons)
	for _, s := range t.slots {
		if !s.IsNone() {
			out = append(out, s)
		}
	}
	return out
}

// Iter returns an iterator over the three slots in index order.
// Each call returns a fresh iterator.
func (t ButtonTuple) Iter() *TupleIter {
	return &TupleIter{tuple: t}
}

// All yields every slot index with its content, empty slots included.
func (t ButtonTuple) All() iter.Seq2[int, button.Button] {
	return func(yield func(int, button.Button) bool) {
		for i, s := range t.slots {
			if !yield(i, s) {
				return
			}
		}
	}
}

// String returns e.g. "(key:W, key:Up, none)".
func (t ButtonTuple) String() string {
	parts := make([]string, MaxButtons)
	for i, s := range t.slots {
		parts[i] = s.String()
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

// TupleIter walks the slots of a ButtonTuple.
type TupleIter struct {
	tuple ButtonTuple
	i     int
}

// Next returns the content of the next slot, which is button.None for an
// empty slot. ok is false once all slots have been visited.
func (it *TupleIter) Next() (b button.Button, ok bool) {
	if it.i >= MaxButtons {
		return button.None, false
	}
	b = it.tuple.slots[it.i]
	it.i++
	return b, true
}

// Len returns the number of slots not yet visited.
func (it *TupleIter) Len() int {
	return max(MaxButtons-it.i, 0)
}
