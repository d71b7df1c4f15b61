package keymap

import (
	"cmp"
	"slices"

	"github.com/dshills/rebind/internal/input/button"
)

// ToTranslator expands the Rebind into a new Translator.
//
// Actions are visited in ascending order and every set slot binds its
// button to the action. A button stored under several actions ends up
// bound to the greatest of them; see Conflicts. The mouse configuration is
// copied unchanged.
func (r *Rebind[A]) ToTranslator() *Translator[A] {
	t := &Translator[A]{
		keymap: make(map[button.Button]A, len(r.keymap)*MaxButtons),
		mouse:  r.mouse,
	}
	for _, e := range r.entries() {
		for _, b := range e.tuple.slots {
			t.bind(b, e.action)
		}
	}
	return t
}

// ToRebind compresses the Translator into a new Rebind.
//
// Buttons are grouped by action and each group is ordered by
// button.Compare. The first MaxButtons buttons of a group fill the
// action's tuple; the rest are dropped (see Overflow). Only actions with
// at least one bound button appear. The mouse configuration is copied
// unchanged.
func (t *Translator[A]) ToRebind() *Rebind[A] {
	r := &Rebind[A]{
		keymap: make(map[A]*ButtonTuple),
		mouse:  t.mouse,
	}
	for _, g := range t.groups() {
		var bt ButtonTuple
		for i, b := range g.buttons {
			if i == MaxButtons {
				break
			}
			bt.slots[i] = b
		}
		r.keymap[g.action] = &bt
	}
	return r
}

// Overflow returns the bindings ToRebind would drop because their action
// has more than MaxButtons buttons, ordered by action then button.
func (t *Translator[A]) Overflow() []Binding[A] {
	var out []Binding[A]
	for _, g := range t.groups() {
		if len(g.buttons) <= MaxButtons {
			continue
		}
		for _, b := range g.buttons[MaxButtons:] {
			out = append(out, Binding[A]{Button: b, Action: g.action})
		}
	}
	return out
}

// actionGroup is every button bound to one action, ordered by button.
type actionGroup[A Action] struct {
	action  A
	buttons []button.Button
}

// groups sorts the forward table by (action, button) and coalesces runs of
// the same action.
func (t *Translator[A]) groups() []actionGroup[A] {
	pairs := make([]Binding[A], 0, len(t.keymap))
	for b, a := range t.keymap {
		pairs = append(pairs, Binding[A]{Button: b, Action: a})
	}
	slices.SortFunc(pairs, compareBindings[A])

	var groups []actionGroup[A]
	for _, p := range pairs {
		if n := len(groups); n > 0 && cmp.Compare(groups[n-1].action, p.Action) == 0 {
			groups[n-1].buttons = append(groups[n-1].buttons, p.Button)
			continue
		}
		groups = append(groups, actionGroup[A]{
			action:  p.Action,
			buttons: []button.Button{p.Button},
		})
	}
	return groups
}
