package keymap

import (
	"cmp"
	"fmt"

	"github.com/dshills/rebind/internal/input/button"
	"github.com/dshills/rebind/internal/input/mouse"
)

// Action is the constraint for application action identifiers.
// The order is only used to make conversions deterministic.
type Action interface {
	cmp.Ordered
}

// TranslatedKind discriminates Translated values.
type TranslatedKind uint8

const (
	// TranslatedPress is a press of a button bound to Action.
	TranslatedPress TranslatedKind = iota + 1
	// TranslatedRelease is a release of a button bound to Action.
	TranslatedRelease
	// TranslatedMove is a transformed mouse motion.
	TranslatedMove
)

// String returns a string representation of the kind.
func (k TranslatedKind) String() string {
	switch k {
	case TranslatedPress:
		return "press"
	case TranslatedRelease:
		return "release"
	case TranslatedMove:
		return "move"
	default:
		return "none"
	}
}

// Translated is an input event expressed in terms of actions.
type Translated[A Action] struct {
	Kind TranslatedKind

	// Action is set for TranslatedPress and TranslatedRelease.
	Action A

	// Motion is set for TranslatedMove. Cursor motion has its origin at the
	// top-left corner of the viewport.
	Motion mouse.Motion
}

// String returns e.g. "press jump" or "move cursor(1, 2)".
func (t Translated[A]) String() string {
	if t.Kind == TranslatedMove {
		return "move " + t.Motion.String()
	}
	return fmt.Sprintf("%s %v", t.Kind, t.Action)
}

// Binding pairs a button with the action it triggers.
type Binding[A Action] struct {
	Button button.Button
	Action A
}

// String returns e.g. "key:W -> jump".
func (b Binding[A]) String() string {
	return fmt.Sprintf("%s -> %v", b.Button, b.Action)
}

// compareBindings orders bindings by action, then button.
func compareBindings[A Action](x, y Binding[A]) int {
	if c := cmp.Compare(x.Action, y.Action); c != 0 {
		return c
	}
	return x.Button.Compare(y.Button)
}
