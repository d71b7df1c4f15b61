// Package keymap binds physical buttons to application actions.
//
// Bindings have two interchangeable representations:
//
// Translator: a Button → Action table used on every frame to decode input.
// Each button maps to at most one action; an action may have any number of
// buttons. Mouse motion is run through a mouse.Config transform.
//
// Rebind: an Action → ButtonTuple table used by settings screens to inspect
// and edit bindings per action. Each action holds at most three buttons.
//
// # Conversion
//
// Translator.ToRebind groups buttons by action. Actions are visited in
// ascending order and, within an action, buttons in ascending
// button.Compare order; only the first three buttons of an action are
// kept. Translator.Overflow lists the ones that would be dropped.
//
// Rebind.ToTranslator expands every set slot into a button → action entry.
// Actions are visited in ascending order, so when two actions claim the
// same button the greater action keeps it. Rebind.Conflicts reports such
// buttons so hosts can resolve them before converting.
//
// Conversions copy all state, including the mouse configuration. The round
// trip Translator → Rebind → Translator is lossless as long as no action
// has more than three buttons.
//
// # Usage
//
//	type Action int
//
//	const (
//	    Jump Action = iota
//	    Fire
//	)
//
//	translator := keymap.NewDefaultBuilder[Action]().
//	    WithMapping(Jump, button.Keyboard(button.KeySpace)).
//	    WithMapping(Fire, button.Mouse(button.MouseLeft)).
//	    BuildTranslator()
//
//	if t, ok := translator.Translate(ev); ok && t.Kind == keymap.TranslatedPress {
//	    // t.Action
//	}
//
//	// Rebinding screen
//	rb := translator.ToRebind()
//	rb.BindingsMut(Jump).Insert(button.Keyboard(button.KeyW))
//	translator = rb.ToTranslator()
//
// None of the types in this package are safe for concurrent mutation;
// hosts that edit bindings from another goroutine must serialize access.
package keymap
