package input

import (
	"fmt"
	"time"

	"github.com/dshills/rebind/internal/input/button"
	"github.com/dshills/rebind/internal/input/mouse"
)

// EventKind discriminates raw input events.
type EventKind uint8

const (
	// EventNone is the zero event.
	EventNone EventKind = iota
	// EventPress is a button going down.
	EventPress
	// EventRelease is a button coming up.
	EventRelease
	// EventMove is pointer motion or scroll.
	EventMove
	// EventResize reports a new viewport size.
	EventResize
	// EventText carries composed text input.
	EventText
	// EventFocus reports window focus changes.
	EventFocus
)

// String returns a string representation of the event kind.
func (k EventKind) String() string {
	switch k {
	case EventPress:
		return "press"
	case EventRelease:
		return "release"
	case EventMove:
		return "move"
	case EventResize:
		return "resize"
	case EventText:
		return "text"
	case EventFocus:
		return "focus"
	default:
		return "none"
	}
}

// Event is a raw input event decoded by the host.
// Which payload field is meaningful depends on Kind.
type Event struct {
	Kind EventKind

	// Button is set for EventPress and EventRelease.
	Button button.Button

	// Motion is set for EventMove.
	Motion mouse.Motion

	// Size is set for EventResize.
	Size mouse.Size

	// Text is set for EventText.
	Text string

	// Focused is set for EventFocus.
	Focused bool

	// Timestamp is when the host observed the event. May be zero.
	Timestamp time.Time
}

// Press returns a press event for b.
func Press(b button.Button) Event {
	return Event{Kind: EventPress, Button: b}
}

// Release returns a release event for b.
func Release(b button.Button) Event {
	return Event{Kind: EventRelease, Button: b}
}

// Move returns a motion event.
func Move(m mouse.Motion) Event {
	return Event{Kind: EventMove, Motion: m}
}

// Resize returns a resize event.
func Resize(size mouse.Size) Event {
	return Event{Kind: EventResize, Size: size}
}

// Text returns a text input event.
func Text(s string) Event {
	return Event{Kind: EventText, Text: s}
}

// Focus returns a focus change event.
func Focus(focused bool) Event {
	return Event{Kind: EventFocus, Focused: focused}
}

// At returns a copy of the event stamped with t.
func (e Event) At(t time.Time) Event {
	e.Timestamp = t
	return e
}

// IsButton returns true for press and release events.
func (e Event) IsButton() bool {
	return e.Kind == EventPress || e.Kind == EventRelease
}

// String returns a short description, e.g. "press key:W".
func (e Event) String() string {
	switch e.Kind {
	case EventPress, EventRelease:
		return fmt.Sprintf("%s %s", e.Kind, e.Button)
	case EventMove:
		return fmt.Sprintf("move %s", e.Motion)
	case EventResize:
		return fmt.Sprintf("resize %s", e.Size)
	case EventText:
		return fmt.Sprintf("text %q", e.Text)
	case EventFocus:
		return fmt.Sprintf("focus %t", e.Focused)
	default:
		return "none"
	}
}
