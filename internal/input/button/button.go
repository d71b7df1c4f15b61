package button

import (
	"cmp"
	"fmt"
)

// Device identifies the kind of hardware a button belongs to.
type Device uint8

const (
	// DeviceNone is the device of the zero Button.
	DeviceNone Device = iota
	// DeviceKeyboard is a keyboard key.
	DeviceKeyboard
	// DeviceMouse is a mouse button.
	DeviceMouse
	// DeviceController is a gamepad or joystick button.
	DeviceController
)

// String returns the device prefix used in the button text form.
func (d Device) String() string {
	switch d {
	case DeviceKeyboard:
		return "key"
	case DeviceMouse:
		return "mouse"
	case DeviceController:
		return "pad"
	default:
		return "none"
	}
}

// Button identifies one physical input.
// The zero value is None and means "no button".
type Button struct {
	Device Device
	Code   uint16
}

// None is the empty button.
var None Button

// Keyboard returns the button for a keyboard key.
func Keyboard(k Key) Button {
	return Button{Device: DeviceKeyboard, Code: uint16(k)}
}

// Mouse returns the button for a mouse button.
func Mouse(m MouseButton) Button {
	return Button{Device: DeviceMouse, Code: uint16(m)}
}

// Controller returns the button for a controller button index.
func Controller(index uint16) Button {
	return Button{Device: DeviceController, Code: index}
}

// IsNone returns true for the empty button.
func (b Button) IsNone() bool {
	return b == None
}

// Key returns the keyboard key and true if b is a keyboard button.
func (b Button) Key() (Key, bool) {
	if b.Device != DeviceKeyboard {
		return KeyUnknown, false
	}
	return Key(b.Code), true
}

// MouseButton returns the mouse button and true if b is a mouse button.
func (b Button) MouseButton() (MouseButton, bool) {
	if b.Device != DeviceMouse {
		return MouseNone, false
	}
	return MouseButton(b.Code), true
}

// Compare orders buttons by device, then code.
// It returns -1, 0 or +1 like cmp.Compare.
func (b Button) Compare(other Button) int {
	if c := cmp.Compare(b.Device, other.Device); c != 0 {
		return c
	}
	return cmp.Compare(b.Code, other.Code)
}

// Less reports whether b sorts before other.
func (b Button) Less(other Button) bool {
	return b.Compare(other) < 0
}

// String returns the canonical text form, e.g. "key:W" or "mouse:left".
func (b Button) String() string {
	switch b.Device {
	case DeviceKeyboard:
		return "key:" + Key(b.Code).String()
	case DeviceMouse:
		return "mouse:" + MouseButton(b.Code).String()
	case DeviceController:
		return fmt.Sprintf("pad:%d", b.Code)
	default:
		if b.Code != 0 {
			return fmt.Sprintf("none:%d", b.Code)
		}
		return "none"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (b Button) MarshalText() ([]byte, error) {
	return []byte(b.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (b *Button) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*b = parsed
	return nil
}

// MouseButton identifies a mouse button.
type MouseButton uint16

const (
	// MouseNone indicates no button.
	MouseNone MouseButton = iota
	// MouseLeft is the primary button.
	MouseLeft
	// MouseRight is the secondary button.
	MouseRight
	// MouseMiddle is the wheel button.
	MouseMiddle
	// MouseBack is the back navigation button (button 4).
	MouseBack
	// MouseForward is the forward navigation button (button 5).
	MouseForward
)

// String returns the lowercase button name.
func (m MouseButton) String() string {
	switch m {
	case MouseLeft:
		return "left"
	case MouseRight:
		return "right"
	case MouseMiddle:
		return "middle"
	case MouseBack:
		return "back"
	case MouseForward:
		return "forward"
	case MouseNone:
		return "none"
	default:
		return fmt.Sprintf("#%d", uint16(m))
	}
}

// MouseNames returns the canonical name of every named mouse button.
func MouseNames() []string {
	names := make([]string, 0, MouseForward)
	for m := MouseLeft; m <= MouseForward; m++ {
		names = append(names, m.String())
	}
	return names
}

var mouseNameMap = map[string]MouseButton{
	"left":    MouseLeft,
	"primary": MouseLeft,
	"right":   MouseRight,
	"middle":  MouseMiddle,
	"wheel":   MouseMiddle,
	"back":    MouseBack,
	"x1":      MouseBack,
	"forward": MouseForward,
	"x2":      MouseForward,
}
