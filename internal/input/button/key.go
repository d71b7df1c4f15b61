package button

import (
	"fmt"
	"strings"
)

// Key identifies a keyboard key by position, independent of layout or
// modifiers. Character keys have one constant per letter and digit.
type Key uint16

const (
	// KeyUnknown represents an undecoded key.
	KeyUnknown Key = iota

	// Letters
	KeyA
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ

	// Digit row
	Key0
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9

	// Special keys
	KeyEscape
	KeyEnter
	KeyTab
	KeyBackspace
	KeyDelete
	KeyInsert
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeySpace

	// Arrow keys
	KeyUp
	KeyDown
	KeyLeft
	KeyRight

	// Function keys
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12

	// Modifier keys, bindable on their own
	KeyLeftShift
	KeyRightShift
	KeyLeftCtrl
	KeyRightCtrl
	KeyLeftAlt
	KeyRightAlt

	// Punctuation
	KeyMinus
	KeyEqual
	KeyComma
	KeyPeriod
	KeySlash
	KeySemicolon

	keyCount
)

var keyNames = [keyCount]string{
	KeyUnknown:    "Unknown",
	KeyEscape:     "Escape",
	KeyEnter:      "Enter",
	KeyTab:        "Tab",
	KeyBackspace:  "Backspace",
	KeyDelete:     "Delete",
	KeyInsert:     "Insert",
	KeyHome:       "Home",
	KeyEnd:        "End",
	KeyPageUp:     "PageUp",
	KeyPageDown:   "PageDown",
	KeySpace:      "Space",
	KeyUp:         "Up",
	KeyDown:       "Down",
	KeyLeft:       "Left",
	KeyRight:      "Right",
	KeyLeftShift:  "LShift",
	KeyRightShift: "RShift",
	KeyLeftCtrl:   "LCtrl",
	KeyRightCtrl:  "RCtrl",
	KeyLeftAlt:    "LAlt",
	KeyRightAlt:   "RAlt",
	KeyMinus:      "Minus",
	KeyEqual:      "Equal",
	KeyComma:      "Comma",
	KeyPeriod:     "Period",
	KeySlash:      "Slash",
	KeySemicolon:  "Semicolon",
}

func init() {
	for k := KeyA; k <= KeyZ; k++ {
		keyNames[k] = string(rune('A' + int(k-KeyA)))
	}
	for k := Key0; k <= Key9; k++ {
		keyNames[k] = string(rune('0' + int(k-Key0)))
	}
	for k := KeyF1; k <= KeyF12; k++ {
		keyNames[k] = fmt.Sprintf("F%d", int(k-KeyF1)+1)
	}
	for k := Key(0); k < keyCount; k++ {
		keyNameMap[strings.ToLower(keyNames[k])] = k
	}
}

// String returns the key name, e.g. "W", "Enter", "F5".
func (k Key) String() string {
	if k < keyCount {
		return keyNames[k]
	}
	return fmt.Sprintf("#%d", uint16(k))
}

// IsLetter returns true for A-Z.
func (k Key) IsLetter() bool {
	return k >= KeyA && k <= KeyZ
}

// IsDigit returns true for the digit row.
func (k Key) IsDigit() bool {
	return k >= Key0 && k <= Key9
}

// IsArrowKey returns true if this is an arrow key.
func (k Key) IsArrowKey() bool {
	return k >= KeyUp && k <= KeyRight
}

// IsFunctionKey returns true if this is a function key (F1-F12).
func (k Key) IsFunctionKey() bool {
	return k >= KeyF1 && k <= KeyF12
}

// KeyForRune returns the key that produces r on a US layout, ignoring
// case. Returns KeyUnknown for runes without a dedicated key.
func KeyForRune(r rune) Key {
	switch {
	case r >= 'a' && r <= 'z':
		return KeyA + Key(r-'a')
	case r >= 'A' && r <= 'Z':
		return KeyA + Key(r-'A')
	case r >= '0' && r <= '9':
		return Key0 + Key(r-'0')
	}
	switch r {
	case ' ':
		return KeySpace
	case '-':
		return KeyMinus
	case '=':
		return KeyEqual
	case ',':
		return KeyComma
	case '.':
		return KeyPeriod
	case '/':
		return KeySlash
	case ';':
		return KeySemicolon
	}
	return KeyUnknown
}

// keyNameMap maps lowercase key names and aliases to keys.
// Canonical names are added by init.
var keyNameMap = map[string]Key{
	"esc":       KeyEscape,
	"return":    KeyEnter,
	"cr":        KeyEnter,
	"bs":        KeyBackspace,
	"del":       KeyDelete,
	"ins":       KeyInsert,
	"pgup":      KeyPageUp,
	"pgdn":      KeyPageDown,
	"leftshift": KeyLeftShift,
	"shift":     KeyLeftShift,
	"leftctrl":  KeyLeftCtrl,
	"ctrl":      KeyLeftCtrl,
	"leftalt":   KeyLeftAlt,
	"alt":       KeyLeftAlt,
}

// KeyNames returns the canonical name of every key, in key order.
func KeyNames() []string {
	return append([]string(nil), keyNames[KeyUnknown+1:]...)
}

// KeyFromName returns the key for a name (case-insensitive).
// Returns KeyUnknown if the name is not recognized.
func KeyFromName(name string) Key {
	name = strings.ToLower(strings.TrimSpace(name))
	if k, ok := keyNameMap[name]; ok {
		return k
	}
	return KeyUnknown
}
