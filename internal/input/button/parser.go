package button

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Parse errors
var (
	ErrEmptySpec   = errors.New("empty button specification")
	ErrInvalidSpec = errors.New("invalid button specification")
)

// Parse parses a button specification.
//
// Supported formats:
//   - Keyboard: "key:W", "key:Enter", "key:F5", or a bare key name "W"
//   - Mouse: "mouse:left", "mouse:right", "mouse:middle", "mouse:back"
//   - Controller: "pad:0" .. "pad:65535"
//
// Device prefixes and names are case-insensitive.
func Parse(spec string) (Button, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return None, ErrEmptySpec
	}

	device, name, found := strings.Cut(spec, ":")
	if !found {
		return parseKey(spec)
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return None, fmt.Errorf("%w: missing name in %q", ErrInvalidSpec, spec)
	}

	switch strings.ToLower(strings.TrimSpace(device)) {
	case "key", "kb", "keyboard":
		return parseKey(name)
	case "mouse":
		return parseMouse(name)
	case "pad", "controller", "joy":
		return parseController(name)
	default:
		return None, fmt.Errorf("%w: unknown device %q", ErrInvalidSpec, device)
	}
}

// MustParse is like Parse but panics on error.
// Intended for tests and static tables.
func MustParse(spec string) Button {
	b, err := Parse(spec)
	if err != nil {
		panic(err)
	}
	return b
}

func parseKey(name string) (Button, error) {
	k := KeyFromName(name)
	if k == KeyUnknown {
		return None, fmt.Errorf("%w: unknown key %q", ErrInvalidSpec, name)
	}
	return Keyboard(k), nil
}

func parseMouse(name string) (Button, error) {
	lower := strings.ToLower(name)
	if m, ok := mouseNameMap[lower]; ok {
		return Mouse(m), nil
	}
	// Numbered buttons beyond the named ones, e.g. "mouse:#8" or "mouse:8"
	n, err := strconv.ParseUint(strings.TrimPrefix(lower, "#"), 10, 16)
	if err != nil || n == 0 {
		return None, fmt.Errorf("%w: unknown mouse button %q", ErrInvalidSpec, name)
	}
	return Mouse(MouseButton(n)), nil
}

func parseController(name string) (Button, error) {
	n, err := strconv.ParseUint(name, 10, 16)
	if err != nil {
		return None, fmt.Errorf("%w: controller button %q: %v", ErrInvalidSpec, name, err)
	}
	return Controller(uint16(n)), nil
}
