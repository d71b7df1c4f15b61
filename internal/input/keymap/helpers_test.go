package keymap

import (
	"github.com/dshills/rebind/internal/input/button"
	"github.com/dshills/rebind/internal/input/mouse"
)

type testAction int

const (
	action1 testAction = iota + 1
	action2
	action3
	action4
	action5
)

var (
	keyUp    = button.Keyboard(button.KeyUp)
	keyDown  = button.Keyboard(button.KeyDown)
	keyLeft  = button.Keyboard(button.KeyLeft)
	keyRight = button.Keyboard(button.KeyRight)
	keyW     = button.Keyboard(button.KeyW)
	keyA     = button.Keyboard(button.KeyA)
	keyS     = button.Keyboard(button.KeyS)
	keyD     = button.Keyboard(button.KeyD)
	keyQ     = button.Keyboard(button.KeyQ)
	keyE     = button.Keyboard(button.KeyE)
	keyZ     = button.Keyboard(button.KeyZ)
	key0     = button.Keyboard(button.Key0)
)

var testSize = mouse.Size{Width: 800, Height: 600}

func prepopulatedBuilder(size mouse.Size) *Builder[testAction] {
	return NewBuilder[testAction](size).
		WithMapping(action1, keyUp).
		WithMapping(action1, keyW).
		WithMapping(action2, keyDown).
		WithMapping(action2, keyS).
		WithMapping(action3, keyLeft).
		WithMapping(action3, keyA).
		WithMapping(action4, keyRight).
		WithMapping(action4, keyD)
}
