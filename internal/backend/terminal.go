package backend

import (
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/rebind/internal/input"
	"github.com/dshills/rebind/internal/input/button"
	"github.com/dshills/rebind/internal/input/mouse"
)

// Terminal implements Backend using tcell.
//
// Terminals report key presses only, so every key yields a press
// immediately followed by a release. Mouse presses and releases are
// derived from the change in held buttons between mouse events.
type Terminal struct {
	screen   tcell.Screen
	quitKey  tcell.Key
	quitable bool
	mu       sync.Mutex

	held   tcell.ButtonMask
	lastX  int
	lastY  int
	moved  bool
	closed bool
}

// NewTerminal creates a terminal backend on the controlling tty.
func NewTerminal() (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return NewTerminalWithScreen(screen), nil
}

// NewTerminalWithScreen wraps an existing screen, such as
// tcell.NewSimulationScreen.
func NewTerminalWithScreen(screen tcell.Screen) *Terminal {
	return &Terminal{screen: screen, quitKey: tcell.KeyCtrlC, quitable: true}
}

// Screen returns the underlying screen for drawing.
func (t *Terminal) Screen() tcell.Screen {
	return t.screen
}

// SetQuitKey sets the key that ends input. Defaults to Ctrl-C.
func (t *Terminal) SetQuitKey(k tcell.Key) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.quitKey = k
	t.quitable = true
}

// DisableQuitKey passes every key through, leaving shutdown to the host.
func (t *Terminal) DisableQuitKey() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.quitable = false
}

func (t *Terminal) Init() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if err := t.screen.Init(); err != nil {
		return err
	}
	t.screen.EnableMouse()
	t.screen.EnableFocus()
	return nil
}

func (t *Terminal) Shutdown() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.Fini()
}

func (t *Terminal) Size() mouse.Size {
	t.mu.Lock()
	defer t.mu.Unlock()

	w, h := t.screen.Size()
	return mouse.Size{Width: uint32(max(w, 0)), Height: uint32(max(h, 0))}
}

func (t *Terminal) PollEvents() ([]input.Event, bool) {
	t.mu.Lock()
	closed := t.closed
	t.mu.Unlock()
	if closed {
		return nil, false
	}

	ev := t.screen.PollEvent()
	if ev == nil {
		// screen finalized
		return nil, false
	}
	return t.convertEvent(ev)
}

func (t *Terminal) Interrupt() {
	_ = t.screen.PostEvent(tcell.NewEventInterrupt(nil)) // best-effort; queue may be full
}

// convertEvent converts a tcell event into input events.
func (t *Terminal) convertEvent(ev tcell.Event) ([]input.Event, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	when := ev.When()
	switch e := ev.(type) {
	case *tcell.EventKey:
		if t.quitable && e.Key() == t.quitKey {
			t.closed = true
			return nil, false
		}
		return convertKeyEvent(e), true

	case *tcell.EventMouse:
		return t.convertMouse(e), true

	case *tcell.EventResize:
		w, h := e.Size()
		return []input.Event{
			input.Resize(mouse.Size{Width: uint32(max(w, 0)), Height: uint32(max(h, 0))}).At(when),
		}, true

	case *tcell.EventFocus:
		return []input.Event{input.Focus(e.Focused).At(when)}, true

	default:
		// interrupts, paste markers, errors
		return nil, true
	}
}

// convertKeyEvent returns a press and release for the key, plus a text
// event for printable runes.
func convertKeyEvent(e *tcell.EventKey) []input.Event {
	when := e.When()
	var out []input.Event

	if k := convertKey(e.Key(), e.Rune()); k != button.KeyUnknown {
		b := button.Keyboard(k)
		out = append(out, input.Press(b).At(when), input.Release(b).At(when))
	}
	if e.Key() == tcell.KeyRune && e.Modifiers()&(tcell.ModCtrl|tcell.ModAlt) == 0 {
		out = append(out, input.Text(string(e.Rune())).At(when))
	}
	return out
}

// convertKey converts a tcell key to a button key.
func convertKey(k tcell.Key, r rune) button.Key {
	switch k {
	case tcell.KeyRune:
		return button.KeyForRune(r)
	case tcell.KeyEscape:
		return button.KeyEscape
	case tcell.KeyEnter:
		return button.KeyEnter
	case tcell.KeyTab, tcell.KeyBacktab:
		return button.KeyTab
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return button.KeyBackspace
	case tcell.KeyDelete:
		return button.KeyDelete
	case tcell.KeyInsert:
		return button.KeyInsert
	case tcell.KeyHome:
		return button.KeyHome
	case tcell.KeyEnd:
		return button.KeyEnd
	case tcell.KeyPgUp:
		return button.KeyPageUp
	case tcell.KeyPgDn:
		return button.KeyPageDown
	case tcell.KeyUp:
		return button.KeyUp
	case tcell.KeyDown:
		return button.KeyDown
	case tcell.KeyLeft:
		return button.KeyLeft
	case tcell.KeyRight:
		return button.KeyRight
	case tcell.KeyCtrlSpace:
		return button.KeySpace
	}

	switch {
	case k >= tcell.KeyF1 && k <= tcell.KeyF12:
		return button.KeyF1 + button.Key(k-tcell.KeyF1)
	case k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ:
		// Ctrl+letter binds to the letter key
		return button.KeyA + button.Key(k-tcell.KeyCtrlA)
	}
	return button.KeyUnknown
}

// mouseButtons maps tcell button bits to mouse buttons.
var mouseButtons = []struct {
	mask tcell.ButtonMask
	btn  button.MouseButton
}{
	{tcell.Button1, button.MouseLeft},
	{tcell.Button2, button.MouseRight},
	{tcell.Button3, button.MouseMiddle},
	{tcell.Button4, button.MouseBack},
	{tcell.Button5, button.MouseForward},
	{tcell.Button6, button.MouseButton(6)},
	{tcell.Button7, button.MouseButton(7)},
	{tcell.Button8, button.MouseButton(8)},
}

// convertMouse emits cursor motion when the position changes, presses
// and releases for changed buttons, and one scroll per wheel bit.
// Caller must hold t.mu.
func (t *Terminal) convertMouse(e *tcell.EventMouse) []input.Event {
	when := e.When()
	x, y := e.Position()
	mask := e.Buttons()
	var out []input.Event

	if !t.moved || x != t.lastX || y != t.lastY {
		out = append(out, input.Move(mouse.Cursor(float64(x), float64(y))).At(when))
		t.lastX, t.lastY, t.moved = x, y, true
	}

	for _, mb := range mouseButtons {
		was := t.held&mb.mask != 0
		is := mask&mb.mask != 0
		switch {
		case is && !was:
			out = append(out, input.Press(button.Mouse(mb.btn)).At(when))
		case was && !is:
			out = append(out, input.Release(button.Mouse(mb.btn)).At(when))
		}
	}
	t.held = mask & (tcell.Button1 | tcell.Button2 | tcell.Button3 | tcell.Button4 |
		tcell.Button5 | tcell.Button6 | tcell.Button7 | tcell.Button8)

	var dx, dy float64
	if mask&tcell.WheelUp != 0 {
		dy++
	}
	if mask&tcell.WheelDown != 0 {
		dy--
	}
	if mask&tcell.WheelLeft != 0 {
		dx--
	}
	if mask&tcell.WheelRight != 0 {
		dx++
	}
	if dx != 0 || dy != 0 {
		out = append(out, input.Move(mouse.Scroll(dx, dy)).At(when))
	}
	return out
}
