package backend

import (
	"slices"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/rebind/internal/input"
	"github.com/dshills/rebind/internal/input/button"
	"github.com/dshills/rebind/internal/input/mouse"
)

var (
	keyW     = button.Keyboard(button.KeyW)
	keyUp    = button.Keyboard(button.KeyUp)
	mouseL   = button.Mouse(button.MouseLeft)
	mouseR   = button.Mouse(button.MouseRight)
	testSize = mouse.Size{Width: 80, Height: 25}
)

func newSimTerminal(t *testing.T) (*Terminal, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	term := NewTerminalWithScreen(screen)
	if err := term.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	t.Cleanup(term.Shutdown)
	return term, screen
}

// poll reads one batch with timestamps stripped.
func poll(t *testing.T, b Backend) ([]input.Event, bool) {
	t.Helper()
	type result struct {
		evs []input.Event
		ok  bool
	}
	ch := make(chan result, 1)
	go func() {
		evs, ok := b.PollEvents()
		ch <- result{evs, ok}
	}()
	select {
	case r := <-ch:
		for i := range r.evs {
			r.evs[i].Timestamp = time.Time{}
		}
		return r.evs, r.ok
	case <-time.After(5 * time.Second):
		t.Fatal("timeout waiting for events")
		return nil, false
	}
}

func TestTerminalSize(t *testing.T) {
	term, screen := newSimTerminal(t)

	if got := term.Size(); got != testSize {
		t.Errorf("Size() = %v, want %v", got, testSize)
	}

	screen.SetSize(120, 40)
	if got := term.Size(); got != (mouse.Size{Width: 120, Height: 40}) {
		t.Errorf("Size() after SetSize = %v", got)
	}
}

func TestTerminalKeyEvents(t *testing.T) {
	tests := []struct {
		name string
		key  tcell.Key
		r    rune
		want []input.Event
	}{
		{
			name: "letter",
			key:  tcell.KeyRune,
			r:    'w',
			want: []input.Event{input.Press(keyW), input.Release(keyW), input.Text("w")},
		},
		{
			name: "uppercase letter",
			key:  tcell.KeyRune,
			r:    'W',
			want: []input.Event{input.Press(keyW), input.Release(keyW), input.Text("W")},
		},
		{
			name: "arrow",
			key:  tcell.KeyUp,
			want: []input.Event{input.Press(keyUp), input.Release(keyUp)},
		},
		{
			name: "unmapped rune",
			key:  tcell.KeyRune,
			r:    '!',
			want: []input.Event{input.Text("!")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			term, screen := newSimTerminal(t)
			screen.InjectKey(tt.key, tt.r, tcell.ModNone)

			got, ok := poll(t, term)
			if !ok {
				t.Fatal("PollEvents reported end of input")
			}
			if !slices.Equal(got, tt.want) {
				t.Errorf("events = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTerminalQuitKey(t *testing.T) {
	term, screen := newSimTerminal(t)
	term.SetQuitKey(tcell.KeyF10)

	screen.InjectKey(tcell.KeyF10, 0, tcell.ModNone)
	if _, ok := poll(t, term); ok {
		t.Fatal("quit key should end input")
	}
	if _, ok := term.PollEvents(); ok {
		t.Error("PollEvents after quit should report end of input")
	}
}

func TestTerminalDisableQuitKey(t *testing.T) {
	term, screen := newSimTerminal(t)
	term.SetQuitKey(tcell.KeyF10)
	term.DisableQuitKey()

	screen.InjectKey(tcell.KeyF10, 0, tcell.ModNone)
	got, ok := poll(t, term)
	if !ok {
		t.Fatal("disabled quit key should pass through")
	}
	f10 := button.Keyboard(button.KeyF10)
	want := []input.Event{input.Press(f10), input.Release(f10)}
	if !slices.Equal(got, want) {
		t.Errorf("events = %v, want %v", got, want)
	}
}

func TestTerminalMouseEvents(t *testing.T) {
	term, screen := newSimTerminal(t)

	steps := []struct {
		name    string
		x, y    int
		buttons tcell.ButtonMask
		want    []input.Event
	}{
		{
			name:    "first event reports position and press",
			x:       5,
			y:       7,
			buttons: tcell.Button1,
			want: []input.Event{
				input.Move(mouse.Cursor(5, 7)),
				input.Press(mouseL),
			},
		},
		{
			name:    "second button while held",
			x:       5,
			y:       7,
			buttons: tcell.Button1 | tcell.Button2,
			want:    []input.Event{input.Press(mouseR)},
		},
		{
			name:    "drag releases left",
			x:       6,
			y:       7,
			buttons: tcell.Button2,
			want: []input.Event{
				input.Move(mouse.Cursor(6, 7)),
				input.Release(mouseL),
			},
		},
		{
			name:    "release all",
			x:       6,
			y:       7,
			buttons: tcell.ButtonNone,
			want:    []input.Event{input.Release(mouseR)},
		},
		{
			name:    "wheel up",
			x:       6,
			y:       7,
			buttons: tcell.WheelUp,
			want:    []input.Event{input.Move(mouse.Scroll(0, 1))},
		},
		{
			name:    "wheel left",
			x:       6,
			y:       7,
			buttons: tcell.WheelLeft,
			want:    []input.Event{input.Move(mouse.Scroll(-1, 0))},
		},
	}

	for _, step := range steps {
		screen.InjectMouse(step.x, step.y, step.buttons, tcell.ModNone)
		got, ok := poll(t, term)
		if !ok {
			t.Fatalf("%s: PollEvents reported end of input", step.name)
		}
		if !slices.Equal(got, step.want) {
			t.Errorf("%s: events = %v, want %v", step.name, got, step.want)
		}
	}
}

func TestTerminalResizeAndFocus(t *testing.T) {
	term, screen := newSimTerminal(t)

	if err := screen.PostEvent(tcell.NewEventResize(100, 40)); err != nil {
		t.Fatalf("PostEvent failed: %v", err)
	}
	got, _ := poll(t, term)
	want := []input.Event{input.Resize(mouse.Size{Width: 100, Height: 40})}
	if !slices.Equal(got, want) {
		t.Errorf("resize events = %v, want %v", got, want)
	}

	if err := screen.PostEvent(tcell.NewEventFocus(false)); err != nil {
		t.Fatalf("PostEvent failed: %v", err)
	}
	got, _ = poll(t, term)
	want = []input.Event{input.Focus(false)}
	if !slices.Equal(got, want) {
		t.Errorf("focus events = %v, want %v", got, want)
	}
}

func TestTerminalInterrupt(t *testing.T) {
	term, _ := newSimTerminal(t)

	term.Interrupt()
	got, ok := poll(t, term)
	if !ok {
		t.Fatal("interrupt should not end input")
	}
	if len(got) != 0 {
		t.Errorf("interrupt produced events: %v", got)
	}
}

func TestTerminalTimestamps(t *testing.T) {
	term, screen := newSimTerminal(t)
	screen.InjectKey(tcell.KeyUp, 0, tcell.ModNone)

	evs, ok := term.PollEvents()
	if !ok || len(evs) != 2 {
		t.Fatalf("PollEvents = %v, %v", evs, ok)
	}
	if evs[0].Timestamp.IsZero() {
		t.Error("events should carry the tcell timestamp")
	}
	if !evs[0].Timestamp.Equal(evs[1].Timestamp) {
		t.Error("synthesized release should share the press timestamp")
	}
}

func TestConvertKey(t *testing.T) {
	tests := []struct {
		key  tcell.Key
		r    rune
		want button.Key
	}{
		{tcell.KeyRune, 'a', button.KeyA},
		{tcell.KeyRune, '7', button.Key7},
		{tcell.KeyRune, ' ', button.KeySpace},
		{tcell.KeyRune, '~', button.KeyUnknown},
		{tcell.KeyEscape, 0, button.KeyEscape},
		{tcell.KeyEnter, 0, button.KeyEnter},
		{tcell.KeyTab, 0, button.KeyTab},
		{tcell.KeyBacktab, 0, button.KeyTab},
		{tcell.KeyBackspace, 0, button.KeyBackspace},
		{tcell.KeyBackspace2, 0, button.KeyBackspace},
		{tcell.KeyDelete, 0, button.KeyDelete},
		{tcell.KeyPgUp, 0, button.KeyPageUp},
		{tcell.KeyPgDn, 0, button.KeyPageDown},
		{tcell.KeyLeft, 0, button.KeyLeft},
		{tcell.KeyF1, 0, button.KeyF1},
		{tcell.KeyF12, 0, button.KeyF12},
		{tcell.KeyF13, 0, button.KeyUnknown},
		{tcell.KeyCtrlA, 0, button.KeyA},
		{tcell.KeyCtrlZ, 0, button.KeyZ},
		{tcell.KeyCtrlSpace, 0, button.KeySpace},
	}

	for _, tt := range tests {
		if got := convertKey(tt.key, tt.r); got != tt.want {
			t.Errorf("convertKey(%v, %q) = %v, want %v", tt.key, tt.r, got, tt.want)
		}
	}
}

func TestDrawLines(t *testing.T) {
	term, screen := newSimTerminal(t)

	term.DrawLines([]Line{
		{Text: "hello"},
		{Text: "world"},
	})

	cells, w, _ := screen.GetContents()
	if got := string(cells[0].Runes); got != "h" {
		t.Errorf("cell (0,0) = %q, want %q", got, "h")
	}
	if got := string(cells[w+4].Runes); got != "d" {
		t.Errorf("cell (4,1) = %q, want %q", got, "d")
	}
}

func TestDrawLinesClips(t *testing.T) {
	term, screen := newSimTerminal(t)
	screen.SetSize(3, 1)

	term.DrawLines([]Line{{Text: "abcdef"}, {Text: "second"}})

	cells, w, h := screen.GetContents()
	if w != 3 || h != 1 {
		t.Fatalf("size = %dx%d", w, h)
	}
	if got := string(cells[2].Runes); got != "c" {
		t.Errorf("cell (2,0) = %q, want %q", got, "c")
	}
}

func TestNullBackend(t *testing.T) {
	b := NewNullBackend(testSize)
	if err := b.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	if got := b.Size(); got != testSize {
		t.Errorf("Size() = %v, want %v", got, testSize)
	}

	b.Feed(input.Press(keyW), input.Release(keyW))
	got, ok := poll(t, b)
	if !ok || len(got) != 2 {
		t.Fatalf("PollEvents = %v, %v", got, ok)
	}

	b.Interrupt()
	got, ok = poll(t, b)
	if !ok || len(got) != 0 {
		t.Errorf("interrupt PollEvents = %v, %v", got, ok)
	}

	b.Feed(input.Press(keyUp))
	b.Close()
	got, ok = poll(t, b)
	if !ok || len(got) != 1 {
		t.Errorf("queued batch should drain before close: %v, %v", got, ok)
	}
	if _, ok := poll(t, b); ok {
		t.Error("PollEvents after Close should report end of input")
	}

	// Feed after close must not block
	b.Feed(input.Press(keyW))
	b.Close()
}
