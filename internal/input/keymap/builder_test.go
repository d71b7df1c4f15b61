package keymap

import (
	"testing"

	"github.com/dshills/rebind/internal/input/button"
	"github.com/dshills/rebind/internal/input/mouse"
)

func TestNewBuilder(t *testing.T) {
	bd := NewDefaultBuilder[testAction]()
	if got := bd.MouseConfig(); got != mouse.DefaultConfig() {
		t.Errorf("MouseConfig() = %+v, want default", got)
	}
	if len(bd.Mappings()) != 0 {
		t.Errorf("Mappings() = %v, want empty", bd.Mappings())
	}
}

func TestBuilder_Setters(t *testing.T) {
	bd := NewBuilder[testAction](testSize).
		XMotionInverted(true).
		YMotionInverted(true).
		XScrollInverted(true).
		YScrollInverted(true).
		Sensitivity(0.25).
		ViewportSize(mouse.Size{Width: 80, Height: 24})

	want := mouse.Config{
		XMotionInverted: true,
		YMotionInverted: true,
		XScrollInverted: true,
		YScrollInverted: true,
		Sensitivity:     0.25,
		Viewport:        mouse.Size{Width: 80, Height: 24},
	}
	if got := bd.MouseConfig(); got != want {
		t.Errorf("MouseConfig() = %+v, want %+v", got, want)
	}
	if got := bd.BuildTranslator().MouseConfig(); got != want {
		t.Errorf("translator MouseConfig() = %+v, want %+v", got, want)
	}
	if got := bd.BuildRebind().MouseConfig(); got != want {
		t.Errorf("rebind MouseConfig() = %+v, want %+v", got, want)
	}
}

func TestBuilder_IgnoresNone(t *testing.T) {
	bd := NewDefaultBuilder[testAction]().
		WithMapping(action1, button.None).
		WithMappings(action2, keyS, button.None)

	if got := len(bd.Mappings()); got != 1 {
		t.Errorf("len(Mappings()) = %d, want 1", got)
	}
}

func TestBuilder_LaterSeedWins(t *testing.T) {
	tr := NewDefaultBuilder[testAction]().
		WithMapping(action3, keyW).
		WithMapping(action1, keyW).
		BuildTranslator()

	if a, _ := tr.Lookup(keyW); a != action1 {
		t.Errorf("Lookup(W) = %v, want action1", a)
	}
	if tr.Len() != 1 {
		t.Errorf("Len() = %d, want 1", tr.Len())
	}
}

func TestBuilder_MappingsIsCopy(t *testing.T) {
	bd := NewDefaultBuilder[testAction]().WithMapping(action1, keyW)
	m := bd.Mappings()
	m[0].Action = action5

	if got := bd.Mappings()[0].Action; got != action1 {
		t.Errorf("builder mapping changed to %v", got)
	}
}

func TestBuilder_BuildRebindMatchesTranslator(t *testing.T) {
	bd := NewDefaultBuilder[testAction]().
		WithMappings(action1, keyA, keyS, keyD, keyW).
		WithMapping(action2, keyA).
		YMotionInverted(true)

	got := bd.BuildRebind()
	want := bd.BuildTranslator().ToRebind()
	if !got.Equal(want) {
		t.Error("BuildRebind() differs from BuildTranslator().ToRebind()")
	}

	// A was reassigned to action2 before compression
	if bt, _ := got.Bindings(action1); bt != TupleOf(keyD, keyS, keyW) {
		t.Errorf("action1 = %v", bt)
	}
	if bt, _ := got.Bindings(action2); bt != TupleOf(keyA) {
		t.Errorf("action2 = %v", bt)
	}
}

func TestBuilder_StringActions(t *testing.T) {
	tr := NewDefaultBuilder[string]().
		WithMapping("jump", button.Keyboard(button.KeySpace)).
		WithMapping("fire", button.Mouse(button.MouseLeft)).
		BuildTranslator()

	if a, ok := tr.Lookup(button.Mouse(button.MouseLeft)); !ok || a != "fire" {
		t.Errorf("Lookup(mouse:left) = %q, %v", a, ok)
	}
}
