package keymap

import (
	"slices"
	"testing"

	"github.com/dshills/rebind/internal/input/button"
)

func TestNewButtonTuple(t *testing.T) {
	bt := NewButtonTuple()
	if bt.NumButtonsSet() != 0 {
		t.Errorf("NumButtonsSet() = %d, want 0", bt.NumButtonsSet())
	}
	if !bt.IsEmpty() {
		t.Error("new tuple should be empty")
	}
	if bt.MaxButtons() != 3 {
		t.Errorf("MaxButtons() = %d, want 3", bt.MaxButtons())
	}
	if bt != (ButtonTuple{}) {
		t.Error("NewButtonTuple should equal the zero value")
	}
}

func TestButtonTuple_Insert(t *testing.T) {
	var bt ButtonTuple

	for i, b := range []button.Button{keyZ, keyQ, key0} {
		if !bt.Insert(b) {
			t.Fatalf("Insert(%v) = false, want true", b)
		}
		if got := bt.NumButtonsSet(); got != i+1 {
			t.Errorf("NumButtonsSet() = %d, want %d", got, i+1)
		}
		if got, ok := bt.Slot(i); !ok || got != b {
			t.Errorf("Slot(%d) = %v, %v; want %v, true", i, got, ok, b)
		}
	}

	full := bt
	if bt.Insert(keyE) {
		t.Error("Insert into full tuple should return false")
	}
	if bt != full {
		t.Errorf("full tuple changed: %v, want %v", bt, full)
	}
	if bt.Contains(keyE) {
		t.Error("rejected button should not be contained")
	}
}

func TestButtonTuple_InsertFillsFirstEmptySlot(t *testing.T) {
	bt := TupleOf(keyW, button.None, keyS)

	if !bt.Insert(keyQ) {
		t.Fatal("Insert() = false, want true")
	}
	if want := TupleOf(keyW, keyQ, keyS); bt != want {
		t.Errorf("tuple = %v, want %v", bt, want)
	}
}

func TestButtonTuple_InsertNone(t *testing.T) {
	var bt ButtonTuple
	if bt.Insert(button.None) {
		t.Error("Insert(None) should return false")
	}
	if !bt.IsEmpty() {
		t.Error("Insert(None) should not change the tuple")
	}
}

func TestButtonTuple_InsertDuplicate(t *testing.T) {
	var bt ButtonTuple
	bt.Insert(keyW)
	if !bt.Insert(keyW) {
		t.Error("duplicates are not rejected")
	}
	if bt.NumButtonsSet() != 2 {
		t.Errorf("NumButtonsSet() = %d, want 2", bt.NumButtonsSet())
	}
}

func TestButtonTuple_Contains(t *testing.T) {
	bt := TupleOf(button.None, keyW, button.None)

	if !bt.Contains(keyW) {
		t.Error("Contains(W) = false on sparse tuple")
	}
	if bt.Contains(keyS) {
		t.Error("Contains(S) = true, want false")
	}
	if bt.Contains(button.None) {
		t.Error("Contains(None) should be false")
	}
}

func TestButtonTuple_NumButtonsSetSparse(t *testing.T) {
	tests := []struct {
		tuple ButtonTuple
		want  int
	}{
		{TupleOf(), 0},
		{TupleOf(keyZ), 1},
		{TupleOf(button.None, button.None, keyZ), 1},
		{TupleOf(keyZ, button.None, keyQ), 2},
		{TupleOf(keyZ, keyQ, key0), 3},
		{TupleOf(keyZ, keyQ, key0, keyE), 3},
	}

	for _, tt := range tests {
		if got := tt.tuple.NumButtonsSet(); got != tt.want {
			t.Errorf("%v.NumButtonsSet() = %d, want %d", tt.tuple, got, tt.want)
		}
	}
}

func TestButtonTuple_DirectSlots(t *testing.T) {
	var bt ButtonTuple

	if !bt.Set(0, keyZ) {
		t.Fatal("Set(0) = false")
	}
	if bt.NumButtonsSet() != 1 {
		t.Errorf("NumButtonsSet() = %d, want 1", bt.NumButtonsSet())
	}
	bt.Set(1, keyQ)
	bt.Set(2, key0)
	if bt.NumButtonsSet() != 3 {
		t.Errorf("NumButtonsSet() = %d, want 3", bt.NumButtonsSet())
	}

	bt.Clear(1)
	if _, ok := bt.Slot(1); ok {
		t.Error("Slot(1) should be empty after Clear")
	}
	if bt.NumButtonsSet() != 2 {
		t.Errorf("NumButtonsSet() = %d, want 2", bt.NumButtonsSet())
	}

	if bt.Set(3, keyE) || bt.Set(-1, keyE) {
		t.Error("Set out of range should return false")
	}
	if _, ok := bt.Slot(5); ok {
		t.Error("Slot out of range should return false")
	}
}

func TestButtonTuple_Remove(t *testing.T) {
	bt := TupleOf(keyW, keyS, keyW)
	if n := bt.Remove(keyW); n != 2 {
		t.Errorf("Remove() = %d, want 2", n)
	}
	if want := TupleOf(button.None, keyS, button.None); bt != want {
		t.Errorf("tuple = %v, want %v", bt, want)
	}
	if n := bt.Remove(button.None); n != 0 {
		t.Errorf("Remove(None) = %d, want 0", n)
	}
}

func TestButtonTuple_Buttons(t *testing.T) {
	bt := TupleOf(button.None, keyS, keyW)
	if got, want := bt.Buttons(), []button.Button{keyS, keyW}; !slices.Equal(got, want) {
		t.Errorf("Buttons() = %v, want %v", got, want)
	}
}

func TestButtonTuple_IterLen(t *testing.T) {
	bt := TupleOf(button.Keyboard(button.KeyB))
	it := bt.Iter()

	for want := 3; want > 0; want-- {
		if it.Len() != want {
			t.Errorf("Len() = %d, want %d", it.Len(), want)
		}
		if _, ok := it.Next(); !ok {
			t.Fatalf("Next() exhausted early with Len %d", want)
		}
	}
	if it.Len() != 0 {
		t.Errorf("Len() = %d, want 0", it.Len())
	}
	if _, ok := it.Next(); ok {
		t.Error("Next() after exhaustion should return false")
	}
	if it.Len() != 0 {
		t.Errorf("Len() after exhaustion = %d, want 0", it.Len())
	}
}

func TestButtonTuple_IterRestartable(t *testing.T) {
	bt := TupleOf(keyW, button.None, keyS)
	want := []button.Button{keyW, button.None, keyS}

	collect := func() []button.Button {
		var got []button.Button
		it := bt.Iter()
		for b, ok := it.Next(); ok; b, ok = it.Next() {
			got = append(got, b)
		}
		return got
	}

	first := collect()
	second := collect()
	if !slices.Equal(first, want) {
		t.Errorf("first pass = %v, want %v", first, want)
	}
	if !slices.Equal(second, want) {
		t.Errorf("second pass = %v, want %v", second, want)
	}
}

func TestButtonTuple_All(t *testing.T) {
	bt := TupleOf(keyW, button.None, keyS)

	var indices []int
	var buttons []button.Button
	for i, b := range bt.All() {
		indices = append(indices, i)
		buttons = append(buttons, b)
	}

	if !slices.Equal(indices, []int{0, 1, 2}) {
		t.Errorf("indices = %v, want [0 1 2]", indices)
	}
	if !slices.Equal(buttons, []button.Button{keyW, button.None, keyS}) {
		t.Errorf("buttons = %v", buttons)
	}

	// early break
	count := 0
	for range bt.All() {
		count++
		break
	}
	if count != 1 {
		t.Errorf("count = %d, want 1", count)
	}
}

func TestButtonTuple_String(t *testing.T) {
	bt := TupleOf(keyW, button.None, button.Mouse(button.MouseLeft))
	if got, want := bt.String(), "(key:W, none, mouse:left)"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
