package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dshills/rebind/internal/config"
	"github.com/dshills/rebind/internal/input/keymap"
)

const gameProfile = `
name = "game"

[mouse]
invert_y_motion = true

[[bindings]]
action = "up"
buttons = ["key:Up", "key:W"]

[[bindings]]
action = "jump"
buttons = ["key:Space", "key:W"]

[[bindings]]
action = "fire"
buttons = ["mouse:left", "key:F", "key:G", "key:H"]
`

const badProfile = `
[[bindings]]
action = ""
buttons = ["key:nope"]
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	root := newRootCmd()
	root.SetOut(&buf)
	root.SetErr(&buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

func TestShowCommand(t *testing.T) {
	path := writeFile(t, "game.toml", gameProfile)

	out, err := execute(t, "show", "-p", path)
	if err != nil {
		t.Fatalf("show failed: %v\n%s", err, out)
	}
	for _, want := range []string{"Profile game", "ACTION", "jump", "key:Space", "key:W", "key:H", "invert y motion"} {
		if !strings.Contains(out, want) {
			t.Errorf("show output missing %q:\n%s", want, out)
		}
	}
	// keyboard sorts before mouse, so fire keeps F, G and H
	if strings.Contains(out, "mouse:left") {
		t.Errorf("overflow button mouse:left should not be shown:\n%s", out)
	}
}

func TestShowInvalidProfile(t *testing.T) {
	path := writeFile(t, "bad.toml", badProfile)

	if _, err := execute(t, "show", "-p", path); !errors.Is(err, config.ErrValidationFailed) {
		t.Errorf("show = %v, want ErrValidationFailed", err)
	}
}

func TestCheckCommand(t *testing.T) {
	path := writeFile(t, "game.toml", gameProfile)

	out, err := execute(t, "check", "-p", path)
	if err != nil {
		t.Fatalf("check failed: %v\n%s", err, out)
	}
	for _, want := range []string{
		`conflict: key:W listed under up, jump, bound to "jump"`,
		`overflow: mouse:left on "fire"`,
		"ok: 7 bindings across 3 actions",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("check output missing %q:\n%s", want, out)
		}
	}
}

func TestCheckInvalidProfile(t *testing.T) {
	path := writeFile(t, "bad.toml", badProfile)

	out, err := execute(t, "check", "-p", path)
	if !errors.Is(err, errCheckFailed) {
		t.Fatalf("check = %v, want errCheckFailed", err)
	}
	if !strings.Contains(out, "error: bindings[0]") {
		t.Errorf("check should list validation errors:\n%s", out)
	}
}

func TestMissingProfile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.toml")

	if _, err := execute(t, "check", "-p", path); !errors.Is(err, config.ErrFileNotFound) {
		t.Errorf("check = %v, want ErrFileNotFound", err)
	}
}

func TestCheckProfileReport(t *testing.T) {
	p := config.DefaultProfile()
	p.Bindings = []config.Binding{
		{Action: "a", Buttons: []string{"key:A"}},
		{Action: "b", Buttons: []string{"key:B", "key:A"}},
	}

	report := checkProfile(p)
	if !report.OK() {
		t.Fatalf("unexpected errors: %v", report.Errors)
	}
	if len(report.Duplicates) != 1 || report.Duplicates[0].Winner != "b" {
		t.Errorf("Duplicates = %v", report.Duplicates)
	}
	if len(report.Overflow) != 0 {
		t.Errorf("Overflow = %v", report.Overflow)
	}
	if report.Bindings != 2 || report.Actions != 1 {
		t.Errorf("Bindings = %d, Actions = %d", report.Bindings, report.Actions)
	}
}

func TestRenderRebindEmpty(t *testing.T) {
	out := renderRebind("empty", keymap.DefaultRebind[string]())
	if !strings.Contains(out, "no bindings") {
		t.Errorf("expected empty marker:\n%s", out)
	}
	if !strings.Contains(out, "800x600") {
		t.Errorf("expected viewport:\n%s", out)
	}
}
