package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/dshills/rebind/internal/config"
	"github.com/dshills/rebind/internal/input/keymap"
	"github.com/dshills/rebind/internal/input/mouse"
)

// Color palette
var (
	colorRed    = lipgloss.AdaptiveColor{Light: "#cc0000", Dark: "#ff5f5f"}
	colorGreen  = lipgloss.AdaptiveColor{Light: "#008700", Dark: "#5fff87"}
	colorYellow = lipgloss.AdaptiveColor{Light: "#af8700", Dark: "#ffd75f"}
	colorGray   = lipgloss.AdaptiveColor{Light: "#555555", Dark: "#888888"}
	colorCyan   = lipgloss.AdaptiveColor{Light: "#008b8b", Dark: "#00ffff"}
)

// Style definitions
var (
	styleTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorCyan)

	styleSuccess = lipgloss.NewStyle().
			Foreground(colorGreen)

	styleError = lipgloss.NewStyle().
			Foreground(colorRed)

	styleWarning = lipgloss.NewStyle().
			Foreground(colorYellow)

	styleSubtle = lipgloss.NewStyle().
			Foreground(colorGray)

	styleCell = lipgloss.NewStyle().Padding(0, 1)
)

// renderRebind renders one row per action with its three slots.
func renderRebind(name string, r *keymap.Rebind[string]) string {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(styleSubtle).
		Headers("ACTION", "SLOT 1", "SLOT 2", "SLOT 3").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return styleCell.Bold(true)
			}
			return styleCell
		})

	for action, tuple := range r.All() {
		cells := []string{action}
		for i := range keymap.MaxButtons {
			b, _ := tuple.Slot(i)
			if b.IsNone() {
				cells = append(cells, styleSubtle.Render("-"))
				continue
			}
			cells = append(cells, b.String())
		}
		t.Row(cells...)
	}

	var sb strings.Builder
	sb.WriteString(styleTitle.Render("Profile " + name))
	sb.WriteString("\n")
	if r.Len() == 0 {
		sb.WriteString(styleSubtle.Render("no bindings"))
		sb.WriteString("\n")
	} else {
		sb.WriteString(t.String())
		sb.WriteString("\n")
	}
	sb.WriteString(renderMouse(r.MouseConfig()))
	return sb.String()
}

// renderMouse renders the mouse transform settings.
func renderMouse(m mouse.Config) string {
	var sb strings.Builder
	sb.WriteString(styleTitle.Render("Mouse"))
	sb.WriteString("\n")
	rows := []struct {
		label string
		value any
	}{
		{"viewport", m.Viewport},
		{"invert x motion", m.XMotionInverted},
		{"invert y motion", m.YMotionInverted},
		{"invert x scroll", m.XScrollInverted},
		{"invert y scroll", m.YScrollInverted},
		{"sensitivity", m.Sensitivity},
	}
	for _, row := range rows {
		fmt.Fprintf(&sb, "  %-16s %v\n", row.label, row.value)
	}
	return sb.String()
}

// checkReport is the outcome of checking a profile.
type checkReport struct {
	Errors     []string
	Duplicates []config.Duplicate
	Overflow   []keymap.Binding[string]
	Bindings   int
	Actions    int
}

// OK reports whether the profile can be used.
func (r checkReport) OK() bool {
	return len(r.Errors) == 0
}

// checkProfile validates p and collects everything that would change
// between the file and the live bindings.
func checkProfile(p *config.Profile) checkReport {
	var report checkReport

	if err := p.Validate(); err != nil {
		var errs config.ValidationErrors
		if errors.As(err, &errs) {
			for _, e := range errs {
				report.Errors = append(report.Errors, e.Error())
			}
		} else {
			report.Errors = append(report.Errors, err.Error())
		}
		return report
	}

	bd, err := p.Builder()
	if err != nil {
		report.Errors = append(report.Errors, err.Error())
		return report
	}
	t := bd.BuildTranslator()

	report.Duplicates = p.Duplicates()
	report.Overflow = t.Overflow()
	report.Bindings = t.Len()
	report.Actions = t.ToRebind().Len()
	return report
}

// renderCheck renders a check report.
func renderCheck(name string, report checkReport) string {
	var sb strings.Builder
	sb.WriteString(styleTitle.Render("Checking " + name))
	sb.WriteString("\n")

	for _, e := range report.Errors {
		sb.WriteString(styleError.Render("error: " + e))
		sb.WriteString("\n")
	}
	if !report.OK() {
		return sb.String()
	}

	for _, d := range report.Duplicates {
		sb.WriteString(styleWarning.Render(fmt.Sprintf(
			"conflict: %s listed under %s, bound to %q",
			d.Button, strings.Join(d.Actions, ", "), d.Winner)))
		sb.WriteString("\n")
	}
	for _, b := range report.Overflow {
		sb.WriteString(styleWarning.Render(fmt.Sprintf(
			"overflow: %s on %q is past the %d rebindable slots",
			b.Button, b.Action, keymap.MaxButtons)))
		sb.WriteString("\n")
	}

	sb.WriteString(styleSuccess.Render(fmt.Sprintf(
		"ok: %d bindings across %d actions", report.Bindings, report.Actions)))
	sb.WriteString("\n")
	return sb.String()
}
