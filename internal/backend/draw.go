package backend

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// Line is a row of text drawn by DrawLines.
type Line struct {
	Text  string
	Style tcell.Style
}

// DrawLines clears the screen and draws lines from the top-left corner,
// clipping at the screen edge.
func (t *Terminal) DrawLines(lines []Line) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.Clear()
	w, h := t.screen.Size()
	for y, line := range lines {
		if y >= h {
			break
		}
		drawText(t.screen, 0, y, w, line.Text, line.Style)
	}
	t.screen.Show()
}

// drawText draws s at (x, y) and returns the column after the last cell.
// Wide runes occupy two cells.
func drawText(screen tcell.Screen, x, y, maxX int, s string, style tcell.Style) int {
	for _, r := range s {
		rw := runewidth.RuneWidth(r)
		if rw == 0 {
			continue
		}
		if x+rw > maxX {
			break
		}
		screen.SetContent(x, y, r, nil, style)
		x += rw
	}
	return x
}
