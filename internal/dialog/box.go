// Package dialog draws the modal overlays: message boxes, yes/no
// confirmations and the settings form.
package dialog

import (
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/bethropolis/codepad/internal/theme"
	"github.com/bethropolis/codepad/internal/utils"
)

// Overlay is a modal drawn over the editor.
type Overlay interface {
	Draw(screen tcell.Screen, th *theme.Theme)
}

// Cursorer is implemented by overlays with a text cursor.
type Cursorer interface {
	Cursor() (x, y int, ok bool)
}

// rect is a screen region.
type rect struct {
	X, Y, W, H int
}

// centered returns a w×h rect centred on the screen, shrunk to fit.
func centered(screen tcell.Screen, w, h int) rect {
	sw, sh := screen.Size()
	if w > sw-2 {
		w = sw - 2
	}
	if h > sh-2 {
		h = sh - 2
	}
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return rect{X: (sw - w) / 2, Y: (sh - h) / 2, W: w, H: h}
}

// drawFrame fills r and draws a single-line border with title on top.
func drawFrame(screen tcell.Screen, r rect, title string, th *theme.Theme) {
	if r.W < 2 || r.H < 2 {
		return
	}
	body := th.GetStyle(theme.StyleDialog)
	for y := r.Y; y < r.Y+r.H; y++ {
		utils.FillRow(screen, r.X, y, r.W, body)
	}
	right, bottom := r.X+r.W-1, r.Y+r.H-1
	for x := r.X + 1; x < right; x++ {
		screen.SetContent(x, r.Y, tcell.RuneHLine, nil, body)
		screen.SetContent(x, bottom, tcell.RuneHLine, nil, body)
	}
	for y := r.Y + 1; y < bottom; y++ {
		screen.SetContent(r.X, y, tcell.RuneVLine, nil, body)
		screen.SetContent(right, y, tcell.RuneVLine, nil, body)
	}
	screen.SetContent(r.X, r.Y, tcell.RuneULCorner, nil, body)
	screen.SetContent(right, r.Y, tcell.RuneURCorner, nil, body)
	screen.SetContent(r.X, bottom, tcell.RuneLLCorner, nil, body)
	screen.SetContent(right, bottom, tcell.RuneLRCorner, nil, body)

	if title != "" {
		label := " " + title + " "
		x := r.X + (r.W-utils.StringWidth(label))/2
		if x < r.X+1 {
			x = r.X + 1
		}
		utils.DrawString(screen, x, r.Y, r.W-2, label, th.GetStyle(theme.StyleDialogTitle))
	}
}

// wrap breaks text into lines of at most width columns on spaces. Words
// longer than width are left to be clipped.
func wrap(text string, width int) []string {
	var out []string
	for _, para := range strings.Split(text, "\n") {
		words := strings.Fields(para)
		if len(words) == 0 {
			out = append(out, "")
			continue
		}
		line := words[0]
		for _, w := range words[1:] {
			if utils.StringWidth(line)+1+utils.StringWidth(w) > width {
				out = append(out, line)
				line = w
				continue
			}
			line += " " + w
		}
		out = append(out, line)
	}
	return out
}

// centerText draws s centred in the row of r at y.
func centerText(screen tcell.Screen, r rect, y int, s string, style tcell.Style) {
	x := r.X + (r.W-utils.StringWidth(s))/2
	if x < r.X+1 {
		x = r.X + 1
	}
	utils.DrawString(screen, x, y, r.X+r.W-1-x, s, style)
}
