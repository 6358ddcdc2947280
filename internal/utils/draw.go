package utils

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"
)

// DrawString draws text at (x, y) by grapheme cluster, stopping before a
// cluster that would cross maxWidth columns. Returns the columns used.
func DrawString(screen tcell.Screen, x, y, maxWidth int, text string, style tcell.Style) int {
	used := 0
	state := -1
	rest := text
	for len(rest) > 0 {
		var cluster string
		var boundaries int
		cluster, rest, boundaries, state = uniseg.StepString(rest, state)
		width := boundaries >> uniseg.ShiftWidth
		if width == 0 {
			width = 1
		}
		if used+width > maxWidth {
			break
		}
		runes := []rune(cluster)
		screen.SetContent(x+used, y, runes[0], runes[1:], style)
		for i := 1; i < width; i++ {
			screen.SetContent(x+used+i, y, ' ', nil, style)
		}
		used += width
	}
	return used
}

// FillRow paints width cells starting at (x, y) with spaces.
func FillRow(screen tcell.Screen, x, y, width int, style tcell.Style) {
	for i := 0; i < width; i++ {
		screen.SetContent(x+i, y, ' ', nil, style)
	}
}

// StringWidth is the display width of s.
func StringWidth(s string) int {
	return uniseg.StringWidth(s)
}

// TruncateLeft keeps the rightmost part of s that fits in width columns,
// prefixed with "…" when something was cut. Used for long paths.
func TruncateLeft(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if uniseg.StringWidth(s) <= width {
		return s
	}
	runes := []rune(s)
	for i := 1; i < len(runes); i++ {
		tail := string(runes[i:])
		if uniseg.StringWidth(tail)+1 <= width {
			return "…" + tail
		}
	}
	return "…"
}
