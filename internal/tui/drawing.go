package tui

import (
	"fmt"
	"strconv"

	"github.com/gdamore/tcell/v2"

	"github.com/bethropolis/codepad/internal/core"
	"github.com/bethropolis/codepad/internal/highlighter"
	"github.com/bethropolis/codepad/internal/theme"
	"github.com/bethropolis/codepad/internal/types"
	"github.com/bethropolis/codepad/internal/utils"
)

// StatusBarHeight is the number of rows below the text area.
const StatusBarHeight = 1

// lineNumberPadding separates the gutter from the text.
const lineNumberPadding = 1

// Layout splits the screen into sidebar, gutter and text area.
type Layout struct {
	Width, Height int
	SidebarWidth  int
	GutterWidth   int
	TextX         int // first text column
	TextWidth     int
	TextHeight    int
}

// ComputeLayout places the regions for a screen of width×height. The
// gutter is sized for lineCount and dropped when lineNumbers is off or
// the text area would vanish.
func ComputeLayout(width, height, sidebarWidth, lineCount int, lineNumbers bool) Layout {
	l := Layout{Width: width, Height: height, SidebarWidth: sidebarWidth}
	if l.SidebarWidth > width {
		l.SidebarWidth = 0
	}
	if lineNumbers {
		if lineCount < 1 {
			lineCount = 1
		}
		l.GutterWidth = len(strconv.Itoa(lineCount)) + lineNumberPadding
		if l.SidebarWidth+l.GutterWidth >= width {
			l.GutterWidth = 0
		}
	}
	l.TextX = l.SidebarWidth + l.GutterWidth
	l.TextWidth = width - l.TextX
	l.TextHeight = height - StatusBarHeight
	if l.TextWidth < 0 {
		l.TextWidth = 0
	}
	if l.TextHeight < 0 {
		l.TextHeight = 0
	}
	return l
}

// DrawBuffer draws the visible part of the document with highlighting
// and selection.
func DrawBuffer(screen tcell.Screen, editor *core.Editor, th *theme.Theme, l Layout) {
	if l.TextHeight <= 0 || l.TextWidth <= 0 {
		return
	}
	defaultStyle := th.GetStyle(theme.StyleDefault)
	lineNumberStyle := th.GetStyle(theme.StyleLineNumber)
	selectionStyle := th.GetStyle(theme.StyleSelection)

	viewY, viewX := editor.GetViewport()
	cursor := editor.GetCursor()
	buf := editor.GetBuffer()
	lineCount := buf.LineCount()
	tabWidth := editor.TabWidth()
	digits := l.GutterWidth - lineNumberPadding

	for screenY := 0; screenY < l.TextHeight; screenY++ {
		lineIdx := viewY + screenY
		utils.FillRow(screen, l.SidebarWidth, screenY, l.Width-l.SidebarWidth, defaultStyle)

		if l.GutterWidth > 0 && lineIdx < lineCount {
			style := lineNumberStyle
			if lineIdx == cursor.Line {
				style = style.Bold(true)
			}
			num := fmt.Sprintf("%*d", digits, lineIdx+1)
			utils.DrawString(screen, l.SidebarWidth, screenY, digits, num, style)
		}
		if lineIdx >= lineCount {
			continue
		}

		line, err := buf.Line(lineIdx)
		if err != nil {
			continue
		}
		styles := highlighter.Paint(len([]rune(string(line))), editor.LineSpans(lineIdx))

		utils.EachCell(line, tabWidth, func(c utils.Cell) bool {
			if c.Col >= viewX+l.TextWidth {
				return false
			}
			if c.Col+c.Width <= viewX {
				return true
			}
			style := defaultStyle
			if c.RuneIndex < len(styles) && !styles[c.RuneIndex].IsZero() {
				style = th.Syntax(styles[c.RuneIndex])
			}
			if editor.InSelection(types.Position{Line: lineIdx, Col: c.RuneIndex}) {
				style = selectionStyle
			}
			drawCell(screen, c, l.TextX+c.Col-viewX, screenY, l.TextX, l.Width, style)
			return true
		})
	}
}

// drawCell puts one grapheme cluster (or expanded tab) at x, clipping the
// parts outside [minX, maxX).
func drawCell(screen tcell.Screen, c utils.Cell, x, y, minX, maxX int, style tcell.Style) {
	if c.Tab || x < minX || x+c.Width > maxX {
		for i := 0; i < c.Width; i++ {
			if x+i >= minX && x+i < maxX {
				screen.SetContent(x+i, y, ' ', nil, style)
			}
		}
		return
	}
	r := c.Runes[0]
	if r < ' ' || r == 0x7f {
		r = '?'
	}
	screen.SetContent(x, y, r, c.Runes[1:], style)
	for i := 1; i < c.Width; i++ {
		screen.SetContent(x+i, y, ' ', nil, style)
	}
}

// CursorPosition returns the screen cell of the editor cursor, or false if
// it is outside the text area.
func CursorPosition(editor *core.Editor, l Layout) (int, int, bool) {
	viewY, viewX := editor.GetViewport()
	screenX := l.TextX + editor.CursorVisualColumn() - viewX
	screenY := editor.GetCursor().Line - viewY
	if screenX < l.TextX || screenX >= l.Width || screenY < 0 || screenY >= l.TextHeight {
		return 0, 0, false
	}
	return screenX, screenY, true
}

// DrawCursor positions or hides the terminal cursor.
func DrawCursor(screen tcell.Screen, editor *core.Editor, l Layout) {
	if x, y, ok := CursorPosition(editor, l); ok {
		screen.ShowCursor(x, y)
		return
	}
	screen.HideCursor()
}
