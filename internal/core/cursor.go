package core

import (
	"unicode/utf8"

	"github.com/bethropolis/codepad/internal/event"
	"github.com/bethropolis/codepad/internal/types"
	"github.com/bethropolis/codepad/internal/utils"
)

func (e *Editor) lineRuneCount(idx int) int {
	line, err := e.buffer.Line(idx)
	if err != nil {
		return 0
	}
	return utf8.RuneCount(line)
}

// MoveCursor moves the cursor by the given deltas. Moving right past the
// end of a line wraps to the next line, moving left from column 0 wraps to
// the end of the previous one.
func (e *Editor) MoveCursor(deltaLine, deltaCol int) {
	before := e.Cursor
	lineCount := e.buffer.LineCount()

	if deltaLine == 0 && deltaCol > 0 && e.Cursor.Col >= e.lineRuneCount(e.Cursor.Line) && e.Cursor.Line < lineCount-1 {
		e.Cursor = types.Position{Line: e.Cursor.Line + 1}
		e.afterMove(before)
		return
	}
	if deltaLine == 0 && deltaCol < 0 && e.Cursor.Col <= 0 && e.Cursor.Line > 0 {
		line := e.Cursor.Line - 1
		e.Cursor = types.Position{Line: line, Col: e.lineRuneCount(line)}
		e.afterMove(before)
		return
	}

	target := types.Position{Line: e.Cursor.Line + deltaLine, Col: e.Cursor.Col + deltaCol}
	if target.Line >= lineCount {
		target.Line = lineCount - 1
	}
	if target.Line < 0 {
		target.Line = 0
	}
	if target.Col < 0 {
		target.Col = 0
	}
	if maxCol := e.lineRuneCount(target.Line); target.Col > maxCol {
		target.Col = maxCol
	}
	e.Cursor = target
	e.afterMove(before)
}

func (e *Editor) afterMove(before types.Position) {
	if e.selecting {
		e.selectionEnd = e.Cursor
	}
	e.ScrollToCursor()
	if before != e.Cursor {
		e.dispatch(event.TypeCursorMoved, event.CursorMovedData{NewPosition: e.Cursor})
	}
}

// ScrollToCursor adjusts the viewport so the cursor stays visible with
// ScrollOff lines of context.
func (e *Editor) ScrollToCursor() {
	if e.viewHeight <= 0 || e.viewWidth <= 0 {
		return
	}

	scrollOff := e.ScrollOff
	if scrollOff*2 >= e.viewHeight {
		scrollOff = (e.viewHeight - 1) / 2
	}

	if e.Cursor.Line < e.ViewportY+scrollOff {
		e.ViewportY = e.Cursor.Line - scrollOff
	} else if e.Cursor.Line >= e.ViewportY+e.viewHeight-scrollOff {
		e.ViewportY = e.Cursor.Line - e.viewHeight + 1 + scrollOff
	}
	maxY := e.buffer.LineCount() - 1
	if e.ViewportY > maxY {
		e.ViewportY = maxY
	}
	if e.ViewportY < 0 {
		e.ViewportY = 0
	}

	line, _ := e.buffer.Line(e.Cursor.Line)
	col := utils.VisualColumn(line, e.Cursor.Col, e.tabWidth)
	if col < e.ViewportX {
		e.ViewportX = col
	} else if col >= e.ViewportX+e.viewWidth {
		e.ViewportX = col - e.viewWidth + 1
	}
	if e.ViewportX < 0 {
		e.ViewportX = 0
	}
}

// CursorVisualColumn returns the screen column of the cursor within its line.
func (e *Editor) CursorVisualColumn() int {
	line, _ := e.buffer.Line(e.Cursor.Line)
	return utils.VisualColumn(line, e.Cursor.Col, e.tabWidth)
}

// PageMove moves the cursor and viewport by whole pages.
func (e *Editor) PageMove(deltaPages int) {
	if e.viewHeight <= 0 {
		return
	}
	before := e.Cursor
	lineCount := e.buffer.LineCount()

	e.ViewportY += e.viewHeight * deltaPages
	maxY := lineCount - e.viewHeight
	if maxY < 0 {
		maxY = 0
	}
	if e.ViewportY > maxY {
		e.ViewportY = maxY
	}
	if e.ViewportY < 0 {
		e.ViewportY = 0
	}

	e.Cursor.Line += e.viewHeight * deltaPages
	if e.Cursor.Line >= lineCount {
		e.Cursor.Line = lineCount - 1
	}
	if e.Cursor.Line < 0 {
		e.Cursor.Line = 0
	}
	if maxCol := e.lineRuneCount(e.Cursor.Line); e.Cursor.Col > maxCol {
		e.Cursor.Col = maxCol
	}
	e.afterMove(before)
}

// Home moves the cursor to column 0.
func (e *Editor) Home() {
	before := e.Cursor
	e.Cursor.Col = 0
	e.afterMove(before)
}

// End moves the cursor past the last rune of the line.
func (e *Editor) End() {
	before := e.Cursor
	e.Cursor.Col = e.lineRuneCount(e.Cursor.Line)
	e.afterMove(before)
}

// DocumentStart moves the cursor to the first line.
func (e *Editor) DocumentStart() {
	before := e.Cursor
	e.Cursor = types.Position{}
	e.afterMove(before)
}

// DocumentEnd moves the cursor to the end of the last line.
func (e *Editor) DocumentEnd() {
	before := e.Cursor
	last := e.buffer.LineCount() - 1
	e.Cursor = types.Position{Line: last, Col: e.lineRuneCount(last)}
	e.afterMove(before)
}
