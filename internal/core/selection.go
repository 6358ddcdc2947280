package core

import (
	"github.com/bethropolis/codepad/internal/types"
)

// HasSelection returns true if a non-empty selection is active.
func (e *Editor) HasSelection() bool {
	return e.selecting && e.selectionStart != e.selectionEnd
}

// GetSelection returns the normalized selection range (start <= end).
func (e *Editor) GetSelection() (start types.Position, end types.Position, ok bool) {
	if !e.HasSelection() {
		return types.Position{Line: -1, Col: -1}, types.Position{Line: -1, Col: -1}, false
	}
	start, end = types.Order(e.selectionStart, e.selectionEnd)
	return start, end, true
}

// ClearSelection resets the selection state.
func (e *Editor) ClearSelection() {
	e.selecting = false
	e.selectionStart = types.Position{Line: -1, Col: -1}
	e.selectionEnd = types.Position{Line: -1, Col: -1}
}

// StartOrUpdateSelection anchors a selection at the cursor if none is
// active. Called before a shift+movement; the movement then drags the end.
func (e *Editor) StartOrUpdateSelection() {
	if !e.selecting {
		e.selectionStart = e.Cursor
		e.selecting = true
	}
	e.selectionEnd = e.Cursor
}

// SelectAll selects the whole document and puts the cursor at its end.
func (e *Editor) SelectAll() {
	e.ClearSelection()
	e.selectionStart = types.Position{}
	e.selecting = true
	e.DocumentEnd()
	e.selectionEnd = e.Cursor
}

// InSelection reports whether pos lies inside the active selection.
func (e *Editor) InSelection(pos types.Position) bool {
	start, end, ok := e.GetSelection()
	if !ok {
		return false
	}
	return !pos.Before(start) && pos.Before(end)
}
