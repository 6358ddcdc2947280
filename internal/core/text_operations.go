package core

import (
	"fmt"
	"unicode/utf8"

	"github.com/bethropolis/codepad/internal/history"
	"github.com/bethropolis/codepad/internal/types"
	"github.com/bethropolis/codepad/internal/utils"
)

// insertAt inserts text at pos, records it for undo and moves the cursor
// past it.
func (e *Editor) insertAt(pos types.Position, text []byte, typing bool) error {
	if len(text) == 0 {
		return nil
	}
	cursorBefore := e.Cursor
	edit, err := e.buffer.Insert(pos, text)
	if err != nil {
		return fmt.Errorf("buffer insert failed: %w", err)
	}
	end := utils.PositionAfter(pos, text)
	e.history.RecordChange(history.Change{
		Type:          history.InsertAction,
		Text:          text,
		StartPosition: pos,
		EndPosition:   end,
		CursorBefore:  cursorBefore,
		Typing:        typing,
	})
	e.Cursor = end
	e.ScrollToCursor()
	e.notifyModified(edit)
	return nil
}

// deleteRange removes [start, end), records it and leaves the cursor at start.
func (e *Editor) deleteRange(start, end types.Position) error {
	start, end = types.Order(start, end)
	if start == end {
		return nil
	}
	deleted, err := e.buffer.Slice(start, end)
	if err != nil {
		return fmt.Errorf("buffer slice failed: %w", err)
	}
	cursorBefore := e.Cursor
	edit, err := e.buffer.Delete(start, end)
	if err != nil {
		return fmt.Errorf("buffer delete failed: %w", err)
	}
	e.history.RecordChange(history.Change{
		Type:          history.DeleteAction,
		Text:          deleted,
		StartPosition: start,
		EndPosition:   end,
		CursorBefore:  cursorBefore,
	})
	e.Cursor = start
	e.ScrollToCursor()
	e.notifyModified(edit)
	return nil
}

// DeleteSelection removes the selected text. Returns false when nothing
// was selected.
func (e *Editor) DeleteSelection() (bool, error) {
	start, end, ok := e.GetSelection()
	if !ok {
		return false, nil
	}
	e.ClearSelection()
	return true, e.deleteRange(start, end)
}

// InsertRune types r at the cursor, replacing any selection.
func (e *Editor) InsertRune(r rune) error {
	if _, err := e.DeleteSelection(); err != nil {
		return err
	}
	e.ClearSelection()
	buf := make([]byte, utf8.RuneLen(r))
	utf8.EncodeRune(buf, r)
	return e.insertAt(e.Cursor, buf, r != '\n')
}

// InsertNewLine splits the line at the cursor.
func (e *Editor) InsertNewLine() error {
	return e.InsertRune('\n')
}

// InsertTab inserts a tab character; it is displayed up to the next tab
// stop.
func (e *Editor) InsertTab() error {
	return e.InsertRune('\t')
}

// InsertText inserts text at the cursor as one undo step, replacing any
// selection.
func (e *Editor) InsertText(text []byte) error {
	if _, err := e.DeleteSelection(); err != nil {
		return err
	}
	e.ClearSelection()
	return e.insertAt(e.Cursor, text, false)
}

// DeleteBackward deletes the selection or the rune before the cursor,
// joining lines at column 0.
func (e *Editor) DeleteBackward() error {
	if ok, err := e.DeleteSelection(); ok || err != nil {
		return err
	}
	e.ClearSelection()

	start := e.Cursor
	switch {
	case e.Cursor.Col > 0:
		start.Col--
	case e.Cursor.Line > 0:
		start.Line--
		start.Col = e.lineRuneCount(start.Line)
	default:
		return nil
	}
	return e.deleteRange(start, e.Cursor)
}

// DeleteForward deletes the selection or the rune under the cursor,
// joining the next line at end of line.
func (e *Editor) DeleteForward() error {
	if ok, err := e.DeleteSelection(); ok || err != nil {
		return err
	}
	e.ClearSelection()

	end := e.Cursor
	switch {
	case e.Cursor.Col < e.lineRuneCount(e.Cursor.Line):
		end.Col++
	case e.Cursor.Line < e.buffer.LineCount()-1:
		end = types.Position{Line: e.Cursor.Line + 1}
	default:
		return nil
	}
	return e.deleteRange(e.Cursor, end)
}

// Undo reverts the last change. Returns false when there was nothing to undo.
func (e *Editor) Undo() (bool, error) {
	res, ok, err := e.history.Undo(e.buffer)
	if !ok || err != nil {
		return false, err
	}
	e.ClearSelection()
	e.SetCursor(res.Cursor)
	e.notifyModified(res.Edit)
	return true, nil
}

// Redo reapplies the last undone change.
func (e *Editor) Redo() (bool, error) {
	res, ok, err := e.history.Redo(e.buffer)
	if !ok || err != nil {
		return false, err
	}
	e.ClearSelection()
	e.SetCursor(res.Cursor)
	e.notifyModified(res.Edit)
	return true, nil
}
