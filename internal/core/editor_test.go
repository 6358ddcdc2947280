package core

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bethropolis/codepad/internal/buffer"
	"github.com/bethropolis/codepad/internal/clipboard"
	"github.com/bethropolis/codepad/internal/event"
	"github.com/bethropolis/codepad/internal/fileio"
	"github.com/bethropolis/codepad/internal/highlighter/lang"
	"github.com/bethropolis/codepad/internal/types"
)

func newEditor(t *testing.T, text string) *Editor {
	t.Helper()
	e := NewEditor(buffer.NewSliceBufferFromText(text))
	e.SetViewSize(40, 10)
	return e
}

func pos(line, col int) types.Position { return types.Position{Line: line, Col: col} }

func TestMoveCursor_ClampsAndWraps(t *testing.T) {
	e := newEditor(t, "ab\nlonger line\nc")

	e.MoveCursor(0, 5)
	assert.Equal(t, pos(0, 2), e.Cursor)

	e.MoveCursor(0, 1)
	assert.Equal(t, pos(1, 0), e.Cursor, "right at end of line wraps")

	e.MoveCursor(0, -1)
	assert.Equal(t, pos(0, 2), e.Cursor, "left at column 0 wraps")

	e.SetCursor(pos(1, 10))
	e.MoveCursor(1, 0)
	assert.Equal(t, pos(2, 1), e.Cursor, "column clamps to shorter line")

	e.MoveCursor(5, 0)
	assert.Equal(t, 2, e.Cursor.Line)
	e.MoveCursor(-9, 0)
	assert.Equal(t, 0, e.Cursor.Line)
}

func TestHomeEndAndDocumentEnds(t *testing.T) {
	e := newEditor(t, "héllo\nworld")
	e.End()
	assert.Equal(t, pos(0, 5), e.Cursor)
	e.Home()
	assert.Equal(t, pos(0, 0), e.Cursor)
	e.DocumentEnd()
	assert.Equal(t, pos(1, 5), e.Cursor)
	e.DocumentStart()
	assert.Equal(t, pos(0, 0), e.Cursor)
}

func TestScrollToCursor_ScrollOff(t *testing.T) {
	text := ""
	for i := 0; i < 50; i++ {
		text += "line\n"
	}
	e := newEditor(t, text)
	e.ScrollOff = 2

	e.SetCursor(pos(9, 0))
	assert.Equal(t, 2, e.ViewportY, "cursor keeps two lines below it visible")

	e.SetCursor(pos(3, 0))
	assert.Equal(t, 1, e.ViewportY)

	e.PageMove(1)
	assert.Equal(t, 11, e.ViewportY)
	assert.Equal(t, 13, e.Cursor.Line)
}

func TestScrollToCursor_Horizontal(t *testing.T) {
	e := newEditor(t, "\t\t\t\t\t\t\t\t\t\tx")
	e.SetTabWidth(4)
	e.End()
	assert.Equal(t, 41, e.CursorVisualColumn())
	assert.Equal(t, 2, e.ViewportX)
	e.Home()
	assert.Equal(t, 0, e.ViewportX)
}

func TestInsertAndDelete(t *testing.T) {
	e := newEditor(t, "")
	for _, r := range "hi" {
		require.NoError(t, e.InsertRune(r))
	}
	require.NoError(t, e.InsertNewLine())
	require.NoError(t, e.InsertTab())
	require.NoError(t, e.InsertRune('x'))
	assert.Equal(t, "hi\n\tx", e.GetBuffer().Text())
	assert.Equal(t, pos(1, 2), e.Cursor)
	assert.True(t, e.IsModified())

	e.SetCursor(pos(1, 0))
	require.NoError(t, e.DeleteBackward())
	assert.Equal(t, "hi\tx", e.GetBuffer().Text())
	assert.Equal(t, pos(0, 2), e.Cursor)

	require.NoError(t, e.DeleteForward())
	assert.Equal(t, "hix", e.GetBuffer().Text())

	e.DocumentEnd()
	require.NoError(t, e.DeleteForward(), "delete at end of document is a no-op")
	e.DocumentStart()
	require.NoError(t, e.DeleteBackward(), "backspace at start is a no-op")
	assert.Equal(t, "hix", e.GetBuffer().Text())
}

func TestSelectionDeleteAndReplace(t *testing.T) {
	e := newEditor(t, "one\ntwo\nthree")
	e.SetCursor(pos(0, 1))
	e.StartOrUpdateSelection()
	e.MoveCursor(2, 0)
	start, end, ok := e.GetSelection()
	require.True(t, ok)
	assert.Equal(t, pos(0, 1), start)
	assert.Equal(t, pos(2, 1), end)
	assert.True(t, e.InSelection(pos(1, 0)))
	assert.False(t, e.InSelection(pos(2, 1)))

	require.NoError(t, e.InsertRune('X'))
	assert.Equal(t, "oXhree", e.GetBuffer().Text())
	assert.False(t, e.HasSelection())
}

func TestSelectAll(t *testing.T) {
	e := newEditor(t, "ab\ncd")
	e.SelectAll()
	start, end, ok := e.GetSelection()
	require.True(t, ok)
	assert.Equal(t, pos(0, 0), start)
	assert.Equal(t, pos(1, 2), end)
	require.NoError(t, e.DeleteBackward())
	assert.Equal(t, "", e.GetBuffer().Text())
}

func TestUndoRedo(t *testing.T) {
	e := newEditor(t, "x")
	e.End()
	for _, r := range "yz" {
		require.NoError(t, e.InsertRune(r))
	}
	require.NoError(t, e.DeleteBackward())
	assert.Equal(t, "xy", e.GetBuffer().Text())

	ok, err := e.Undo()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "xyz", e.GetBuffer().Text())
	assert.Equal(t, pos(0, 3), e.Cursor)

	ok, err = e.Undo()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "x", e.GetBuffer().Text(), "typed run undone together")

	ok, err = e.Undo()
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = e.Redo()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "xyz", e.GetBuffer().Text())
	assert.Equal(t, pos(0, 3), e.Cursor)
}

func TestCopyCutPaste(t *testing.T) {
	e := newEditor(t, "hello world")
	e.SetClipboard(clipboard.NewManager(nil))

	ok, err := e.Copy()
	require.NoError(t, err)
	assert.False(t, ok, "nothing selected")

	e.StartOrUpdateSelection()
	e.MoveCursor(0, 5)
	ok, err = e.Cut()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, " world", e.GetBuffer().Text())

	e.End()
	ok, err = e.Paste()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, " worldhello", e.GetBuffer().Text())
	assert.Equal(t, pos(0, 11), e.Cursor)

	_, err = e.Undo()
	require.NoError(t, err)
	assert.Equal(t, " world", e.GetBuffer().Text())
}

func TestLineSpans_InvalidatedOnEdit(t *testing.T) {
	e := newEditor(t, "x = 1")
	e.SetRuleSet(lang.Get(lang.Python).MustRuleSet())

	spans := e.LineSpans(0)
	require.Len(t, spans, 1)
	assert.Equal(t, 4, spans[0].Start)

	e.SetCursor(pos(0, 0))
	require.NoError(t, e.InsertText([]byte("def f(): ")))
	spans = e.LineSpans(0)
	require.NotEmpty(t, spans)
	assert.Equal(t, 0, spans[0].Start, "keyword span recomputed for edited line")
	assert.Empty(t, e.LineSpans(7), "out of range line has no spans")
}

func TestLoadSaveNew_Events(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.py")
	require.NoError(t, os.WriteFile(path, []byte("print(1)\n"), 0o644))

	e := newEditor(t, "")
	bus := event.NewManager()
	e.SetEventManager(bus)
	var seen []event.Type
	for _, typ := range []event.Type{event.TypeBufferLoaded, event.TypeBufferSaved, event.TypeBufferCreated, event.TypeBufferModified} {
		bus.Subscribe(typ, func(ev event.Event) bool {
			seen = append(seen, ev.Type)
			return false
		})
	}

	require.NoError(t, e.Load(path))
	assert.Equal(t, "print(1)\n", e.GetBuffer().Text())
	assert.Equal(t, path, e.FilePath())
	assert.False(t, e.History().CanUndo())

	require.NoError(t, e.InsertRune('#'))
	require.NoError(t, e.Save(""))
	assert.False(t, e.IsModified())

	e.NewDocument()
	assert.Equal(t, "", e.FilePath())
	assert.Equal(t, pos(0, 0), e.Cursor)

	assert.Equal(t, []event.Type{event.TypeBufferLoaded, event.TypeBufferModified, event.TypeBufferSaved, event.TypeBufferCreated}, seen)
}

func TestLoadFailureKeepsDocument(t *testing.T) {
	e := newEditor(t, "keep me")
	e.End()
	err := e.Load(filepath.Join(t.TempDir(), "missing.txt"))
	require.Error(t, err)
	assert.ErrorIs(t, err, fileio.ErrOpen)
	assert.Equal(t, "keep me", e.GetBuffer().Text())
	assert.Equal(t, pos(0, 7), e.Cursor)
}

func TestSaveWithoutPathFails(t *testing.T) {
	e := newEditor(t, "x")
	err := e.Save("")
	require.Error(t, err)
	assert.ErrorIs(t, err, fileio.ErrSave)
}
