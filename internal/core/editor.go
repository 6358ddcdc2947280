// Package core implements the editing surface: cursor, selection, text
// operations, viewport and the per-line highlight cache over a buffer.
package core

import (
	"github.com/bethropolis/codepad/internal/buffer"
	"github.com/bethropolis/codepad/internal/clipboard"
	"github.com/bethropolis/codepad/internal/config"
	"github.com/bethropolis/codepad/internal/core/highlight"
	"github.com/bethropolis/codepad/internal/event"
	"github.com/bethropolis/codepad/internal/highlighter"
	"github.com/bethropolis/codepad/internal/history"
	"github.com/bethropolis/codepad/internal/logger"
	"github.com/bethropolis/codepad/internal/types"
)

type Editor struct {
	buffer     buffer.Buffer
	Cursor     types.Position
	ViewportY  int // top visible line
	ViewportX  int // leftmost visible screen column
	viewWidth  int
	viewHeight int
	ScrollOff  int
	tabWidth   int

	selecting      bool
	selectionStart types.Position
	selectionEnd   types.Position

	eventManager *event.Manager
	history      *history.Manager
	clipboard    *clipboard.Manager
	highlights   *highlight.Cache
}

// NewEditor creates an editor over buf with an internal clipboard and no
// highlighting.
func NewEditor(buf buffer.Buffer) *Editor {
	return &Editor{
		buffer:         buf,
		ScrollOff:      config.DefaultScrollOff,
		tabWidth:       config.DefaultTabWidth,
		selectionStart: types.Position{Line: -1, Col: -1},
		selectionEnd:   types.Position{Line: -1, Col: -1},
		history:        history.NewManager(history.DefaultMaxHistory),
		clipboard:      clipboard.NewManager(nil),
		highlights:     highlight.NewCache(nil),
	}
}

// SetEventManager sets the bus edits are announced on.
func (e *Editor) SetEventManager(mgr *event.Manager) {
	e.eventManager = mgr
}

// SetClipboard replaces the clipboard manager.
func (e *Editor) SetClipboard(cb *clipboard.Manager) {
	if cb != nil {
		e.clipboard = cb
	}
}

// SetRuleSet installs the highlight profile and drops cached spans.
func (e *Editor) SetRuleSet(rs *highlighter.RuleSet) {
	e.highlights = highlight.NewCache(rs)
}

// RuleSet returns the active highlight profile.
func (e *Editor) RuleSet() *highlighter.RuleSet {
	return e.highlights.RuleSet()
}

// LineSpans returns the highlight spans of line idx.
func (e *Editor) LineSpans(idx int) []highlighter.Span {
	line, err := e.buffer.Line(idx)
	if err != nil {
		return nil
	}
	return e.highlights.SpansFor(idx, line)
}

// SetTabWidth changes the tab stop width used for display and scrolling.
func (e *Editor) SetTabWidth(w int) {
	if w <= 0 {
		w = config.DefaultTabWidth
	}
	e.tabWidth = w
	e.ScrollToCursor()
}

// TabWidth returns the tab stop width.
func (e *Editor) TabWidth() int { return e.tabWidth }

// SetViewSize updates the text area dimensions.
func (e *Editor) SetViewSize(width, height int) {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	e.viewWidth = width
	e.viewHeight = height
	e.ScrollToCursor()
}

// ViewSize returns the text area dimensions.
func (e *Editor) ViewSize() (int, int) { return e.viewWidth, e.viewHeight }

// GetBuffer returns the editor's buffer.
func (e *Editor) GetBuffer() buffer.Buffer {
	return e.buffer
}

// GetCursor returns the current cursor position.
func (e *Editor) GetCursor() types.Position {
	return e.Cursor
}

// SetCursor moves the cursor to pos, clamped to the buffer.
func (e *Editor) SetCursor(pos types.Position) {
	e.Cursor = pos
	e.MoveCursor(0, 0)
}

// GetViewport returns the top line and left column of the view.
func (e *Editor) GetViewport() (int, int) {
	return e.ViewportY, e.ViewportX
}

// History exposes the undo stack.
func (e *Editor) History() *history.Manager { return e.history }

// IsModified reports unsaved changes.
func (e *Editor) IsModified() bool { return e.buffer.IsModified() }

// FilePath returns the current document path, empty for a new document.
func (e *Editor) FilePath() string { return e.buffer.FilePath() }

// resetDocumentState puts cursor, view, selection, history and cache back
// to their initial state after the whole document was replaced.
func (e *Editor) resetDocumentState() {
	e.Cursor = types.Position{}
	e.ViewportY, e.ViewportX = 0, 0
	e.ClearSelection()
	e.history.Clear()
	e.highlights.Reset()
}

// NewDocument clears the buffer and forgets its path.
func (e *Editor) NewDocument() {
	e.buffer.Reset()
	e.resetDocumentState()
	e.dispatch(event.TypeBufferCreated, nil)
}

// Load reads path into the buffer. On error the document is untouched.
func (e *Editor) Load(path string) error {
	if err := e.buffer.Load(path); err != nil {
		logger.Warnf("Editor: load %s failed: %v", path, err)
		return err
	}
	e.resetDocumentState()
	logger.Infof("Editor: loaded %s (%d lines)", path, e.buffer.LineCount())
	e.dispatch(event.TypeBufferLoaded, event.BufferLoadedData{FilePath: path})
	return nil
}

// Save writes the buffer to path, or to the current path when path is
// empty.
func (e *Editor) Save(path string) error {
	if err := e.buffer.Save(path); err != nil {
		logger.Warnf("Editor: save failed: %v", err)
		return err
	}
	logger.Infof("Editor: saved %s", e.buffer.FilePath())
	e.dispatch(event.TypeBufferSaved, event.BufferSavedData{FilePath: e.buffer.FilePath()})
	return nil
}

// Lines returns the document lines as strings, for printing.
func (e *Editor) Lines() []string {
	raw := e.buffer.Lines()
	out := make([]string, len(raw))
	for i, l := range raw {
		out[i] = string(l)
	}
	return out
}

func (e *Editor) dispatch(t event.Type, data interface{}) {
	if e.eventManager != nil {
		e.eventManager.Dispatch(t, data)
	}
}

// notifyModified invalidates cached highlights and announces the edit.
func (e *Editor) notifyModified(edit types.EditInfo) {
	e.highlights.Invalidate(edit)
	e.dispatch(event.TypeBufferModified, event.BufferModifiedData{Edit: edit})
}
