package core

import (
	"fmt"

	"github.com/bethropolis/codepad/internal/logger"
)

// Copy puts the selected text on the clipboard. Returns false when nothing
// is selected. A system clipboard failure is logged; the text is still
// kept in the internal register.
func (e *Editor) Copy() (bool, error) {
	start, end, ok := e.GetSelection()
	if !ok {
		return false, nil
	}
	text, err := e.buffer.Slice(start, end)
	if err != nil {
		return false, fmt.Errorf("failed to extract selection: %w", err)
	}
	if err := e.clipboard.Copy(text); err != nil {
		logger.Debugf("Editor: copy: %v", err)
	}
	return true, nil
}

// Cut copies the selection and deletes it.
func (e *Editor) Cut() (bool, error) {
	ok, err := e.Copy()
	if !ok || err != nil {
		return ok, err
	}
	return e.DeleteSelection()
}

// Paste inserts the clipboard text at the cursor, replacing any selection.
func (e *Editor) Paste() (bool, error) {
	text := e.clipboard.Paste()
	if len(text) == 0 {
		return false, nil
	}
	if err := e.InsertText(text); err != nil {
		return false, err
	}
	logger.DebugTagf("core", "Pasted %d bytes", len(text))
	return true, nil
}

// ClipboardText returns what Paste would insert.
func (e *Editor) ClipboardText() string {
	return string(e.clipboard.Paste())
}
