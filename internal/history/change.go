// Package history provides undo/redo via a bounded change stack.
package history

import (
	"bytes"

	"github.com/bethropolis/codepad/internal/types"
)

// ActionType indicates whether text was inserted or deleted.
type ActionType int

const (
	InsertAction ActionType = iota
	DeleteAction
)

func (a ActionType) String() string {
	if a == DeleteAction {
		return "delete"
	}
	return "insert"
}

// Change is a single reversible text operation.
type Change struct {
	Type          ActionType
	Text          []byte         // inserted or deleted text
	StartPosition types.Position // where the change began
	EndPosition   types.Position // end of inserted text, or end of deleted range
	CursorBefore  types.Position
	// Typing marks a single typed character; adjacent typing changes on one
	// line are undone together.
	Typing bool
}

// canMerge reports whether next continues the typing run in c.
func (c Change) canMerge(next Change) bool {
	if !c.Typing || !next.Typing || c.Type != InsertAction || next.Type != InsertAction {
		return false
	}
	if bytes.ContainsRune(c.Text, '\n') || bytes.ContainsRune(next.Text, '\n') {
		return false
	}
	// A space ends a word; the next word starts a new undo step.
	if bytes.HasSuffix(c.Text, []byte(" ")) && !bytes.Equal(next.Text, []byte(" ")) {
		return false
	}
	return c.EndPosition == next.StartPosition
}
