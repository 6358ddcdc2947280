package history

import (
	"fmt"

	"github.com/bethropolis/codepad/internal/logger"
	"github.com/bethropolis/codepad/internal/types"
)

const DefaultMaxHistory = 200

// Target is the text store changes are replayed against.
type Target interface {
	Insert(pos types.Position, text []byte) (types.EditInfo, error)
	Delete(start, end types.Position) (types.EditInfo, error)
}

// Result describes an applied undo or redo.
type Result struct {
	Edit   types.EditInfo
	Cursor types.Position // where the cursor belongs afterwards
}

// Manager handles the undo/redo stack. It is used from the UI goroutine only.
type Manager struct {
	changes      []Change
	currentIndex int // index of the next change to redo
	maxHistory   int
}

// NewManager creates a history manager keeping at most maxHistory changes.
func NewManager(maxHistory int) *Manager {
	if maxHistory <= 0 {
		maxHistory = DefaultMaxHistory
	}
	return &Manager{
		changes:    make([]Change, 0, 16),
		maxHistory: maxHistory,
	}
}

// RecordChange adds a change, clearing any redo history.
func (m *Manager) RecordChange(change Change) {
	if m.currentIndex < len(m.changes) {
		m.changes = m.changes[:m.currentIndex]
	}

	if n := len(m.changes); n > 0 && m.changes[n-1].canMerge(change) {
		last := &m.changes[n-1]
		last.Text = append(last.Text, change.Text...)
		last.EndPosition = change.EndPosition
		m.currentIndex = len(m.changes)
		return
	}

	change.Text = append([]byte(nil), change.Text...)
	m.changes = append(m.changes, change)
	if len(m.changes) > m.maxHistory {
		m.changes = append(m.changes[:0:0], m.changes[len(m.changes)-m.maxHistory:]...)
	}
	m.currentIndex = len(m.changes)
	logger.DebugTagf("history", "Recorded %v. Index: %d, Count: %d", change.Type, m.currentIndex, len(m.changes))
}

// Undo reverts the last applied change. ok is false when there is nothing
// to undo.
func (m *Manager) Undo(target Target) (res Result, ok bool, err error) {
	if m.currentIndex <= 0 {
		return Result{}, false, nil
	}
	change := m.changes[m.currentIndex-1]

	switch change.Type {
	case InsertAction:
		res.Edit, err = target.Delete(change.StartPosition, change.EndPosition)
	case DeleteAction:
		res.Edit, err = target.Insert(change.StartPosition, change.Text)
	}
	if err != nil {
		return Result{}, false, fmt.Errorf("undo failed: %w", err)
	}

	m.currentIndex--
	res.Cursor = change.CursorBefore
	logger.DebugTagf("history", "Undid %v, index now %d", change.Type, m.currentIndex)
	return res, true, nil
}

// Redo reapplies the last undone change.
func (m *Manager) Redo(target Target) (res Result, ok bool, err error) {
	if m.currentIndex >= len(m.changes) {
		return Result{}, false, nil
	}
	change := m.changes[m.currentIndex]

	switch change.Type {
	case InsertAction:
		res.Edit, err = target.Insert(change.StartPosition, change.Text)
		res.Cursor = change.EndPosition
	case DeleteAction:
		res.Edit, err = target.Delete(change.StartPosition, change.EndPosition)
		res.Cursor = change.StartPosition
	}
	if err != nil {
		return Result{}, false, fmt.Errorf("redo failed: %w", err)
	}

	m.currentIndex++
	logger.DebugTagf("history", "Redid %v, index now %d", change.Type, m.currentIndex)
	return res, true, nil
}

// Clear resets the stack. Called when a document is loaded or created.
func (m *Manager) Clear() {
	m.changes = m.changes[:0]
	m.currentIndex = 0
}

// CanUndo reports whether Undo has anything to revert.
func (m *Manager) CanUndo() bool { return m.currentIndex > 0 }

// CanRedo reports whether Redo has anything to reapply.
func (m *Manager) CanRedo() bool { return m.currentIndex < len(m.changes) }

// Len returns the number of recorded changes, including undone ones.
func (m *Manager) Len() int { return len(m.changes) }
