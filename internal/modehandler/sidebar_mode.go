package modehandler

import (
	"github.com/bethropolis/codepad/internal/input"
)

// ToggleSidebar shows the file list and gives it focus, or hides it if it
// is already shown.
func (mh *ModeHandler) ToggleSidebar() {
	if mh.sidebar.Visible() {
		mh.sidebar.SetVisible(false)
		mh.setMode(ModeNormal)
		return
	}
	mh.sidebar.SetVisible(true)
	mh.editor.ClearSelection()
	mh.setMode(ModeSidebar)
}

// handleActionSidebar handles keys while the file list has focus. Enter
// opens the selected file through the "e" command.
func (mh *ModeHandler) handleActionSidebar(actionEvent input.ActionEvent) bool {
	switch actionEvent.Action {
	case input.ActionMoveUp:
		mh.sidebar.Move(-1)
	case input.ActionMoveDown:
		mh.sidebar.Move(1)
	case input.ActionMovePageUp, input.ActionMoveDocumentStart, input.ActionMoveHome:
		mh.sidebar.Move(-mh.sidebar.Len())
	case input.ActionMovePageDown, input.ActionMoveDocumentEnd, input.ActionMoveEnd:
		mh.sidebar.Move(mh.sidebar.Len())
	case input.ActionInsertNewLine:
		path, ok := mh.sidebar.Selected()
		if !ok {
			return false
		}
		mh.setMode(ModeNormal)
		mh.runCommand("e", []string{path})
	case input.ActionEscape, input.ActionInsertTab:
		mh.setMode(ModeNormal)
	case input.ActionToggleFileList:
		mh.ToggleSidebar()
	case input.ActionQuit:
		mh.setMode(ModeNormal)
		mh.QuitRequested()
	default:
		return false
	}
	return true
}
