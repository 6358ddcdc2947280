package modehandler

import (
	"github.com/bethropolis/codepad/internal/input"
	"github.com/bethropolis/codepad/internal/logger"
)

// actionCommands routes application-level key bindings through the
// command registry so keys and ':' commands share one implementation.
var actionCommands = map[input.Action]string{
	input.ActionNew:            "new",
	input.ActionOpen:           "e",
	input.ActionSave:           "w",
	input.ActionSaveAs:         "saveas",
	input.ActionPrint:          "print",
	input.ActionQuit:           "q",
	input.ActionZoomIn:         "zoomin",
	input.ActionZoomOut:        "zoomout",
	input.ActionSettings:       "settings",
	input.ActionToggleFileList: "files",
}

// executeAction handles actions in ModeNormal.
func (mh *ModeHandler) executeAction(actionEvent input.ActionEvent) bool {
	action := actionEvent.Action

	if action.IsMovement() {
		if actionEvent.Shift {
			mh.editor.StartOrUpdateSelection()
		} else {
			mh.editor.ClearSelection()
		}
	}

	if name, ok := actionCommands[action]; ok {
		mh.runCommand(name, nil)
		return true
	}

	actionProcessed := true
	switch action {
	case input.ActionEscape:
		mh.editor.ClearSelection()
		mh.cmdBuffer = nil
		mh.statusBar.SetInput(":", "")
		mh.setMode(ModeCommand)

	// Movement
	case input.ActionMoveUp:
		mh.editor.MoveCursor(-1, 0)
	case input.ActionMoveDown:
		mh.editor.MoveCursor(1, 0)
	case input.ActionMoveLeft:
		mh.editor.MoveCursor(0, -1)
	case input.ActionMoveRight:
		mh.editor.MoveCursor(0, 1)
	case input.ActionMovePageUp:
		mh.editor.PageMove(-1)
	case input.ActionMovePageDown:
		mh.editor.PageMove(1)
	case input.ActionMoveHome:
		mh.editor.Home()
	case input.ActionMoveEnd:
		mh.editor.End()
	case input.ActionMoveDocumentStart:
		mh.editor.DocumentStart()
	case input.ActionMoveDocumentEnd:
		mh.editor.DocumentEnd()
	case input.ActionSelectAll:
		mh.editor.SelectAll()

	// Clipboard
	case input.ActionCopy:
		copied, err := mh.editor.Copy()
		switch {
		case err != nil:
			mh.statusBar.SetErrorMessage("Copy failed: %v", err)
		case copied:
			mh.statusBar.SetTemporaryMessage("Text copied to clipboard")
		default:
			mh.statusBar.SetTemporaryMessage("Nothing selected to copy")
		}
	case input.ActionCut:
		cut, err := mh.editor.Cut()
		switch {
		case err != nil:
			mh.statusBar.SetErrorMessage("Cut failed: %v", err)
		case cut:
			mh.statusBar.SetTemporaryMessage("Text cut to clipboard")
		default:
			mh.statusBar.SetTemporaryMessage("Nothing selected to cut")
		}
	case input.ActionPaste:
		pasted, err := mh.editor.Paste()
		if err != nil {
			mh.statusBar.SetErrorMessage("Paste failed: %v", err)
		} else if !pasted {
			mh.statusBar.SetTemporaryMessage("Clipboard empty - nothing to paste")
			actionProcessed = false
		}

	// Undo/Redo
	case input.ActionUndo:
		mh.undo()
	case input.ActionRedo:
		mh.redo()

	// Text modification
	case input.ActionInsertRune:
		actionProcessed = mh.logEditErr("InsertRune", mh.editor.InsertRune(actionEvent.Rune))
	case input.ActionInsertNewLine:
		actionProcessed = mh.logEditErr("InsertNewLine", mh.editor.InsertNewLine())
	case input.ActionInsertTab:
		actionProcessed = mh.logEditErr("InsertTab", mh.editor.InsertTab())
	case input.ActionDeleteCharBackward:
		actionProcessed = mh.logEditErr("DeleteBackward", mh.editor.DeleteBackward())
	case input.ActionDeleteCharForward:
		actionProcessed = mh.logEditErr("DeleteForward", mh.editor.DeleteForward())

	default:
		actionProcessed = false
	}
	return actionProcessed
}

func (mh *ModeHandler) logEditErr(op string, err error) bool {
	if err != nil {
		logger.Debugf("Err %s: %v", op, err)
		return false
	}
	return true
}

func (mh *ModeHandler) undo() bool {
	undone, err := mh.editor.Undo()
	switch {
	case err != nil:
		mh.statusBar.SetErrorMessage("Undo failed: %v", err)
		logger.Debugf("Undo error: %v", err)
		return false
	case !undone:
		mh.statusBar.SetTemporaryMessage("Nothing to undo")
		return false
	}
	return true
}

func (mh *ModeHandler) redo() bool {
	redone, err := mh.editor.Redo()
	switch {
	case err != nil:
		mh.statusBar.SetErrorMessage("Redo failed: %v", err)
		logger.Debugf("Redo error: %v", err)
		return false
	case !redone:
		mh.statusBar.SetTemporaryMessage("Nothing to redo")
		return false
	}
	return true
}
