package input

// Action is an editor operation decoded from a key press.
type Action int

const (
	ActionUnknown Action = iota

	// File
	ActionNew
	ActionOpen
	ActionSave
	ActionSaveAs
	ActionPrint
	ActionQuit

	// Cursor movement
	ActionMoveUp
	ActionMoveDown
	ActionMoveLeft
	ActionMoveRight
	ActionMovePageUp
	ActionMovePageDown
	ActionMoveHome
	ActionMoveEnd
	ActionMoveDocumentStart
	ActionMoveDocumentEnd

	// Text
	ActionInsertRune
	ActionInsertNewLine
	ActionInsertTab
	ActionDeleteCharForward
	ActionDeleteCharBackward
	ActionSelectAll
	ActionUndo
	ActionRedo
	ActionCut
	ActionCopy
	ActionPaste

	// View
	ActionZoomIn
	ActionZoomOut
	ActionSettings
	ActionToggleFileList

	// Escape: command line in normal mode, cancel elsewhere.
	ActionEscape
)

var actionNames = map[Action]string{
	ActionUnknown:            "Unknown",
	ActionNew:                "New",
	ActionOpen:               "Open",
	ActionSave:               "Save",
	ActionSaveAs:             "SaveAs",
	ActionPrint:              "Print",
	ActionQuit:               "Quit",
	ActionMoveUp:             "MoveUp",
	ActionMoveDown:           "MoveDown",
	ActionMoveLeft:           "MoveLeft",
	ActionMoveRight:          "MoveRight",
	ActionMovePageUp:         "MovePageUp",
	ActionMovePageDown:       "MovePageDown",
	ActionMoveHome:           "MoveHome",
	ActionMoveEnd:            "MoveEnd",
	ActionMoveDocumentStart:  "MoveDocumentStart",
	ActionMoveDocumentEnd:    "MoveDocumentEnd",
	ActionInsertRune:         "InsertRune",
	ActionInsertNewLine:      "InsertNewLine",
	ActionInsertTab:          "InsertTab",
	ActionDeleteCharForward:  "DeleteCharForward",
	ActionDeleteCharBackward: "DeleteCharBackward",
	ActionSelectAll:          "SelectAll",
	ActionUndo:               "Undo",
	ActionRedo:               "Redo",
	ActionCut:                "Cut",
	ActionCopy:               "Copy",
	ActionPaste:              "Paste",
	ActionZoomIn:             "ZoomIn",
	ActionZoomOut:            "ZoomOut",
	ActionSettings:           "Settings",
	ActionToggleFileList:     "ToggleFileList",
	ActionEscape:             "Escape",
}

func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "Unknown"
}

// IsMovement reports whether a moves the cursor without editing.
func (a Action) IsMovement() bool {
	return a >= ActionMoveUp && a <= ActionMoveDocumentEnd
}

// ActionEvent is a decoded key press.
type ActionEvent struct {
	Action Action
	Rune   rune // for ActionInsertRune
	Shift  bool // extend the selection while moving
}
