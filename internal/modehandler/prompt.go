package modehandler

import (
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/bethropolis/codepad/internal/dialog"
	"github.com/bethropolis/codepad/internal/input"
	"github.com/bethropolis/codepad/internal/logger"
)

type promptState struct {
	label    string
	text     []rune
	onSubmit func(string)
}

// Prompt asks for a line of text in the status bar. onSubmit receives the
// trimmed answer; an empty answer or Esc cancels.
func (mh *ModeHandler) Prompt(label, initial string, onSubmit func(string)) {
	mh.editor.ClearSelection()
	mh.prompt = promptState{label: label, text: []rune(initial), onSubmit: onSubmit}
	mh.statusBar.SetInput(label, initial)
	mh.setMode(ModePrompt)
}

// GetPromptText returns the answer being typed.
func (mh *ModeHandler) GetPromptText() string {
	if mh.currentMode == ModePrompt {
		return string(mh.prompt.text)
	}
	return ""
}

func (mh *ModeHandler) handleActionPrompt(actionEvent input.ActionEvent) bool {
	switch actionEvent.Action {
	case input.ActionInsertRune:
		mh.prompt.text = append(mh.prompt.text, actionEvent.Rune)
	case input.ActionInsertTab:
		mh.prompt.text = append(mh.prompt.text, '\t')
	case input.ActionDeleteCharBackward:
		if n := len(mh.prompt.text); n > 0 {
			mh.prompt.text = mh.prompt.text[:n-1]
		}
	case input.ActionPaste:
		mh.prompt.text = append(mh.prompt.text, []rune(firstLine(mh.editor.ClipboardText()))...)
	case input.ActionInsertNewLine:
		st := mh.prompt
		mh.prompt = promptState{}
		mh.clearInput()
		mh.setMode(ModeNormal)
		answer := strings.TrimSpace(string(st.text))
		if answer == "" {
			mh.statusBar.SetTemporaryMessage("Cancelled")
			return true
		}
		if st.onSubmit != nil {
			st.onSubmit(answer)
		}
		return true
	case input.ActionEscape:
		mh.prompt = promptState{}
		mh.clearInput()
		mh.setMode(ModeNormal)
		mh.statusBar.SetTemporaryMessage("Cancelled")
		logger.Debugf("ModeHandler: prompt cancelled")
		return true
	default:
		return false
	}
	mh.statusBar.SetInput(mh.prompt.label, string(mh.prompt.text))
	return true
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return strings.TrimRight(s[:i], "\r")
	}
	return s
}

type confirmState struct {
	dialog *dialog.Confirm
	onYes  func()
	onNo   func()
}

// Confirm asks a yes/no question in a modal.
func (mh *ModeHandler) Confirm(title, question string, onYes, onNo func()) {
	mh.clearInput()
	mh.confirm = confirmState{
		dialog: &dialog.Confirm{Title: title, Question: question},
		onYes:  onYes,
		onNo:   onNo,
	}
	mh.setMode(ModeConfirm)
}

func (mh *ModeHandler) handleConfirmKey(ev *tcell.EventKey) bool {
	st := mh.confirm
	if st.dialog == nil {
		mh.setMode(ModeNormal)
		return true
	}
	answer := st.dialog.HandleKey(ev)
	if answer == dialog.AnswerNone {
		return false
	}
	mh.confirm = confirmState{}
	mh.setMode(ModeNormal)
	if answer == dialog.AnswerYes && st.onYes != nil {
		st.onYes()
	}
	if answer == dialog.AnswerNo && st.onNo != nil {
		st.onNo()
	}
	return true
}

// clearInput drops any command line or prompt shown in the status bar.
func (mh *ModeHandler) clearInput() {
	mh.cmdBuffer = nil
	mh.statusBar.ClearInput()
}
