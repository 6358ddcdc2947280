// Package modehandler routes key presses according to the current input
// mode: editing, the ':' command line, prompts, modal dialogs and the file
// list. It owns the command registry.
package modehandler

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/bethropolis/codepad/internal/core"
	"github.com/bethropolis/codepad/internal/dialog"
	"github.com/bethropolis/codepad/internal/event"
	"github.com/bethropolis/codepad/internal/input"
	"github.com/bethropolis/codepad/internal/logger"
	"github.com/bethropolis/codepad/internal/settings"
	"github.com/bethropolis/codepad/internal/sidebar"
	"github.com/bethropolis/codepad/internal/statusbar"
)

// InputMode defines the different states for user input.
type InputMode int

const (
	ModeNormal   InputMode = iota
	ModeCommand            // typing after ':'
	ModePrompt             // typing an answer such as a file path
	ModeConfirm            // yes/no question
	ModeMessage            // modal notice
	ModeSettings           // settings form
	ModeSidebar            // file list has focus
)

var modeNames = map[InputMode]string{
	ModeNormal:   "NORMAL",
	ModeCommand:  "COMMAND",
	ModePrompt:   "PROMPT",
	ModeConfirm:  "CONFIRM",
	ModeMessage:  "MESSAGE",
	ModeSettings: "SETTINGS",
	ModeSidebar:  "FILES",
}

func (m InputMode) String() string {
	if name, ok := modeNames[m]; ok {
		return name
	}
	return "UNKNOWN"
}

// CommandFunc runs a ':' command. Errors are shown in the status bar.
type CommandFunc func(args []string) error

// ModeHandler manages input modes, command execution, and related state.
type ModeHandler struct {
	editor         *core.Editor
	inputProcessor *input.InputProcessor
	eventManager   *event.Manager
	statusBar      *statusbar.StatusBar
	sidebar        *sidebar.Sidebar
	quitSignal     chan<- struct{}

	currentMode InputMode
	cmdBuffer   []rune
	commands    map[string]CommandFunc
	quitting    bool

	prompt  promptState
	confirm confirmState
	message *dialog.Message
	// modeAfterMessage is restored when the message is dismissed.
	modeAfterMessage InputMode
	settings         settingsState
}

// Config holds dependencies for the ModeHandler.
type Config struct {
	Editor         *core.Editor
	InputProcessor *input.InputProcessor
	EventManager   *event.Manager
	StatusBar      *statusbar.StatusBar
	Sidebar        *sidebar.Sidebar
	QuitSignal     chan<- struct{}
}

// New creates a new ModeHandler with the editing commands registered.
func New(cfg Config) *ModeHandler {
	if cfg.Editor == nil || cfg.InputProcessor == nil || cfg.EventManager == nil ||
		cfg.StatusBar == nil || cfg.Sidebar == nil || cfg.QuitSignal == nil {
		panic("modehandler.New: Missing required dependencies in Config")
	}
	mh := &ModeHandler{
		editor:         cfg.Editor,
		inputProcessor: cfg.InputProcessor,
		eventManager:   cfg.EventManager,
		statusBar:      cfg.StatusBar,
		sidebar:        cfg.Sidebar,
		quitSignal:     cfg.QuitSignal,
		currentMode:    ModeNormal,
		commands:       make(map[string]CommandFunc),
	}
	mh.registerBuiltinCommands()
	return mh
}

// HandleKeyEvent handles one key press. Returns true if a redraw is needed.
func (mh *ModeHandler) HandleKeyEvent(ev *tcell.EventKey) bool {
	switch mh.currentMode {
	case ModeNormal:
		return mh.executeAction(mh.inputProcessor.ProcessEvent(ev))
	case ModeCommand:
		return mh.handleActionCommand(mh.inputProcessor.ProcessEvent(ev))
	case ModePrompt:
		return mh.handleActionPrompt(mh.inputProcessor.ProcessEvent(ev))
	case ModeConfirm:
		return mh.handleConfirmKey(ev)
	case ModeMessage:
		return mh.handleMessageKey(ev)
	case ModeSettings:
		return mh.handleSettingsKey(ev)
	case ModeSidebar:
		return mh.handleActionSidebar(mh.inputProcessor.ProcessEvent(ev))
	default:
		logger.Warnf("ModeHandler: unknown input mode %v", mh.currentMode)
		mh.setMode(ModeNormal)
		return true
	}
}

func (mh *ModeHandler) setMode(m InputMode) {
	if mh.currentMode == m {
		return
	}
	logger.DebugTagf("mode", "ModeHandler: %s -> %s", mh.currentMode, m)
	mh.currentMode = m
	mh.eventManager.Dispatch(event.TypeModeChanged, event.ModeChangedData{Mode: m.String()})
}

// GetCurrentMode returns the current input mode.
func (mh *ModeHandler) GetCurrentMode() InputMode {
	return mh.currentMode
}

// GetCurrentModeString is the mode label for the status bar; empty while
// editing.
func (mh *ModeHandler) GetCurrentModeString() string {
	if mh.currentMode == ModeNormal {
		return ""
	}
	return mh.currentMode.String()
}

// GetCommandBuffer returns the command line being typed.
func (mh *ModeHandler) GetCommandBuffer() string {
	if mh.currentMode == ModeCommand {
		return string(mh.cmdBuffer)
	}
	return ""
}

// Overlay returns the modal to draw over the editor, if any.
func (mh *ModeHandler) Overlay() dialog.Overlay {
	switch {
	case mh.currentMode == ModeConfirm && mh.confirm.dialog != nil:
		return mh.confirm.dialog
	case mh.currentMode == ModeMessage && mh.message != nil:
		return mh.message
	case mh.currentMode == ModeSettings && mh.settings.dialog != nil:
		return mh.settings.dialog
	}
	return nil
}

// SidebarFocused reports whether the file list has focus.
func (mh *ModeHandler) SidebarFocused() bool {
	return mh.currentMode == ModeSidebar
}

// Quit signals the application to exit. Safe to call more than once.
func (mh *ModeHandler) Quit() {
	if mh.quitting {
		return
	}
	mh.quitting = true
	close(mh.quitSignal)
}

// QuitRequested asks before discarding unsaved changes.
func (mh *ModeHandler) QuitRequested() {
	if !mh.editor.IsModified() {
		mh.Quit()
		return
	}
	mh.Confirm("Quit", "The document has unsaved changes. Quit without saving?", mh.Quit, func() {
		mh.statusBar.SetTemporaryMessage("Quit cancelled")
	})
}

// ShowMessage opens a modal notice. The current mode resumes once it is
// dismissed, unless that mode was itself modal.
func (mh *ModeHandler) ShowMessage(msg *dialog.Message) {
	if mh.currentMode != ModeMessage {
		mh.modeAfterMessage = mh.currentMode
		switch mh.modeAfterMessage {
		case ModeCommand, ModePrompt, ModeConfirm, ModeSettings:
			mh.modeAfterMessage = ModeNormal
		}
	}
	mh.clearInput()
	mh.message = msg
	mh.setMode(ModeMessage)
}

// ShowError opens an error modal with text built like fmt.Sprintf.
func (mh *ModeHandler) ShowError(format string, args ...interface{}) {
	text := fmt.Sprintf(format, args...)
	logger.Warnf("ModeHandler: %s", text)
	mh.ShowMessage(dialog.NewError(text))
}

func (mh *ModeHandler) handleMessageKey(ev *tcell.EventKey) bool {
	if mh.message == nil || mh.message.HandleKey(ev) {
		mh.message = nil
		mh.setMode(mh.modeAfterMessage)
		mh.modeAfterMessage = ModeNormal
		return true
	}
	return false
}

// OpenSettings shows the settings form on current. onSave runs when the
// user saves.
func (mh *ModeHandler) OpenSettings(current settings.Settings, onSave func(settings.Settings)) {
	mh.editor.ClearSelection()
	mh.clearInput()
	mh.settings = settingsState{dialog: dialog.NewSettings(current), onSave: onSave}
	mh.setMode(ModeSettings)
}

type settingsState struct {
	dialog *dialog.Settings
	onSave func(settings.Settings)
}

func (mh *ModeHandler) handleSettingsKey(ev *tcell.EventKey) bool {
	st := mh.settings
	if st.dialog == nil {
		mh.setMode(ModeNormal)
		return true
	}
	switch st.dialog.HandleKey(ev) {
	case dialog.ResultSave:
		mh.settings = settingsState{}
		mh.setMode(ModeNormal)
		if st.onSave != nil {
			st.onSave(st.dialog.Value())
		}
	case dialog.ResultCancel:
		mh.settings = settingsState{}
		mh.setMode(ModeNormal)
		logger.Debugf("ModeHandler: settings dialog cancelled")
	}
	return true
}
