package input

import (
	"github.com/gdamore/tcell/v2"
)

// Keymap maps special keys to actions.
type Keymap map[tcell.Key]Action

// RuneKeymap maps runes to actions.
type RuneKeymap map[rune]Action

// ModKeymap maps special keys pressed with a modifier.
type ModKeymap map[tcell.ModMask]Keymap

// ModRuneKeymap maps runes pressed with a modifier (Alt+=).
type ModRuneKeymap map[tcell.ModMask]RuneKeymap

// InputProcessor translates tcell key events into ActionEvents. It knows
// nothing about modes; the mode handler decides what an action means.
type InputProcessor struct {
	keymap        Keymap
	modKeymap     ModKeymap
	modRuneKeymap ModRuneKeymap
}

// NewInputProcessor creates a processor with the default bindings.
func NewInputProcessor() *InputProcessor {
	p := &InputProcessor{
		keymap:        make(Keymap),
		modKeymap:     make(ModKeymap),
		modRuneKeymap: make(ModRuneKeymap),
	}
	p.loadDefaultBindings()
	return p
}

func (p *InputProcessor) loadDefaultBindings() {
	// Navigation
	p.keymap[tcell.KeyUp] = ActionMoveUp
	p.keymap[tcell.KeyDown] = ActionMoveDown
	p.keymap[tcell.KeyLeft] = ActionMoveLeft
	p.keymap[tcell.KeyRight] = ActionMoveRight
	p.keymap[tcell.KeyPgUp] = ActionMovePageUp
	p.keymap[tcell.KeyPgDn] = ActionMovePageDown
	p.keymap[tcell.KeyHome] = ActionMoveHome
	p.keymap[tcell.KeyEnd] = ActionMoveEnd

	// Editing
	p.keymap[tcell.KeyEnter] = ActionInsertNewLine
	p.keymap[tcell.KeyTab] = ActionInsertTab
	p.keymap[tcell.KeyBackspace] = ActionDeleteCharBackward
	p.keymap[tcell.KeyBackspace2] = ActionDeleteCharBackward
	p.keymap[tcell.KeyDelete] = ActionDeleteCharForward
	p.keymap[tcell.KeyEscape] = ActionEscape

	// Ctrl+letter arrives as its own key code.
	p.keymap[tcell.KeyCtrlN] = ActionNew
	p.keymap[tcell.KeyCtrlO] = ActionOpen
	p.keymap[tcell.KeyCtrlS] = ActionSave
	p.keymap[tcell.KeyCtrlP] = ActionPrint
	p.keymap[tcell.KeyCtrlQ] = ActionQuit
	p.keymap[tcell.KeyCtrlZ] = ActionUndo
	p.keymap[tcell.KeyCtrlY] = ActionRedo
	p.keymap[tcell.KeyCtrlX] = ActionCut
	p.keymap[tcell.KeyCtrlC] = ActionCopy
	p.keymap[tcell.KeyCtrlV] = ActionPaste
	p.keymap[tcell.KeyCtrlA] = ActionSelectAll

	p.keymap[tcell.KeyF2] = ActionSettings
	p.keymap[tcell.KeyF3] = ActionToggleFileList
	p.keymap[tcell.KeyF12] = ActionSaveAs

	ctrlMap := make(Keymap)
	ctrlMap[tcell.KeyHome] = ActionMoveDocumentStart
	ctrlMap[tcell.KeyEnd] = ActionMoveDocumentEnd
	p.modKeymap[tcell.ModCtrl] = ctrlMap
	p.modKeymap[tcell.ModCtrl|tcell.ModShift] = ctrlMap

	altRunes := make(RuneKeymap)
	altRunes['='] = ActionZoomIn
	altRunes['+'] = ActionZoomIn
	altRunes['-'] = ActionZoomOut
	p.modRuneKeymap[tcell.ModAlt] = altRunes
}

// ProcessEvent decodes ev into an ActionEvent.
func (p *InputProcessor) ProcessEvent(ev *tcell.EventKey) ActionEvent {
	key := ev.Key()
	mod := ev.Modifiers()
	shift := mod&tcell.ModShift != 0

	if key == tcell.KeyRune {
		if mod&(tcell.ModAlt|tcell.ModCtrl) != 0 {
			if runeMap, ok := p.modRuneKeymap[mod&^tcell.ModShift]; ok {
				if action, ok := runeMap[ev.Rune()]; ok {
					return ActionEvent{Action: action}
				}
			}
			return ActionEvent{Action: ActionUnknown}
		}
		return ActionEvent{Action: ActionInsertRune, Rune: ev.Rune()}
	}

	// Modifier + key (Ctrl+Home).
	if modMap, ok := p.modKeymap[mod]; ok {
		if action, ok := modMap[key]; ok {
			return ActionEvent{Action: action, Shift: shift}
		}
	}

	if action, ok := p.keymap[key]; ok {
		return ActionEvent{Action: action, Shift: shift && action.IsMovement()}
	}
	return ActionEvent{Action: ActionUnknown}
}

// Bind maps key to action, replacing any default.
func (p *InputProcessor) Bind(key tcell.Key, action Action) {
	p.keymap[key] = action
}
