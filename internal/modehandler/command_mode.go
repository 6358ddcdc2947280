package modehandler

import (
	"fmt"
	"sort"
	"strings"

	"github.com/bethropolis/codepad/internal/input"
	"github.com/bethropolis/codepad/internal/logger"
)

// handleActionCommand handles actions when in ModeCommand.
func (mh *ModeHandler) handleActionCommand(actionEvent input.ActionEvent) bool {
	switch actionEvent.Action {
	case input.ActionInsertRune:
		mh.cmdBuffer = append(mh.cmdBuffer, actionEvent.Rune)

	case input.ActionDeleteCharBackward:
		if n := len(mh.cmdBuffer); n > 0 {
			mh.cmdBuffer = mh.cmdBuffer[:n-1]
		} else {
			mh.clearInput()
			mh.setMode(ModeNormal)
			logger.Debugf("ModeHandler: Exiting Command Mode via Backspace")
			return true
		}

	case input.ActionInsertNewLine:
		cmd := string(mh.cmdBuffer)
		mh.clearInput()
		mh.setMode(ModeNormal)
		mh.executeCommand(cmd)
		return true

	case input.ActionEscape:
		mh.clearInput()
		mh.setMode(ModeNormal)
		logger.Debugf("ModeHandler: Canceled Command Mode via Escape")
		return true

	default:
		return false
	}
	mh.statusBar.SetInput(":", string(mh.cmdBuffer))
	return true
}

// executeCommand parses a command line and runs it.
func (mh *ModeHandler) executeCommand(cmdStr string) {
	parts := strings.Fields(cmdStr)
	if len(parts) == 0 {
		return
	}
	mh.runCommand(parts[0], parts[1:])
}

func (mh *ModeHandler) runCommand(name string, args []string) {
	cmdFunc, exists := mh.commands[name]
	if !exists {
		mh.statusBar.SetErrorMessage("Unknown command: %s", name)
		return
	}
	logger.Debugf("ModeHandler: Executing command ':%s' with args %v", name, args)
	if err := cmdFunc(args); err != nil {
		logger.Warnf("ModeHandler: command ':%s' failed: %v", name, err)
		mh.statusBar.SetErrorMessage("Error executing command '%s': %v", name, err)
	}
}

// RunCommand executes a registered command by name.
func (mh *ModeHandler) RunCommand(name string, args ...string) {
	mh.runCommand(name, args)
}

// RegisterCommand adds a command to the registry.
func (mh *ModeHandler) RegisterCommand(name string, cmdFunc CommandFunc) error {
	if name == "" {
		return fmt.Errorf("command name cannot be empty")
	}
	if cmdFunc == nil {
		return fmt.Errorf("command '%s' has no function", name)
	}
	if _, exists := mh.commands[name]; exists {
		return fmt.Errorf("command '%s' already registered", name)
	}
	mh.commands[name] = cmdFunc
	logger.Debugf("ModeHandler: Registered command ':%s'", name)
	return nil
}

// Commands lists registered command names, sorted.
func (mh *ModeHandler) Commands() []string {
	names := make([]string, 0, len(mh.commands))
	for name := range mh.commands {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// registerBuiltinCommands registers the commands that need only the
// editor and the mode handler itself.
func (mh *ModeHandler) registerBuiltinCommands() {
	builtins := map[string]CommandFunc{
		"undo": func([]string) error {
			mh.undo()
			return nil
		},
		"redo": func([]string) error {
			mh.redo()
			return nil
		},
		"q": func([]string) error {
			mh.QuitRequested()
			return nil
		},
		"q!": func([]string) error {
			mh.Quit()
			return nil
		},
		"files": func([]string) error {
			mh.ToggleSidebar()
			return nil
		},
	}
	for name, fn := range builtins {
		if err := mh.RegisterCommand(name, fn); err != nil {
			logger.Warnf("Failed to register ':%s' command: %v", name, err)
		}
	}
}
