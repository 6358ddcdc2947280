package app

import (
	"github.com/bethropolis/codepad/internal/event"
	"github.com/bethropolis/codepad/internal/logger"
)

func (a *App) subscribeEvents() {
	a.eventManager.Subscribe(event.TypeCursorMoved, a.handleCursorMovedForStatus)
	a.eventManager.Subscribe(event.TypeBufferLoaded, a.handleBufferLoaded)
	a.eventManager.Subscribe(event.TypeBufferSaved, a.handleBufferSaved)
	a.eventManager.Subscribe(event.TypeBufferCreated, a.handleBufferCreated)
	a.eventManager.Subscribe(event.TypeModeChanged, a.handleModeChanged)
}

// handleCursorMovedForStatus updates the status bar based on cursor position
func (a *App) handleCursorMovedForStatus(e event.Event) bool {
	if data, ok := e.Data.(event.CursorMovedData); ok {
		a.statusBar.SetCursorInfo(data.NewPosition)
	}
	return false
}

// handleBufferLoaded records the file in the file list and retitles.
func (a *App) handleBufferLoaded(e event.Event) bool {
	if data, ok := e.Data.(event.BufferLoadedData); ok {
		a.rememberFile(data.FilePath)
	}
	a.updateStatusBarContent()
	a.updateTitle()
	return false
}

func (a *App) handleBufferSaved(e event.Event) bool {
	a.updateStatusBarContent()
	a.updateTitle()
	return false
}

func (a *App) handleBufferCreated(e event.Event) bool {
	a.updateStatusBarContent()
	a.updateTitle()
	return false
}

func (a *App) handleModeChanged(e event.Event) bool {
	if data, ok := e.Data.(event.ModeChangedData); ok {
		logger.DebugTagf("mode", "App: mode %s", data.Mode)
	}
	a.statusBar.SetEditorMode(a.modeHandler.GetCurrentModeString())
	return false
}

func (a *App) rememberFile(path string) {
	if path == "" {
		return
	}
	a.sidebar.Add(path)
	a.sidebar.Select(path)
}
