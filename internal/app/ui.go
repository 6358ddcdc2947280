package app

import (
	"github.com/bethropolis/codepad/internal/dialog"
	"github.com/bethropolis/codepad/internal/logger"
	"github.com/bethropolis/codepad/internal/tui"
)

// layout computes the screen regions for the current state.
func (a *App) layout() tui.Layout {
	width, height := a.tuiManager.Size()
	return tui.ComputeLayout(width, height, a.sidebar.Width(width),
		a.editor.GetBuffer().LineCount(), a.prefs.LineNumbers)
}

// drawEditor clears screen and redraws all components.
func (a *App) drawEditor() {
	a.updateStatusBarContent()

	th := a.themeManager.Current()
	screen := a.tuiManager.GetScreen()
	l := a.layout()
	a.editor.SetViewSize(l.TextWidth, l.TextHeight)

	logger.DebugTagf("draw", "drawEditor: screen %dx%d, sidebar %d, gutter %d, text %dx%d",
		l.Width, l.Height, l.SidebarWidth, l.GutterWidth, l.TextWidth, l.TextHeight)

	a.tuiManager.Clear()
	if l.SidebarWidth > 0 {
		a.sidebar.Draw(screen, l.SidebarWidth, l.TextHeight, a.modeHandler.SidebarFocused(), th)
	}
	tui.DrawBuffer(screen, a.editor, th, l)
	a.statusBar.Draw(screen, l.Width, l.Height, th)
	a.shownMessage = a.statusBar.Message()

	switch {
	case a.modeHandler.Overlay() != nil:
		overlay := a.modeHandler.Overlay()
		overlay.Draw(screen, th)
		if c, ok := overlay.(dialog.Cursorer); ok {
			if x, y, show := c.Cursor(); show {
				screen.ShowCursor(x, y)
				break
			}
		}
		screen.HideCursor()
	case a.modeHandler.SidebarFocused():
		screen.HideCursor()
	default:
		if x, ok := a.statusBar.InputCursor(); ok {
			if x >= l.Width {
				x = l.Width - 1
			}
			screen.ShowCursor(x, l.Height-1)
		} else {
			tui.DrawCursor(screen, a.editor, l)
		}
	}
	a.tuiManager.Show()
}

// updateStatusBarContent pushes current editor state to the status bar component.
func (a *App) updateStatusBarContent() {
	a.statusBar.SetFileInfo(a.editor.FilePath(), a.editor.IsModified())
	a.statusBar.SetCursorInfo(a.editor.GetCursor())
	a.statusBar.SetEditorMode(a.modeHandler.GetCurrentModeString())
	a.statusBar.SetFontSize(a.fontSize)
	if a.language != nil {
		a.statusBar.SetLanguage(a.language.Name)
	}
}
