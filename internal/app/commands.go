package app

import (
	"bytes"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/bethropolis/codepad/internal/event"
	"github.com/bethropolis/codepad/internal/logger"
	"github.com/bethropolis/codepad/internal/settings"
)

// registerAppCommands registers the commands that need more than the
// editor: files, printing, settings, zoom and themes. Keys reach them
// through the same names.
func (a *App) registerAppCommands() {
	commands := map[string]func(args []string) error{
		"new": func(args []string) error {
			a.newFile()
			return nil
		},
		"e": func(args []string) error {
			if len(args) == 0 {
				a.promptOpen()
				return nil
			}
			a.openFile(strings.Join(args, " "))
			return nil
		},
		"w": func(args []string) error {
			a.saveFile(strings.Join(args, " "))
			return nil
		},
		"saveas": func(args []string) error {
			if len(args) == 0 {
				a.promptSaveAs()
				return nil
			}
			a.saveFile(strings.Join(args, " "))
			return nil
		},
		"print": func(args []string) error {
			a.printDocument()
			return nil
		},
		"settings": func(args []string) error {
			a.openSettings()
			return nil
		},
		"zoomin": func(args []string) error {
			a.setFontSize(a.fontSize + 1)
			return nil
		},
		"zoomout": func(args []string) error {
			a.setFontSize(a.fontSize - 1)
			return nil
		},
		"theme":  a.themeCommand,
		"themes": a.themesCommand,
		"wc":     a.wordCountCommand,
	}
	for name, fn := range commands {
		if err := a.modeHandler.RegisterCommand(name, fn); err != nil {
			logger.Warnf("Failed to register ':%s' command: %v", name, err)
		}
	}
}

func (a *App) themeCommand(args []string) error {
	if len(args) == 0 {
		a.statusBar.SetTemporaryMessage("Current theme: %s", a.themeManager.Current().Name)
		return nil
	}
	name := strings.Join(args, " ")
	if err := a.themeManager.SetTheme(name); err != nil {
		return fmt.Errorf("theme '%s' not found. Available: %s", name, strings.Join(a.themeManager.ListThemes(), ", "))
	}
	current := a.themeManager.Current()
	a.tuiManager.ApplyTheme(current)
	a.eventManager.Dispatch(event.TypeThemeChanged, event.ThemeChangedData{Name: current.Name})
	a.statusBar.SetTemporaryMessage("Theme set to: %s", current.Name)
	return nil
}

func (a *App) themesCommand(args []string) error {
	a.statusBar.SetTemporaryMessage("Available themes: %s", strings.Join(a.themeManager.ListThemes(), ", "))
	return nil
}

// wordCountCommand reports document statistics.
func (a *App) wordCountCommand(args []string) error {
	text := a.editor.GetBuffer().Bytes()
	a.statusBar.SetTemporaryMessage("Lines: %d, Words: %d, Characters: %d",
		a.editor.GetBuffer().LineCount(), len(bytes.Fields(text)), utf8.RuneCount(text))
	return nil
}

// setFontSize changes the zoom level. It never goes below the smallest
// font size; there is no upper bound.
func (a *App) setFontSize(size int) {
	if size < settings.MinFontSize {
		size = settings.MinFontSize
	}
	if size == a.fontSize {
		return
	}
	a.fontSize = size
	a.statusBar.SetFontSize(size)
	a.eventManager.Dispatch(event.TypeZoomChanged, event.ZoomChangedData{FontSize: size})
}

// openSettings shows the settings form filled from the store.
func (a *App) openSettings() {
	current, err := a.store.Load()
	if err != nil {
		logger.Warnf("App: loading settings: %v", err)
		current = a.prefs
	}
	a.modeHandler.OpenSettings(current.Clamp(), a.saveSettings)
}

func (a *App) saveSettings(st settings.Settings) {
	st = st.Clamp()
	if err := a.store.Save(st); err != nil {
		a.modeHandler.ShowError("Could not save settings: %v", err)
		return
	}
	a.applySettings(st)
	a.statusBar.SetTemporaryMessage("Settings saved")
}

// reloadSettings re-reads the store after the file changed on disk.
func (a *App) reloadSettings() {
	st, err := a.store.Load()
	if err != nil {
		a.statusBar.SetErrorMessage("Could not reload settings: %v", err)
		return
	}
	st = st.Clamp()
	if st == a.prefs {
		return
	}
	a.applySettings(st)
	a.statusBar.SetTemporaryMessage("Settings reloaded")
}

// applySettings puts editor preferences into effect. The zoom level is
// reset to the saved font size.
func (a *App) applySettings(st settings.Settings) {
	a.prefs = st
	a.editor.SetTabWidth(st.TabWidth)
	a.fontSize = st.FontSize
	a.statusBar.SetFontSize(st.FontSize)
	a.eventManager.Dispatch(event.TypeSettingsChanged, event.SettingsChangedData{Settings: st})
}
