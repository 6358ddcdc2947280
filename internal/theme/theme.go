// Package theme maps UI elements and highlight styles to terminal styles.
package theme

import (
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/bethropolis/codepad/internal/highlighter"
	"github.com/bethropolis/codepad/internal/logger"
)

// Style names used by the renderer.
const (
	StyleDefault           = "Default"
	StyleSelection         = "Selection"
	StyleLineNumber        = "LineNumber"
	StyleStatusBar         = "StatusBar"
	StyleStatusBarModified = "StatusBarModified"
	StyleStatusBarMessage  = "StatusBarMessage"
	StyleStatusBarError    = "StatusBarError"
	StyleCommandLine       = "CommandLine"
	StyleSidebar           = "Sidebar"
	StyleSidebarSelected   = "Sidebar.selected"
	StyleSidebarBorder     = "Sidebar.border"
	StyleDialog            = "Dialog"
	StyleDialogTitle       = "Dialog.title"
	StyleDialogLabel       = "Dialog.label"
	StyleDialogInput       = "Dialog.input"
	StyleDialogFocused     = "Dialog.focused"
	StyleDialogButton      = "Dialog.button"
	StyleDialogError       = "Dialog.error"
)

type Theme struct {
	Name   string
	IsDark bool
	Styles map[string]tcell.Style
}

// GetStyle returns the named style, falling back to the part before the
// first dot, then to Default.
func (t *Theme) GetStyle(name string) tcell.Style {
	if style, ok := t.Styles[name]; ok {
		return style
	}
	if dot := strings.Index(name, "."); dot != -1 {
		if style, ok := t.Styles[name[:dot]]; ok {
			return style
		}
	}
	if def, ok := t.Styles[StyleDefault]; ok {
		return def
	}
	logger.Warnf("Theme '%s': Style '%s' and 'Default' style not found, using tcell default.", t.Name, name)
	return tcell.StyleDefault
}

// Syntax converts a highlight style onto the theme's text style. An empty
// or unparsable foreground keeps the default text color.
func (t *Theme) Syntax(s highlighter.Style) tcell.Style {
	style := t.GetStyle(StyleDefault)
	if s.Foreground != "" {
		if c := tcell.GetColor(s.Foreground); c != tcell.ColorDefault {
			style = style.Foreground(c)
		}
	}
	if s.Bold {
		style = style.Bold(true)
	}
	return style
}
