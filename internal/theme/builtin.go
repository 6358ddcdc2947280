package theme

import "github.com/gdamore/tcell/v2"

// Accurate is the red and gold palette codepad ships with.
var Accurate Theme

// DevComfortDark is a muted dark palette.
var DevComfortDark Theme

func init() {
	darkRed := tcell.NewHexColor(0x8B0000)
	red := tcell.NewHexColor(0xFF0000)
	gold := tcell.NewHexColor(0xFFD700)
	salmon := tcell.NewHexColor(0xFF6B6B)
	editorBg := tcell.NewHexColor(0x1E1E1E)
	windowBg := tcell.NewHexColor(0x2B2B2B)
	white := tcell.NewHexColor(0xFFFFFF)
	grey := tcell.NewHexColor(0x808080)

	text := tcell.StyleDefault.Background(editorBg).Foreground(white)
	chrome := tcell.StyleDefault.Background(darkRed).Foreground(gold)

	Accurate = Theme{
		Name:   "Accurate",
		IsDark: true,
		Styles: map[string]tcell.Style{
			StyleDefault:           text,
			StyleSelection:         text.Background(salmon).Foreground(tcell.ColorBlack),
			StyleLineNumber:        text.Foreground(grey),
			StyleStatusBar:         chrome,
			StyleStatusBarModified: chrome.Bold(true),
			StyleStatusBarMessage:  chrome.Bold(true),
			StyleStatusBarError:    tcell.StyleDefault.Background(red).Foreground(white).Bold(true),
			StyleCommandLine:       text,
			StyleSidebar:           text,
			StyleSidebarSelected:   text.Background(salmon).Foreground(tcell.ColorBlack),
			StyleSidebarBorder:     text.Foreground(darkRed),
			StyleDialog:            tcell.StyleDefault.Background(windowBg).Foreground(white),
			StyleDialogTitle:       tcell.StyleDefault.Background(windowBg).Foreground(gold).Bold(true),
			StyleDialogLabel:       tcell.StyleDefault.Background(windowBg).Foreground(gold),
			StyleDialogInput:       text,
			StyleDialogFocused:     text.Background(salmon).Foreground(tcell.ColorBlack),
			StyleDialogButton:      chrome,
			StyleDialogError:       tcell.StyleDefault.Background(windowBg).Foreground(salmon).Bold(true),
		},
	}

	dcBackground := tcell.NewHexColor(0x2a2f38)
	dcForeground := tcell.NewHexColor(0xc5cdd9)
	dcComment := tcell.NewHexColor(0x5c6370)
	dcYellow := tcell.NewHexColor(0xe5c07b)
	dcGreen := tcell.NewHexColor(0x98c379)
	dcBlue := tcell.NewHexColor(0x61afef)
	dcRed := tcell.NewHexColor(0xe06c75)

	base := tcell.StyleDefault.Background(tcell.ColorReset).Foreground(dcForeground)
	bar := tcell.StyleDefault.Background(dcBackground).Foreground(dcForeground)

	DevComfortDark = Theme{
		Name:   "DevComfort Dark",
		IsDark: true,
		Styles: map[string]tcell.Style{
			StyleDefault:           base,
			StyleSelection:         base.Reverse(true),
			StyleLineNumber:        base.Foreground(dcComment),
			StyleStatusBar:         bar,
			StyleStatusBarModified: bar.Foreground(dcYellow),
			StyleStatusBarMessage:  bar.Bold(true),
			StyleStatusBarError:    bar.Foreground(dcRed).Bold(true),
			StyleCommandLine:       base,
			StyleSidebar:           base,
			StyleSidebarSelected:   base.Reverse(true),
			StyleSidebarBorder:     base.Foreground(dcComment),
			StyleDialog:            bar,
			StyleDialogTitle:       bar.Foreground(dcBlue).Bold(true),
			StyleDialogLabel:       bar.Foreground(dcGreen),
			StyleDialogInput:       base,
			StyleDialogFocused:     base.Reverse(true),
			StyleDialogButton:      bar.Foreground(dcYellow),
			StyleDialogError:       bar.Foreground(dcRed).Bold(true),
		},
	}
}
