package dialog

import (
	"strconv"

	"github.com/gdamore/tcell/v2"

	"github.com/bethropolis/codepad/internal/settings"
	"github.com/bethropolis/codepad/internal/theme"
	"github.com/bethropolis/codepad/internal/utils"
)

// Result is the outcome of a settings dialog key press.
type Result int

const (
	ResultNone Result = iota
	ResultSave
	ResultCancel
)

type fieldKind int

const (
	kindChoice fieldKind = iota
	kindText
	kindSecret
	kindNumber
	kindCheck
	kindSave
	kindCancel
)

type field struct {
	group    string // heading drawn above the first field of a group
	label    string
	kind     fieldKind
	min, max int

	str  func(s *settings.Settings) *string
	num  func(s *settings.Settings) *int
	flag func(s *settings.Settings) *bool
}

func (f field) editable() bool { return f.kind == kindText || f.kind == kindSecret }

var settingsFields = []field{
	{group: "API Configuration", label: "API Provider:", kind: kindChoice,
		str: func(s *settings.Settings) *string { return &s.APIProvider }},
	{label: "API Key:", kind: kindSecret,
		str: func(s *settings.Settings) *string { return &s.APIKey }},
	{label: "API URL:", kind: kindText,
		str: func(s *settings.Settings) *string { return &s.APIURL }},
	{group: "Telegram Configuration", label: "Telegram Token:", kind: kindSecret,
		str: func(s *settings.Settings) *string { return &s.TelegramToken }},
	{label: "Chat ID:", kind: kindText,
		str: func(s *settings.Settings) *string { return &s.TelegramChatID }},
	{group: "Editor Settings", label: "Font Size:", kind: kindNumber,
		min: settings.MinFontSize, max: settings.MaxFontSize,
		num: func(s *settings.Settings) *int { return &s.FontSize }},
	{label: "Tab Width:", kind: kindNumber,
		min: settings.MinTabWidth, max: settings.MaxTabWidth,
		num: func(s *settings.Settings) *int { return &s.TabWidth }},
	{label: "Show Line Numbers", kind: kindCheck,
		flag: func(s *settings.Settings) *bool { return &s.LineNumbers }},
	{label: "Save", kind: kindSave},
	{label: "Cancel", kind: kindCancel},
}

const (
	settingsWidth = 60
	labelWidth    = 18
)

// Settings is the preferences form. It edits a copy; the caller reads
// Value after ResultSave.
type Settings struct {
	values settings.Settings
	focus  int

	cursorX, cursorY int
	cursorOK         bool
}

// NewSettings opens the form on a copy of current.
func NewSettings(current settings.Settings) *Settings {
	return &Settings{values: current.Clamp()}
}

// Value returns the edited preferences.
func (d *Settings) Value() settings.Settings {
	return d.values.Clamp()
}

// Focused returns the label of the focused field.
func (d *Settings) Focused() string {
	return settingsFields[d.focus].label
}

func (d *Settings) moveFocus(step int) {
	n := len(settingsFields)
	d.focus = ((d.focus+step)%n + n) % n
}

// HandleKey applies one key press to the form.
func (d *Settings) HandleKey(ev *tcell.EventKey) Result {
	f := settingsFields[d.focus]

	switch ev.Key() {
	case tcell.KeyEscape:
		return ResultCancel
	case tcell.KeyEnter:
		if f.kind == kindCancel {
			return ResultCancel
		}
		return ResultSave
	case tcell.KeyTab, tcell.KeyDown:
		d.moveFocus(1)
	case tcell.KeyBacktab, tcell.KeyUp:
		d.moveFocus(-1)
	case tcell.KeyLeft:
		d.step(f, -1)
	case tcell.KeyRight:
		d.step(f, 1)
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if f.editable() {
			s := f.str(&d.values)
			if r := []rune(*s); len(r) > 0 {
				*s = string(r[:len(r)-1])
			}
		}
	case tcell.KeyRune:
		return d.handleRune(f, ev.Rune())
	}
	return ResultNone
}

func (d *Settings) handleRune(f field, r rune) Result {
	switch f.kind {
	case kindText, kindSecret:
		s := f.str(&d.values)
		*s += string(r)
	case kindCheck:
		if r == ' ' {
			b := f.flag(&d.values)
			*b = !*b
		}
	case kindSave:
		if r == ' ' {
			return ResultSave
		}
	case kindCancel:
		if r == ' ' {
			return ResultCancel
		}
	}
	return ResultNone
}

// step handles Left/Right: cycle the provider, step a number, or move
// between the buttons.
func (d *Settings) step(f field, dir int) {
	switch f.kind {
	case kindChoice:
		s := f.str(&d.values)
		*s = settings.NextProvider(*s, dir)
	case kindNumber:
		n := f.num(&d.values)
		v := *n + dir
		if v >= f.min && v <= f.max {
			*n = v
		}
	case kindSave, kindCancel:
		d.moveFocus(dir)
		if k := settingsFields[d.focus].kind; k != kindSave && k != kindCancel {
			d.moveFocus(-dir)
		}
	}
}

func (d *Settings) displayValue(f field) string {
	switch f.kind {
	case kindChoice:
		return "< " + *f.str(&d.values) + " >"
	case kindText:
		return *f.str(&d.values)
	case kindSecret:
		return settings.Mask(*f.str(&d.values))
	case kindNumber:
		return "< " + strconv.Itoa(*f.num(&d.values)) + " >"
	case kindCheck:
		if *f.flag(&d.values) {
			return "[x] " + f.label
		}
		return "[ ] " + f.label
	}
	return ""
}

// Cursor is the text cursor in the focused text field, if any.
func (d *Settings) Cursor() (int, int, bool) {
	return d.cursorX, d.cursorY, d.cursorOK
}

func (d *Settings) rows() int {
	rows := 0
	for _, f := range settingsFields {
		if f.kind == kindCancel {
			continue
		}
		if f.group != "" {
			rows += 2 // heading plus a blank line before it
		}
		rows++
	}
	return rows + 1 // blank before the buttons
}

func (d *Settings) Draw(screen tcell.Screen, th *theme.Theme) {
	r := centered(screen, settingsWidth, d.rows()+2)
	drawFrame(screen, r, "Settings", th)
	d.cursorOK = false

	label := th.GetStyle(theme.StyleDialogLabel)
	heading := th.GetStyle(theme.StyleDialogTitle)
	input := th.GetStyle(theme.StyleDialogInput)
	focused := th.GetStyle(theme.StyleDialogFocused)
	button := th.GetStyle(theme.StyleDialogButton)

	inner := r.W - 4
	valueX := r.X + 2 + labelWidth
	valueW := r.X + r.W - 2 - valueX
	bottom := r.Y + r.H - 1

	y := r.Y
	buttonX := 0
	for i, f := range settingsFields {
		style := input
		if i == d.focus {
			style = focused
		}
		switch f.kind {
		case kindSave, kindCancel:
			if f.kind == kindSave {
				y += 2
				buttonX = r.X + (r.W-utils.StringWidth("[ Save ]  [ Cancel ]"))/2
			}
			if y >= bottom {
				continue
			}
			if i != d.focus {
				style = button
			}
			buttonX += utils.DrawString(screen, buttonX, y, r.X+r.W-1-buttonX, "[ "+f.label+" ]", style)
			buttonX += 2
			continue
		}

		if f.group != "" {
			y += 2
			if y < bottom {
				utils.DrawString(screen, r.X+2, y, inner, f.group, heading)
			}
		}
		y++
		if y >= bottom || valueW <= 0 {
			continue
		}

		if f.kind == kindCheck {
			utils.DrawString(screen, valueX, y, valueW, d.displayValue(f), style)
			continue
		}
		utils.DrawString(screen, r.X+2, y, labelWidth, f.label, label)
		utils.FillRow(screen, valueX, y, valueW, style)
		used := utils.DrawString(screen, valueX, y, valueW, d.displayValue(f), style)
		if i == d.focus && f.editable() && used < valueW {
			d.cursorX, d.cursorY, d.cursorOK = valueX+used, y, true
		}
	}
}
