package dialog

import (
	"github.com/gdamore/tcell/v2"

	"github.com/bethropolis/codepad/internal/theme"
	"github.com/bethropolis/codepad/internal/utils"
)

const (
	minBoxWidth = 30
	maxBoxWidth = 70
)

// Message is a modal notice dismissed with Enter, Esc or Space.
type Message struct {
	Title string
	Text  string
	// Error draws the text in the error style.
	Error bool
}

// NewError builds the modal used for failed file and print operations.
func NewError(text string) *Message {
	return &Message{Title: "Error", Text: text, Error: true}
}

// HandleKey reports whether ev dismisses the message.
func (m *Message) HandleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEnter, tcell.KeyEscape:
		return true
	case tcell.KeyRune:
		return ev.Rune() == ' '
	}
	return false
}

func (m *Message) Draw(screen tcell.Screen, th *theme.Theme) {
	width := boxWidth(screen, m.Text)
	lines := wrap(m.Text, width-4)
	r := centered(screen, width, len(lines)+4)
	drawFrame(screen, r, m.Title, th)

	textStyle := th.GetStyle(theme.StyleDialog)
	if m.Error {
		textStyle = th.GetStyle(theme.StyleDialogError)
	}
	for i, line := range lines {
		y := r.Y + 1 + i
		if y >= r.Y+r.H-3 {
			break
		}
		utils.DrawString(screen, r.X+2, y, r.W-4, line, textStyle)
	}
	centerText(screen, r, r.Y+r.H-2, "[ OK ]", th.GetStyle(theme.StyleDialogFocused))
}

func boxWidth(screen tcell.Screen, text string) int {
	sw, _ := screen.Size()
	w := utils.StringWidth(text) + 4
	if w < minBoxWidth {
		w = minBoxWidth
	}
	if w > maxBoxWidth {
		w = maxBoxWidth
	}
	if w > sw-2 {
		w = sw - 2
	}
	return w
}

// Answer is the outcome of a confirmation key press.
type Answer int

const (
	AnswerNone Answer = iota
	AnswerYes
	AnswerNo
)

// Confirm is a yes/no question.
type Confirm struct {
	Title    string
	Question string
}

// HandleKey maps y/Enter to yes and n/Esc to no.
func (c *Confirm) HandleKey(ev *tcell.EventKey) Answer {
	switch ev.Key() {
	case tcell.KeyEnter:
		return AnswerYes
	case tcell.KeyEscape:
		return AnswerNo
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'y', 'Y':
			return AnswerYes
		case 'n', 'N':
			return AnswerNo
		}
	}
	return AnswerNone
}

func (c *Confirm) Draw(screen tcell.Screen, th *theme.Theme) {
	width := boxWidth(screen, c.Question)
	lines := wrap(c.Question, width-4)
	r := centered(screen, width, len(lines)+4)
	drawFrame(screen, r, c.Title, th)

	for i, line := range lines {
		y := r.Y + 1 + i
		if y >= r.Y+r.H-3 {
			break
		}
		utils.DrawString(screen, r.X+2, y, r.W-4, line, th.GetStyle(theme.StyleDialog))
	}
	centerText(screen, r, r.Y+r.H-2, "[Y]es   [N]o", th.GetStyle(theme.StyleDialogButton))
}
