// Package tui owns the tcell screen and draws the document area.
package tui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/bethropolis/codepad/internal/theme"
)

// TUI manages the terminal screen using tcell.
type TUI struct {
	screen tcell.Screen
}

// New creates and initializes a terminal screen.
func New() (*TUI, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("failed to create tcell screen: %w", err)
	}
	return NewWithScreen(s)
}

// NewWithScreen wraps an existing screen (a SimulationScreen in tests).
func NewWithScreen(s tcell.Screen) (*TUI, error) {
	if err := s.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize tcell screen: %w", err)
	}
	return &TUI{screen: s}, nil
}

// ApplyTheme sets the screen's base style.
func (t *TUI) ApplyTheme(th *theme.Theme) {
	t.screen.SetStyle(th.GetStyle(theme.StyleDefault))
}

// SetTitle sets the terminal window title where the screen supports it.
func (t *TUI) SetTitle(title string) {
	if ts, ok := t.screen.(interface{ SetTitle(string) }); ok {
		ts.SetTitle(title)
	}
}

// ChannelEvents starts forwarding screen events to ch until quit closes.
func (t *TUI) ChannelEvents(ch chan<- tcell.Event, quit <-chan struct{}) {
	go t.screen.ChannelEvents(ch, quit)
}

// Close finalizes the tcell screen.
func (t *TUI) Close() {
	if t.screen != nil {
		t.screen.Fini()
	}
}

// Clear clears the entire screen.
func (t *TUI) Clear() {
	t.screen.Clear()
}

// Show makes the changes visible.
func (t *TUI) Show() {
	t.screen.Show()
}

// Sync redraws everything, used after a resize.
func (t *TUI) Sync() {
	t.screen.Sync()
}

// Size returns the width and height of the terminal screen.
func (t *TUI) Size() (int, int) {
	return t.screen.Size()
}

// GetScreen provides direct access to the screen.
func (t *TUI) GetScreen() tcell.Screen {
	return t.screen
}
