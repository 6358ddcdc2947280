// Package sidebar is the session file list shown to the left of the
// editor. Files are added when opened or saved under a new name; opening
// an entry re-reads it from disk.
package sidebar

import (
	"path/filepath"

	"github.com/gdamore/tcell/v2"
	"github.com/samber/lo"

	"github.com/bethropolis/codepad/internal/logger"
	"github.com/bethropolis/codepad/internal/theme"
	"github.com/bethropolis/codepad/internal/utils"
)

const (
	// MinWidth is the narrowest the list is drawn.
	MinWidth = 20
	// MaxWidth caps the list on wide terminals.
	MaxWidth = 40
)

// Sidebar holds the session's file list and its selection.
type Sidebar struct {
	files    []string
	selected int
	offset   int // first visible entry
	visible  bool
}

// New creates an empty, hidden sidebar.
func New() *Sidebar {
	return &Sidebar{}
}

// Add appends path unless it is already listed. Returns true if added.
func (s *Sidebar) Add(path string) bool {
	if path == "" {
		return false
	}
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	if lo.Contains(s.files, path) {
		return false
	}
	s.files = append(s.files, path)
	logger.DebugTagf("sidebar", "added %s (%d files)", path, len(s.files))
	return true
}

// Files returns the listed paths in insertion order.
func (s *Sidebar) Files() []string {
	return append([]string(nil), s.files...)
}

// Len is the number of listed files.
func (s *Sidebar) Len() int { return len(s.files) }

// Select moves the selection to path if listed.
func (s *Sidebar) Select(path string) {
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	if idx := lo.IndexOf(s.files, path); idx >= 0 {
		s.selected = idx
	}
}

// Selected returns the selected path, if any.
func (s *Sidebar) Selected() (string, bool) {
	if s.selected < 0 || s.selected >= len(s.files) {
		return "", false
	}
	return s.files[s.selected], true
}

// Move shifts the selection by delta, clamped to the list.
func (s *Sidebar) Move(delta int) {
	if len(s.files) == 0 {
		return
	}
	s.selected = lo.Clamp(s.selected+delta, 0, len(s.files)-1)
}

// Visible reports whether the list is shown.
func (s *Sidebar) Visible() bool { return s.visible }

// SetVisible shows or hides the list.
func (s *Sidebar) SetVisible(v bool) { s.visible = v }

// Width is the number of columns the sidebar takes on a screen of
// screenWidth columns, border included. Zero when hidden.
func (s *Sidebar) Width(screenWidth int) int {
	if !s.visible {
		return 0
	}
	w := lo.Clamp(screenWidth/5, MinWidth, MaxWidth)
	if w >= screenWidth/2 {
		return 0
	}
	return w
}

// labels returns display names: the base name, with the parent directory
// added when two entries share a base name.
func (s *Sidebar) labels() []string {
	counts := lo.CountValuesBy(s.files, filepath.Base)
	return lo.Map(s.files, func(p string, _ int) string {
		base := filepath.Base(p)
		if counts[base] > 1 {
			return filepath.Join(filepath.Base(filepath.Dir(p)), base)
		}
		return base
	})
}

// Draw renders the list in the left columns [0, width) of rows [0, height).
// focused highlights the selection in the focused style.
func (s *Sidebar) Draw(screen tcell.Screen, width, height int, focused bool, th *theme.Theme) {
	if width <= 0 || height <= 0 {
		return
	}
	style := th.GetStyle(theme.StyleSidebar)
	border := th.GetStyle(theme.StyleSidebarBorder)
	selected := th.GetStyle(theme.StyleSidebarSelected)
	if !focused {
		selected = selected.Reverse(false).Bold(true)
	}

	inner := width - 1
	for y := 0; y < height; y++ {
		utils.FillRow(screen, 0, y, inner, style)
		screen.SetContent(inner, y, tcell.RuneVLine, nil, border)
	}
	utils.DrawString(screen, 1, 0, inner-1, "Files", th.GetStyle(theme.StyleDialogLabel))

	rows := height - 1
	if len(s.files) == 0 {
		if rows > 0 {
			utils.DrawString(screen, 1, 1, inner-1, "(no files)", border)
		}
		return
	}
	s.scrollToSelection(rows)

	labels := s.labels()
	for i := 0; i < rows && s.offset+i < len(labels); i++ {
		idx := s.offset + i
		rowStyle := style
		if idx == s.selected {
			rowStyle = selected
			utils.FillRow(screen, 0, i+1, inner, rowStyle)
		}
		utils.DrawString(screen, 1, i+1, inner-1, labels[idx], rowStyle)
	}
}

func (s *Sidebar) scrollToSelection(rows int) {
	if rows <= 0 {
		return
	}
	if s.selected < s.offset {
		s.offset = s.selected
	}
	if s.selected >= s.offset+rows {
		s.offset = s.selected - rows + 1
	}
}
