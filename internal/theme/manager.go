package theme

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/samber/lo"

	"github.com/bethropolis/codepad/internal/logger"
)

// Manager holds loaded themes and the active one. Used from the UI
// goroutine only.
type Manager struct {
	themes      map[string]*Theme // lowercase name -> theme
	activeTheme *Theme
	themesDir   string
}

// NewManager loads the built-in themes plus any *.toml files in themesDir
// (which may be empty) and activates initial, falling back to Accurate.
func NewManager(themesDir, initial string) *Manager {
	m := &Manager{
		themes:    make(map[string]*Theme),
		themesDir: themesDir,
	}
	m.add(&Accurate)
	m.add(&DevComfortDark)

	if themesDir != "" {
		if err := m.LoadThemesFromDir(); err != nil {
			logger.Errorf("Error loading themes from '%s': %v", themesDir, err)
		}
	}

	if err := m.SetTheme(initial); err != nil {
		logger.Warnf("%v, using %s", err, Accurate.Name)
		m.activeTheme = m.themes[strings.ToLower(Accurate.Name)]
	}
	return m
}

func (m *Manager) add(t *Theme) {
	key := strings.ToLower(t.Name)
	if existing, ok := m.themes[key]; ok && existing != t {
		logger.Warnf("Theme '%s' overrides existing theme '%s'", t.Name, existing.Name)
	}
	m.themes[key] = t
}

// LoadThemesFromDir loads every .toml file in the themes directory. A
// missing directory is not an error.
func (m *Manager) LoadThemesFromDir() error {
	entries, err := os.ReadDir(m.themesDir)
	if err != nil {
		if os.IsNotExist(err) {
			logger.Debugf("Theme directory '%s' does not exist", m.themesDir)
			return nil
		}
		return fmt.Errorf("failed to read theme directory '%s': %w", m.themesDir, err)
	}

	files := lo.Filter(entries, func(e os.DirEntry, _ int) bool {
		return !e.IsDir() && strings.EqualFold(filepath.Ext(e.Name()), ".toml")
	})
	for _, f := range files {
		path := filepath.Join(m.themesDir, f.Name())
		t, err := LoadThemeFromFile(path)
		if err != nil {
			logger.Warnf("Failed to load theme from '%s': %v", path, err)
			continue
		}
		m.add(t)
	}
	logger.Infof("Loaded %d custom themes from %s", len(files), m.themesDir)
	return nil
}

// Current returns the active theme.
func (m *Manager) Current() *Theme {
	if m.activeTheme == nil {
		return &Theme{Name: "Fallback", Styles: map[string]tcell.Style{StyleDefault: tcell.StyleDefault}}
	}
	return m.activeTheme
}

// SetTheme activates a theme by name (case-insensitive).
func (m *Manager) SetTheme(name string) error {
	t, ok := m.themes[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return fmt.Errorf("theme '%s' not found", name)
	}
	if m.activeTheme != t {
		m.activeTheme = t
		logger.Infof("Active theme set to: %s", t.Name)
	}
	return nil
}

// ListThemes returns the theme names sorted case-insensitively.
func (m *Manager) ListThemes() []string {
	names := lo.Map(lo.Values(m.themes), func(t *Theme, _ int) string { return t.Name })
	sort.Slice(names, func(i, j int) bool {
		return strings.ToLower(names[i]) < strings.ToLower(names[j])
	})
	return names
}

// GetTheme returns a theme by name (case-insensitive).
func (m *Manager) GetTheme(name string) (*Theme, bool) {
	t, ok := m.themes[strings.ToLower(name)]
	return t, ok
}
