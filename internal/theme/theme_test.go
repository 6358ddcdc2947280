package theme

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bethropolis/codepad/internal/highlighter"
)

func TestGetStyle_Fallbacks(t *testing.T) {
	def := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	side := tcell.StyleDefault.Foreground(tcell.ColorRed)
	th := &Theme{Name: "t", Styles: map[string]tcell.Style{
		StyleDefault: def,
		StyleSidebar: side,
	}}

	assert.Equal(t, side, th.GetStyle(StyleSidebar))
	assert.Equal(t, side, th.GetStyle(StyleSidebarSelected), "dotted name falls back to its base")
	assert.Equal(t, def, th.GetStyle("Nope"))

	empty := &Theme{Name: "empty"}
	assert.Equal(t, tcell.StyleDefault, empty.GetStyle(StyleDefault))
}

func TestSyntax_LayersOnDefault(t *testing.T) {
	th := &Accurate
	_, bg, _ := th.GetStyle(StyleDefault).Decompose()

	st := th.Syntax(highlighter.Style{Foreground: "#FFD700", Bold: true})
	fg, sbg, attrs := st.Decompose()
	assert.Equal(t, tcell.NewHexColor(0xFFD700), fg)
	assert.Equal(t, bg, sbg)
	assert.NotZero(t, attrs&tcell.AttrBold)

	assert.Equal(t, th.GetStyle(StyleDefault), th.Syntax(highlighter.Style{}))
	assert.Equal(t, th.GetStyle(StyleDefault), th.Syntax(highlighter.Style{Foreground: "not-a-color"}))
}

func TestBuiltinThemesCoverUIStyles(t *testing.T) {
	names := []string{
		StyleDefault, StyleSelection, StyleLineNumber, StyleStatusBar,
		StyleStatusBarModified, StyleStatusBarMessage, StyleStatusBarError,
		StyleCommandLine, StyleSidebar, StyleSidebarSelected, StyleSidebarBorder,
		StyleDialog, StyleDialogTitle, StyleDialogLabel, StyleDialogInput,
		StyleDialogFocused, StyleDialogButton, StyleDialogError,
	}
	for _, th := range []*Theme{&Accurate, &DevComfortDark} {
		for _, n := range names {
			_, ok := th.Styles[n]
			assert.True(t, ok, "%s missing %s", th.Name, n)
		}
	}
}

func TestParseColorString(t *testing.T) {
	c, err := parseColorString("#1e1e1e")
	require.NoError(t, err)
	assert.Equal(t, tcell.NewHexColor(0x1E1E1E), c)

	c, err = parseColorString("reset")
	require.NoError(t, err)
	assert.Equal(t, tcell.ColorReset, c)

	c, err = parseColorString("red")
	require.NoError(t, err)
	assert.Equal(t, tcell.ColorRed, c)

	_, err = parseColorString("#12")
	assert.Error(t, err)
	_, err = parseColorString("chartreuse-ish")
	assert.Error(t, err)
}

const solarToml = `
name = "Solar"
is_dark = false

[styles.Default]
fg = "#000000"
bg = "#FFFFFF"

[styles.Selection]
reverse = true

[styles.StatusBar]
bg = "#0000FF"
bold = true

[styles.Broken]
fg = "#12"
`

func writeTheme(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadThemeFromFile(t *testing.T) {
	path := writeTheme(t, t.TempDir(), "solar.toml", solarToml)

	th, err := LoadThemeFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Solar", th.Name)
	assert.False(t, th.IsDark)

	fg, bg, _ := th.GetStyle(StyleDefault).Decompose()
	assert.Equal(t, tcell.NewHexColor(0x000000), fg)
	assert.Equal(t, tcell.NewHexColor(0xFFFFFF), bg)

	// Inherits Default's foreground.
	sfg, sbg, attrs := th.GetStyle(StyleStatusBar).Decompose()
	assert.Equal(t, tcell.NewHexColor(0x000000), sfg)
	assert.Equal(t, tcell.NewHexColor(0x0000FF), sbg)
	assert.NotZero(t, attrs&tcell.AttrBold)

	_, _, selAttrs := th.GetStyle(StyleSelection).Decompose()
	assert.NotZero(t, selAttrs&tcell.AttrReverse)

	_, ok := th.Styles["Broken"]
	assert.False(t, ok, "invalid style is skipped")
}

func TestLoadThemeFromFile_NameFromFilename(t *testing.T) {
	path := writeTheme(t, t.TempDir(), "midnight.toml", "[styles.Default]\nfg = \"white\"\n")
	th, err := LoadThemeFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "midnight", th.Name)
}

func TestLoadThemeFromFile_Malformed(t *testing.T) {
	path := writeTheme(t, t.TempDir(), "bad.toml", "name = [")
	_, err := LoadThemeFromFile(path)
	assert.Error(t, err)
}

func TestManager(t *testing.T) {
	dir := t.TempDir()
	writeTheme(t, dir, "solar.toml", solarToml)
	writeTheme(t, dir, "notes.txt", "ignored")

	m := NewManager(dir, "devcomfort dark")
	assert.Equal(t, DevComfortDark.Name, m.Current().Name)
	assert.Equal(t, []string{"Accurate", "DevComfort Dark", "Solar"}, m.ListThemes())

	require.NoError(t, m.SetTheme("SOLAR"))
	assert.Equal(t, "Solar", m.Current().Name)

	assert.Error(t, m.SetTheme("missing"))
	assert.Equal(t, "Solar", m.Current().Name)

	_, ok := m.GetTheme("accurate")
	assert.True(t, ok)
}

func TestManager_UnknownInitialFallsBack(t *testing.T) {
	m := NewManager(filepath.Join(t.TempDir(), "absent"), "nope")
	assert.Equal(t, Accurate.Name, m.Current().Name)
	assert.Len(t, m.ListThemes(), 2)
}
