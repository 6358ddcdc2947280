package theme

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/gdamore/tcell/v2"

	"github.com/bethropolis/codepad/internal/logger"
)

// TomlStyleDef is one style in a theme file. Pointers tell unset from false.
type TomlStyleDef struct {
	Fg        *string `toml:"fg"`
	Bg        *string `toml:"bg"`
	Bold      *bool   `toml:"bold"`
	Italic    *bool   `toml:"italic"`
	Underline *bool   `toml:"underline"`
	Reverse   *bool   `toml:"reverse"`
}

// TomlTheme is the layout of a theme file.
type TomlTheme struct {
	Name   string                  `toml:"name"`
	IsDark bool                    `toml:"is_dark"`
	Styles map[string]TomlStyleDef `toml:"styles"`
}

// LoadThemeFromFile parses a TOML theme. Styles inherit unset attributes
// from the file's Default style.
func LoadThemeFromFile(filePath string) (*Theme, error) {
	var tt TomlTheme
	meta, err := toml.DecodeFile(filePath, &tt)
	if err != nil {
		return nil, fmt.Errorf("failed to parse theme file '%s': %w", filePath, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		logger.Warnf("Theme file '%s': unrecognized keys: %v", filePath, undecoded)
	}
	if tt.Name == "" {
		tt.Name = strings.TrimSuffix(filepath.Base(filePath), filepath.Ext(filePath))
	}

	t := &Theme{
		Name:   tt.Name,
		IsDark: tt.IsDark,
		Styles: make(map[string]tcell.Style, len(tt.Styles)+1),
	}

	base := tcell.StyleDefault
	if def, ok := tt.Styles[StyleDefault]; ok {
		if base, err = convertTomlStyle(def, tcell.StyleDefault); err != nil {
			return nil, fmt.Errorf("theme '%s': Default style: %w", t.Name, err)
		}
	}
	t.Styles[StyleDefault] = base

	for name, def := range tt.Styles {
		if name == StyleDefault {
			continue
		}
		style, err := convertTomlStyle(def, base)
		if err != nil {
			logger.Warnf("Theme '%s': skipping style '%s': %v", t.Name, name, err)
			continue
		}
		t.Styles[name] = style
	}
	return t, nil
}

func convertTomlStyle(def TomlStyleDef, style tcell.Style) (tcell.Style, error) {
	if def.Fg != nil {
		c, err := parseColorString(*def.Fg)
		if err != nil {
			return style, fmt.Errorf("invalid foreground color '%s': %w", *def.Fg, err)
		}
		style = style.Foreground(c)
	}
	if def.Bg != nil {
		c, err := parseColorString(*def.Bg)
		if err != nil {
			return style, fmt.Errorf("invalid background color '%s': %w", *def.Bg, err)
		}
		style = style.Background(c)
	}
	if def.Bold != nil {
		style = style.Bold(*def.Bold)
	}
	if def.Italic != nil {
		style = style.Italic(*def.Italic)
	}
	if def.Underline != nil {
		style = style.Underline(*def.Underline)
	}
	if def.Reverse != nil {
		style = style.Reverse(*def.Reverse)
	}
	return style, nil
}

// parseColorString accepts #rrggbb, "reset", "default" and tcell color names.
func parseColorString(s string) (tcell.Color, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch s {
	case "reset":
		return tcell.ColorReset, nil
	case "default", "":
		return tcell.ColorDefault, nil
	}
	if strings.HasPrefix(s, "#") && len(s) != 7 {
		return tcell.ColorDefault, fmt.Errorf("invalid hex color format '%s', must be #RRGGBB", s)
	}
	c := tcell.GetColor(s)
	if c == tcell.ColorDefault {
		return tcell.ColorDefault, fmt.Errorf("unknown color '%s'", s)
	}
	return c, nil
}
