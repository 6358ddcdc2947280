// Package settings holds the user preferences edited through the settings
// dialog and persists them between sessions.
package settings

import "strings"

// Provider names accepted for APIProvider.
const (
	ProviderOpenAI = "OpenAI"
	ProviderCustom = "Custom API"
)

// Ranges for the numeric preferences.
const (
	MinFontSize     = 8
	MaxFontSize     = 24
	DefaultFontSize = 12

	MinTabWidth     = 2
	MaxTabWidth     = 8
	DefaultTabWidth = 4
)

// Providers lists the selectable API providers in display order.
var Providers = []string{ProviderOpenAI, ProviderCustom}

// Settings is the persisted preference set.
type Settings struct {
	APIProvider    string `toml:"api_provider"`
	APIKey         string `toml:"api_key"`
	APIURL         string `toml:"api_url"`
	TelegramToken  string `toml:"telegram_token"`
	TelegramChatID string `toml:"telegram_chat_id"`
	FontSize       int    `toml:"font_size"`
	TabWidth       int    `toml:"tab_width"`
	LineNumbers    bool   `toml:"line_numbers"`
}

// Defaults returns the preferences used when nothing has been saved.
func Defaults() Settings {
	return Settings{
		APIProvider: ProviderOpenAI,
		FontSize:    DefaultFontSize,
		TabWidth:    DefaultTabWidth,
		LineNumbers: true,
	}
}

// Clamp returns s with numeric values forced into range and an unknown
// provider replaced by the default one.
func (s Settings) Clamp() Settings {
	s.FontSize = clampInt(s.FontSize, MinFontSize, MaxFontSize)
	s.TabWidth = clampInt(s.TabWidth, MinTabWidth, MaxTabWidth)
	s.APIProvider = normalizeProvider(s.APIProvider)
	return s
}

func normalizeProvider(name string) string {
	for _, p := range Providers {
		if strings.EqualFold(strings.TrimSpace(name), p) {
			return p
		}
	}
	return ProviderOpenAI
}

// NextProvider cycles through Providers by step (+1 or -1).
func NextProvider(current string, step int) string {
	idx := 0
	for i, p := range Providers {
		if p == current {
			idx = i
			break
		}
	}
	n := len(Providers)
	return Providers[((idx+step)%n+n)%n]
}

// Mask hides a secret value for display, keeping its length visible.
func Mask(secret string) string {
	return strings.Repeat("*", len([]rune(secret)))
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
