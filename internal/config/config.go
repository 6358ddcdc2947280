// Package config loads codepad's startup configuration: built-in defaults,
// then the TOML config file, then command-line overrides.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/spf13/pflag"

	"github.com/bethropolis/codepad/internal/logger"
)

// Config holds the application's combined configuration.
type Config struct {
	Logger logger.Config `toml:"logger"`
	Editor EditorConfig  `toml:"editor"`
	Print  PrintConfig   `toml:"print"`

	// Undecoded lists unknown keys found in the file, reported once the
	// logger is up.
	Undecoded []string `toml:"-"`
	// Path is the config file that was read, if any.
	Path string `toml:"-"`
}

// EditorConfig holds editor-specific settings.
type EditorConfig struct {
	TabWidth        int    `toml:"tab_width"`
	ScrollOff       int    `toml:"scroll_off"`
	SystemClipboard bool   `toml:"system_clipboard"`
	Language        string `toml:"language"` // "auto", "python", "go", "plain"
	Theme           string `toml:"theme"`
}

// PrintConfig selects the print pipeline. Args may use {title} and {cpi}.
type PrintConfig struct {
	Command string   `toml:"command"`
	Args    []string `toml:"args"`
}

// NewDefaultConfig creates a Config struct with default values.
func NewDefaultConfig() *Config {
	return &Config{
		Logger: logger.NewConfig(),
		Editor: EditorConfig{
			TabWidth:        DefaultTabWidth,
			ScrollOff:       DefaultScrollOff,
			SystemClipboard: SystemClipboard,
			Language:        DefaultLanguage,
			Theme:           DefaultTheme,
		},
		Print: PrintConfig{
			Command: "lpr",
			Args:    []string{"-T", "{title}", "-o", "cpi={cpi}"},
		},
	}
}

// Dir returns <user config dir>/codepad.
func Dir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locating user config dir: %w", err)
	}
	return filepath.Join(base, AppName), nil
}

// DefaultLogPath returns the log file used when none is configured.
func DefaultLogPath() string {
	if dir, err := Dir(); err == nil {
		return filepath.Join(dir, DefaultLogFileName)
	}
	return filepath.Join(os.TempDir(), DefaultLogFileName)
}

// loadFromFile decodes filePath over cfg. A missing file is not an error.
func loadFromFile(cfg *Config, filePath string) error {
	meta, err := toml.DecodeFile(filePath, cfg)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to parse config file '%s': %w", filePath, err)
	}
	cfg.Path = filePath
	for _, key := range meta.Undecoded() {
		cfg.Undecoded = append(cfg.Undecoded, key.String())
	}
	return nil
}

// validate resets invalid values to their defaults.
func (c *Config) validate() {
	defaults := NewDefaultConfig()

	if c.Editor.TabWidth <= 0 {
		c.Editor.TabWidth = defaults.Editor.TabWidth
	}
	if c.Editor.ScrollOff < 0 {
		c.Editor.ScrollOff = defaults.Editor.ScrollOff
	}
	c.Editor.Language = strings.ToLower(strings.TrimSpace(c.Editor.Language))
	if c.Editor.Language == "" {
		c.Editor.Language = defaults.Editor.Language
	}
	if strings.TrimSpace(c.Editor.Theme) == "" {
		c.Editor.Theme = defaults.Editor.Theme
	}
	if c.Logger.LogLevel == "" {
		c.Logger.LogLevel = defaults.Logger.LogLevel
	}
	if strings.TrimSpace(c.Print.Command) == "" {
		c.Print = defaults.Print
	}
}

// Load builds the configuration. configFilePath overrides the default
// location; flags are applied only where the user set them on fs.
// On a file error the returned config still holds usable defaults.
func Load(configFilePath string, flags *Flags, fs *pflag.FlagSet) (*Config, error) {
	cfg := NewDefaultConfig()

	path := configFilePath
	if path == "" {
		if dir, err := Dir(); err == nil {
			path = filepath.Join(dir, DefaultConfigFileName)
		}
	}

	var loadErr error
	if path != "" {
		if err := loadFromFile(cfg, path); err != nil {
			loadErr = err
			cfg = NewDefaultConfig()
		}
	}

	if flags != nil && fs != nil {
		flags.ApplyOverrides(cfg, fs)
	}
	cfg.validate()
	return cfg, loadErr
}
