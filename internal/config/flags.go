package config

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"

	"github.com/bethropolis/codepad/internal/logger"
)

// Flags holds values parsed from command-line flags. Only flags the user
// actually set are applied over the file configuration.
type Flags struct {
	ConfigFilePath  string
	LogLevel        string
	LogFilePath     string
	TabWidth        int
	ScrollOff       int
	Language        string
	Theme           string
	SystemClipboard bool
	PrintCommand    string
	EnableTags      string
	DisableTags     string
	EnablePkgs      string
	DisablePkgs     string
	EnableFiles     string
	DisableFiles    string
}

// Register defines the flags on fs.
func (f *Flags) Register(fs *pflag.FlagSet) {
	fs.StringVarP(&f.ConfigFilePath, "config", "c", "", fmt.Sprintf("path to TOML configuration file (default <config dir>/%s/%s)", AppName, DefaultConfigFileName))
	fs.StringVar(&f.LogLevel, "loglevel", "", "log level (debug, info, warn, error)")
	fs.StringVar(&f.LogFilePath, "logfile", "", "log file path ('-' for stderr)")
	fs.IntVar(&f.TabWidth, "tabwidth", DefaultTabWidth, "number of spaces per tab")
	fs.IntVar(&f.ScrollOff, "scrolloff", DefaultScrollOff, "lines of context above/below cursor")
	fs.StringVarP(&f.Language, "language", "l", DefaultLanguage, "highlight profile (auto, python, go, plain)")
	fs.StringVar(&f.Theme, "theme", DefaultTheme, "color theme name")
	fs.BoolVar(&f.SystemClipboard, "system-clipboard", SystemClipboard, "use the system clipboard")
	fs.StringVar(&f.PrintCommand, "print-command", "", "command receiving printed documents on stdin")
	fs.StringVar(&f.EnableTags, "log-tags", "", "comma-separated list of log tags to enable")
	fs.StringVar(&f.DisableTags, "log-disable-tags", "", "comma-separated list of log tags to disable")
	fs.StringVar(&f.EnablePkgs, "log-packages", "", "comma-separated list of packages to enable")
	fs.StringVar(&f.DisablePkgs, "log-disable-packages", "", "comma-separated list of packages to disable")
	fs.StringVar(&f.EnableFiles, "log-files", "", "comma-separated list of files to enable")
	fs.StringVar(&f.DisableFiles, "log-disable-files", "", "comma-separated list of files to disable")
}

// ApplyOverrides copies every flag the user set on fs into cfg.
func (f *Flags) ApplyOverrides(cfg *Config, fs *pflag.FlagSet) {
	fs.Visit(func(fl *pflag.Flag) {
		logger.DebugTagf("config", "Applying flag override: %s=%s", fl.Name, fl.Value.String())
		switch fl.Name {
		case "loglevel":
			if f.LogLevel != "" {
				cfg.Logger.LogLevel = f.LogLevel
			}
		case "logfile":
			cfg.Logger.LogFilePath = f.LogFilePath
		case "tabwidth":
			if f.TabWidth > 0 {
				cfg.Editor.TabWidth = f.TabWidth
			}
		case "scrolloff":
			if f.ScrollOff >= 0 {
				cfg.Editor.ScrollOff = f.ScrollOff
			}
		case "language":
			cfg.Editor.Language = f.Language
		case "theme":
			cfg.Editor.Theme = f.Theme
		case "system-clipboard":
			cfg.Editor.SystemClipboard = f.SystemClipboard
		case "print-command":
			if f.PrintCommand != "" {
				cfg.Print.Command = f.PrintCommand
				cfg.Print.Args = nil
			}
		case "log-tags":
			cfg.Logger.EnabledTags = splitCommaList(f.EnableTags)
		case "log-disable-tags":
			cfg.Logger.DisabledTags = splitCommaList(f.DisableTags)
		case "log-packages":
			cfg.Logger.EnabledPackages = splitCommaList(f.EnablePkgs)
		case "log-disable-packages":
			cfg.Logger.DisabledPackages = splitCommaList(f.DisablePkgs)
		case "log-files":
			cfg.Logger.EnabledFiles = splitCommaList(f.EnableFiles)
		case "log-disable-files":
			cfg.Logger.DisabledFiles = splitCommaList(f.DisableFiles)
		}
	})
}

func splitCommaList(list string) []string {
	if list == "" {
		return nil
	}
	items := strings.Split(list, ",")
	result := make([]string, 0, len(items))
	for _, item := range items {
		if trimmed := strings.TrimSpace(item); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
