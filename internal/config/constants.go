package config

import "time"

// Base application details
const AppName = "codepad"
const ThemesDirName = "themes"
const DefaultConfigFileName = "config.toml"
const DefaultLogFileName = "codepad.log"

// Status Bar
const MessageTimeout = 4 * time.Second

// Editor defaults
const DefaultTabWidth = 4
const DefaultScrollOff = 3
const SystemClipboard = true
const DefaultLanguage = "auto"
const DefaultTheme = "Accurate"
