// Package statusbar draws the bottom status line: file, cursor, language,
// zoom, transient messages and the command/prompt input line.
package statusbar

import (
	"fmt"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/bethropolis/codepad/internal/config"
	"github.com/bethropolis/codepad/internal/theme"
	"github.com/bethropolis/codepad/internal/types"
	"github.com/bethropolis/codepad/internal/utils"
)

// Config defines the behavior of the status bar.
type Config struct {
	MessageTimeout time.Duration
	// Now is the clock used to expire messages.
	Now func() time.Time
}

// DefaultConfig provides sensible defaults.
func DefaultConfig() Config {
	return Config{
		MessageTimeout: config.MessageTimeout,
		Now:            time.Now,
	}
}

// StatusBar is the UI component for the status line.
type StatusBar struct {
	config Config
	mu     sync.RWMutex

	filePath   string
	cursorPos  types.Position
	isModified bool
	editorMode string
	language   string
	fontSize   int

	tempMessage     string
	tempMessageTime time.Time
	tempIsError     bool

	// Input line shown instead of everything else while the command line
	// or a prompt is active.
	inputActive bool
	inputPrefix string
	inputText   string
}

// New creates a new StatusBar with the given configuration.
func New(cfg Config) *StatusBar {
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if cfg.MessageTimeout <= 0 {
		cfg.MessageTimeout = config.MessageTimeout
	}
	return &StatusBar{config: cfg}
}

// SetFileInfo updates the file path and modified flag.
func (sb *StatusBar) SetFileInfo(path string, modified bool) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.filePath = path
	sb.isModified = modified
}

// SetCursorInfo updates the cursor position shown.
func (sb *StatusBar) SetCursorInfo(pos types.Position) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.cursorPos = pos
}

// SetEditorMode updates the displayed mode name. Empty hides it.
func (sb *StatusBar) SetEditorMode(mode string) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.editorMode = mode
}

// SetLanguage sets the highlight profile name.
func (sb *StatusBar) SetLanguage(name string) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.language = name
}

// SetFontSize sets the zoom level shown.
func (sb *StatusBar) SetFontSize(size int) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.fontSize = size
}

// SetTemporaryMessage displays a message for the configured duration.
func (sb *StatusBar) SetTemporaryMessage(format string, args ...interface{}) {
	sb.setMessage(false, format, args...)
}

// SetErrorMessage is SetTemporaryMessage in the error style.
func (sb *StatusBar) SetErrorMessage(format string, args ...interface{}) {
	sb.setMessage(true, format, args...)
}

func (sb *StatusBar) setMessage(isErr bool, format string, args ...interface{}) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.tempMessage = fmt.Sprintf(format, args...)
	sb.tempMessageTime = sb.config.Now()
	sb.tempIsError = isErr
}

// ResetTemporaryMessage clears any temporary message.
func (sb *StatusBar) ResetTemporaryMessage() {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.tempMessage = ""
	sb.tempMessageTime = time.Time{}
	sb.tempIsError = false
}

// SetInput shows an input line such as ":w" or "Open file: /tmp/x".
func (sb *StatusBar) SetInput(prefix, text string) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.inputActive = true
	sb.inputPrefix = prefix
	sb.inputText = text
}

// ClearInput hides the input line.
func (sb *StatusBar) ClearInput() {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.inputActive = false
	sb.inputPrefix, sb.inputText = "", ""
}

// InputCursor returns the column of the input cursor, if the input line is
// shown.
func (sb *StatusBar) InputCursor() (int, bool) {
	sb.mu.RLock()
	defer sb.mu.RUnlock()
	if !sb.inputActive {
		return 0, false
	}
	return utils.StringWidth(sb.inputPrefix + sb.inputText), true
}

// Message returns the active temporary message, empty once expired.
func (sb *StatusBar) Message() string {
	sb.mu.RLock()
	defer sb.mu.RUnlock()
	if sb.messageActive() {
		return sb.tempMessage
	}
	return ""
}

func (sb *StatusBar) messageActive() bool {
	return !sb.tempMessageTime.IsZero() && sb.config.Now().Sub(sb.tempMessageTime) <= sb.config.MessageTimeout
}

// getDefaultDisplayText builds the left and right parts of the idle line.
func (sb *StatusBar) getDefaultDisplayText() (string, string) {
	fPath := sb.filePath
	if fPath == "" {
		fPath = "New File"
	}
	modifiedIndicator := ""
	if sb.isModified {
		modifiedIndicator = " [Modified]"
	}
	modeIndicator := ""
	if sb.editorMode != "" {
		modeIndicator = fmt.Sprintf(" -- %s", sb.editorMode)
	}
	left := fmt.Sprintf("%s%s%s", fPath, modifiedIndicator, modeIndicator)

	right := fmt.Sprintf("Ln %d, Col %d", sb.cursorPos.Line+1, sb.cursorPos.Col+1)
	if sb.language != "" {
		right += " | " + sb.language
	}
	if sb.fontSize > 0 {
		right += fmt.Sprintf(" | %dpt", sb.fontSize)
	}
	return left, right
}

// Draw renders the status bar on the last screen row.
func (sb *StatusBar) Draw(screen tcell.Screen, width, height int, th *theme.Theme) {
	if height <= 0 || width <= 0 {
		return
	}
	y := height - 1

	sb.mu.Lock()
	if !sb.tempMessageTime.IsZero() && !sb.messageActive() {
		sb.tempMessage = ""
		sb.tempMessageTime = time.Time{}
		sb.tempIsError = false
	}

	var style tcell.Style
	var left, right string
	input := sb.inputActive
	switch {
	case sb.inputActive:
		style = th.GetStyle(theme.StyleCommandLine)
		left = sb.inputPrefix + sb.inputText
	case sb.tempMessage != "":
		style = th.GetStyle(theme.StyleStatusBarMessage)
		if sb.tempIsError {
			style = th.GetStyle(theme.StyleStatusBarError)
		}
		left = sb.tempMessage
		_, right = sb.getDefaultDisplayText()
	default:
		style = th.GetStyle(theme.StyleStatusBar)
		if sb.isModified {
			style = th.GetStyle(theme.StyleStatusBarModified)
		}
		left, right = sb.getDefaultDisplayText()
	}
	sb.mu.Unlock()

	utils.FillRow(screen, 0, y, width, style)
	if input {
		// Long input scrolls so the end stays visible.
		utils.DrawString(screen, 0, y, width, utils.TruncateLeft(left, width-1), style)
		return
	}

	rightWidth := utils.StringWidth(right)
	if rightWidth+2 > width/2 {
		right, rightWidth = "", 0
	}
	used := utils.DrawString(screen, 1, y, width-rightWidth-2, left, style)
	if right != "" && 1+used < width-rightWidth-1 {
		utils.DrawString(screen, width-rightWidth-1, y, rightWidth, right, style)
	}
}
