package event

import (
	"github.com/bethropolis/codepad/internal/settings"
	"github.com/bethropolis/codepad/internal/types"
)

// Type identifies the kind of event.
type Type int

const (
	TypeUnknown Type = iota

	// Document events
	TypeBufferModified // content changed (insert/delete/undo/redo)
	TypeBufferLoaded   // a file was read into the buffer
	TypeBufferSaved    // the buffer was written to disk
	TypeBufferCreated  // the buffer was cleared by New
	TypeCursorMoved

	// Shell events
	TypeModeChanged
	TypeSettingsChanged
	TypeZoomChanged
	TypeThemeChanged

	// Application lifecycle
	TypeAppReady
	TypeAppQuit
)

var typeNames = map[Type]string{
	TypeUnknown:         "Unknown",
	TypeBufferModified:  "BufferModified",
	TypeBufferLoaded:    "BufferLoaded",
	TypeBufferSaved:     "BufferSaved",
	TypeBufferCreated:   "BufferCreated",
	TypeCursorMoved:     "CursorMoved",
	TypeModeChanged:     "ModeChanged",
	TypeSettingsChanged: "SettingsChanged",
	TypeZoomChanged:     "ZoomChanged",
	TypeThemeChanged:    "ThemeChanged",
	TypeAppReady:        "AppReady",
	TypeAppQuit:         "AppQuit",
}

func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return "Unknown"
}

// Event is the structure passed through the event bus.
type Event struct {
	Type Type
	Data interface{}
}

// BufferModifiedData carries the edited line range.
type BufferModifiedData struct {
	Edit types.EditInfo
}

// BufferLoadedData names the file that was read.
type BufferLoadedData struct {
	FilePath string
}

// BufferSavedData names the file that was written.
type BufferSavedData struct {
	FilePath string
}

// CursorMovedData contains the new cursor position.
type CursorMovedData struct {
	NewPosition types.Position
}

// ModeChangedData names the mode entered.
type ModeChangedData struct {
	Mode string
}

// SettingsChangedData holds the settings now in effect.
type SettingsChangedData struct {
	Settings settings.Settings
}

// ZoomChangedData holds the new font size.
type ZoomChangedData struct {
	FontSize int
}

// ThemeChangedData names the active theme.
type ThemeChangedData struct {
	Name string
}
