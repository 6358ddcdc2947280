// Package app wires the editor components together and runs the main loop.
package app

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/bethropolis/codepad/internal/buffer"
	"github.com/bethropolis/codepad/internal/clipboard"
	"github.com/bethropolis/codepad/internal/config"
	"github.com/bethropolis/codepad/internal/core"
	"github.com/bethropolis/codepad/internal/event"
	"github.com/bethropolis/codepad/internal/fileio"
	"github.com/bethropolis/codepad/internal/highlighter/lang"
	"github.com/bethropolis/codepad/internal/input"
	"github.com/bethropolis/codepad/internal/logger"
	"github.com/bethropolis/codepad/internal/modehandler"
	"github.com/bethropolis/codepad/internal/printing"
	"github.com/bethropolis/codepad/internal/settings"
	"github.com/bethropolis/codepad/internal/sidebar"
	"github.com/bethropolis/codepad/internal/statusbar"
	"github.com/bethropolis/codepad/internal/theme"
	"github.com/bethropolis/codepad/internal/tui"
)

// Options replaces external dependencies of the app. Zero values select
// the terminal, the settings file, the system clipboard and the
// configured print command.
type Options struct {
	Screen    tcell.Screen
	Store     settings.Store
	Printer   printing.Printer
	Clipboard clipboard.Provider
	ThemesDir string
}

// App encapsulates the core components and main loop of the editor.
type App struct {
	cfg          *config.Config
	tuiManager   *tui.TUI
	editor       *core.Editor
	statusBar    *statusbar.StatusBar
	eventManager *event.Manager
	modeHandler  *modehandler.ModeHandler
	themeManager *theme.Manager
	sidebar      *sidebar.Sidebar
	store        settings.Store
	printer      printing.Printer
	language     *lang.Language

	prefs    settings.Settings
	fontSize int // zoom level, starts at prefs.FontSize
	// pendingPath is a command-line path that did not exist yet; the
	// first save goes there.
	pendingPath string
	// shownMessage is the status message at the last draw.
	shownMessage string

	quit          chan struct{}
	redrawRequest chan struct{}
}

// NewApp creates and initializes a new application instance.
func NewApp(cfg *config.Config, filePath string, opts Options) (*App, error) {
	if cfg == nil {
		cfg = config.NewDefaultConfig()
	}

	var tuiManager *tui.TUI
	var err error
	if opts.Screen != nil {
		tuiManager, err = tui.NewWithScreen(opts.Screen)
	} else {
		tuiManager, err = tui.New()
	}
	if err != nil {
		return nil, fmt.Errorf("TUI initialization failed: %w", err)
	}

	store := opts.Store
	if store == nil {
		store = defaultStore()
	}
	prefs, prefsErr := store.Load()
	if prefsErr != nil {
		logger.Warnf("App: loading settings: %v", prefsErr)
		prefs = settings.Defaults()
		prefs.TabWidth = cfg.Editor.TabWidth
	}
	prefs = prefs.Clamp()

	buf := buffer.NewSliceBuffer()
	editor := core.NewEditor(buf)
	editor.ScrollOff = cfg.Editor.ScrollOff
	editor.SetTabWidth(prefs.TabWidth)

	var system clipboard.Provider
	if cfg.Editor.SystemClipboard {
		system = opts.Clipboard
		if system == nil {
			system = clipboard.System()
		}
	}
	editor.SetClipboard(clipboard.NewManager(system))

	eventManager := event.NewManager()
	editor.SetEventManager(eventManager)

	themesDir := opts.ThemesDir
	if themesDir == "" {
		if dir, err := config.Dir(); err == nil {
			themesDir = filepath.Join(dir, config.ThemesDirName)
		}
	}
	themeManager := theme.NewManager(themesDir, cfg.Editor.Theme)
	tuiManager.ApplyTheme(themeManager.Current())

	printer := opts.Printer
	if printer == nil {
		printer = printing.NewCommandPrinter(cfg.Print.Command, cfg.Print.Args)
	}

	statusBar := statusbar.New(statusbar.DefaultConfig())
	files := sidebar.New()
	quitChan := make(chan struct{})

	modeHandler := modehandler.New(modehandler.Config{
		Editor:         editor,
		InputProcessor: input.NewInputProcessor(),
		EventManager:   eventManager,
		StatusBar:      statusBar,
		Sidebar:        files,
		QuitSignal:     quitChan,
	})

	a := &App{
		cfg:           cfg,
		tuiManager:    tuiManager,
		editor:        editor,
		statusBar:     statusBar,
		eventManager:  eventManager,
		modeHandler:   modeHandler,
		themeManager:  themeManager,
		sidebar:       files,
		store:         store,
		printer:       printer,
		prefs:         prefs,
		fontSize:      prefs.FontSize,
		quit:          quitChan,
		redrawRequest: make(chan struct{}, 1),
	}

	a.subscribeEvents()
	a.registerAppCommands()

	a.statusBar.SetTemporaryMessage("Ready")
	a.openInitialFile(filePath)
	a.setLanguage(lang.Resolve(cfg.Editor.Language, a.editor.FilePath(), buf.Bytes()))
	a.updateTitle()

	if prefsErr != nil {
		a.modeHandler.ShowError("Could not load settings: %v", prefsErr)
	}
	return a, nil
}

// defaultStore returns the settings file store, or an in-memory store when
// no config directory is available.
func defaultStore() settings.Store {
	path, err := settings.DefaultPath()
	if err != nil {
		logger.Warnf("App: %v; settings will not persist", err)
		return &settings.MemoryStore{}
	}
	return settings.NewFileStore(path)
}

// openInitialFile loads the command-line file. A path that does not exist
// yet starts an empty document that saves there.
func (a *App) openInitialFile(path string) {
	if path == "" {
		return
	}
	if !fileio.Exists(path) {
		logger.Infof("App: %s does not exist, starting a new file", path)
		a.pendingPath = path
		a.statusBar.SetTemporaryMessage("New file: %s", path)
		return
	}
	a.openFile(path)
}

func (a *App) setLanguage(l *lang.Language) {
	a.language = l
	rs, err := l.RuleSet()
	if err != nil {
		logger.Errorf("App: highlight profile %s: %v", l.Name, err)
		a.editor.SetRuleSet(nil)
	} else {
		a.editor.SetRuleSet(rs)
	}
	a.statusBar.SetLanguage(l.Name)
	logger.Debugf("App: highlight profile %s", l.Name)
}

// Run starts the main loop: terminal events, settings reloads and quit
// are handled one at a time on this goroutine, each followed by a redraw.
func (a *App) Run() error {
	defer a.tuiManager.Close()

	events := make(chan tcell.Event, 16)
	stopEvents := make(chan struct{})
	defer close(stopEvents)
	a.tuiManager.ChannelEvents(events, stopEvents)

	reload, stopWatcher := a.watchSettings()
	defer stopWatcher()

	// Expired status messages disappear on the next draw.
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	a.eventManager.Dispatch(event.TypeAppReady, nil)
	a.drawEditor()

	for {
		select {
		case <-a.quit:
			a.eventManager.Dispatch(event.TypeAppQuit, nil)
			if a.editor.IsModified() {
				logger.Warnf("App: exiting with unsaved changes")
			}
			logger.Infof("App: exiting")
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if a.handleEvent(ev) {
				a.requestRedraw()
			}
		case _, ok := <-reload:
			if !ok {
				reload = nil
				continue
			}
			a.reloadSettings()
			a.requestRedraw()
		case <-ticker.C:
			if a.statusBar.Message() != a.shownMessage {
				a.requestRedraw()
			}
		case <-a.redrawRequest:
			a.drawEditor()
		}
	}
}

// handleEvent processes one terminal event. Returns true if a redraw is
// needed.
func (a *App) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		a.tuiManager.Sync()
		return true
	case *tcell.EventKey:
		return a.modeHandler.HandleKeyEvent(ev)
	}
	return false
}

// watchSettings starts the fsnotify watcher for a file-backed store. The
// returned channel is nil when nothing is watched.
func (a *App) watchSettings() (<-chan struct{}, func()) {
	fileStore, ok := a.store.(*settings.FileStore)
	if !ok {
		return nil, func() {}
	}
	w, err := settings.NewWatcher(fileStore.Path(), settings.DefaultDebounce)
	if err != nil {
		logger.Warnf("App: settings watcher: %v", err)
		return nil, func() {}
	}
	ch, err := w.Start()
	if err != nil {
		logger.DebugTagf("settings", "App: not watching settings: %v", err)
		_ = w.Stop()
		return nil, func() {}
	}
	return ch, func() {
		if err := w.Stop(); err != nil {
			logger.Warnf("App: stopping settings watcher: %v", err)
		}
	}
}

// requestRedraw sends a redraw signal non-blockingly.
func (a *App) requestRedraw() {
	select {
	case a.redrawRequest <- struct{}{}:
	default:
	}
}

// GetModeHandler exposes the mode handler.
func (a *App) GetModeHandler() *modehandler.ModeHandler {
	return a.modeHandler
}

// Editor exposes the editor.
func (a *App) Editor() *core.Editor {
	return a.editor
}

// FontSize returns the current zoom level.
func (a *App) FontSize() int { return a.fontSize }

// Settings returns the preferences in effect.
func (a *App) Settings() settings.Settings { return a.prefs }
