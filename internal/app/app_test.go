package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bethropolis/codepad/internal/config"
	"github.com/bethropolis/codepad/internal/dialog"
	"github.com/bethropolis/codepad/internal/modehandler"
	"github.com/bethropolis/codepad/internal/printing"
	"github.com/bethropolis/codepad/internal/settings"
)

type fakePrinter struct {
	jobs []printing.Job
	err  error
}

func (p *fakePrinter) Print(_ context.Context, job printing.Job) error {
	p.jobs = append(p.jobs, job)
	return p.err
}

type harness struct {
	app     *App
	screen  tcell.SimulationScreen
	store   *settings.MemoryStore
	printer *fakePrinter
}

func newHarness(t *testing.T, path string) *harness {
	t.Helper()
	cfg := config.NewDefaultConfig()
	cfg.Editor.SystemClipboard = false
	cfg.Editor.Language = "python"

	h := &harness{
		screen:  tcell.NewSimulationScreen("UTF-8"),
		store:   &settings.MemoryStore{},
		printer: &fakePrinter{},
	}
	a, err := NewApp(cfg, path, Options{
		Screen:    h.screen,
		Store:     h.store,
		Printer:   h.printer,
		ThemesDir: t.TempDir(),
	})
	require.NoError(t, err)
	h.screen.SetSize(80, 24)
	h.app = a
	t.Cleanup(a.tuiManager.Close)
	return h
}

func (h *harness) key(k tcell.Key, r rune, mod tcell.ModMask) {
	h.app.handleEvent(tcell.NewEventKey(k, r, mod))
}

func (h *harness) typeText(s string) {
	for _, r := range s {
		h.key(tcell.KeyRune, r, tcell.ModNone)
	}
}

func (h *harness) run(name string, args ...string) {
	h.app.modeHandler.RunCommand(name, args...)
}

func (h *harness) mode() modehandler.InputMode {
	return h.app.modeHandler.GetCurrentMode()
}

func (h *harness) modal(t *testing.T) *dialog.Message {
	t.Helper()
	require.Equal(t, modehandler.ModeMessage, h.mode())
	msg, ok := h.app.modeHandler.Overlay().(*dialog.Message)
	require.True(t, ok, "overlay is %T", h.app.modeHandler.Overlay())
	return msg
}

func (h *harness) row(y int) string {
	cells, w, _ := h.screen.GetContents()
	var b strings.Builder
	for x := 0; x < w; x++ {
		c := cells[y*w+x]
		if len(c.Runes) == 0 {
			b.WriteRune(' ')
			continue
		}
		b.WriteRune(c.Runes[0])
	}
	return b.String()
}

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestNewApp_InitialState(t *testing.T) {
	h := newHarness(t, "")
	assert.Equal(t, "Code Notepad - New File", h.app.Title())
	assert.Equal(t, "Ready", h.app.statusBar.Message())
	assert.Equal(t, "python", h.app.language.Name)
	assert.Equal(t, settings.DefaultFontSize, h.app.FontSize())
	assert.Equal(t, modehandler.ModeNormal, h.mode())
}

func TestNewApp_OpensInitialFile(t *testing.T) {
	path := writeFile(t, "start.py", "print('hi')\n")
	h := newHarness(t, path)
	assert.Equal(t, "print('hi')\n", string(h.app.editor.GetBuffer().Bytes()))
	assert.Equal(t, "Code Notepad - "+path, h.app.Title())
	assert.Len(t, h.app.sidebar.Files(), 1)
}

func TestNewApp_MissingInitialFileSavesThere(t *testing.T) {
	path := filepath.Join(t.TempDir(), "later.txt")
	h := newHarness(t, path)
	assert.Equal(t, "New file: "+path, h.app.statusBar.Message())
	assert.Equal(t, "", h.app.editor.FilePath())

	h.typeText("draft")
	h.key(tcell.KeyCtrlS, 0, tcell.ModCtrl)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "draft", string(data))
	assert.Equal(t, path, h.app.editor.FilePath())
}

func TestOpen_Success(t *testing.T) {
	path := writeFile(t, "a.txt", "alpha\nbeta")
	h := newHarness(t, "")

	h.run("e", path)

	assert.Equal(t, "alpha\nbeta", string(h.app.editor.GetBuffer().Bytes()))
	assert.Equal(t, "Opened "+path, h.app.statusBar.Message())
	assert.Equal(t, "Code Notepad - "+path, h.app.Title())
	assert.False(t, h.app.editor.IsModified())

	h.run("e", path)
	assert.Len(t, h.app.sidebar.Files(), 1, "reopening does not duplicate the list entry")
}

func TestOpen_PromptFromKey(t *testing.T) {
	path := writeFile(t, "b.txt", "bravo")
	h := newHarness(t, "")

	h.key(tcell.KeyCtrlO, 0, tcell.ModCtrl)
	require.Equal(t, modehandler.ModePrompt, h.mode())
	h.typeText(path)
	h.key(tcell.KeyEnter, 0, tcell.ModNone)

	assert.Equal(t, modehandler.ModeNormal, h.mode())
	assert.Equal(t, "bravo", string(h.app.editor.GetBuffer().Bytes()))
}

func TestOpen_FailureKeepsDocument(t *testing.T) {
	h := newHarness(t, "")
	h.typeText("keep me")

	h.run("e", filepath.Join(t.TempDir(), "missing.txt"))

	msg := h.modal(t)
	assert.True(t, strings.HasPrefix(msg.Text, "Could not open file: "), msg.Text)
	assert.True(t, msg.Error)
	assert.Equal(t, "keep me", string(h.app.editor.GetBuffer().Bytes()))
	assert.Empty(t, h.app.sidebar.Files())

	h.key(tcell.KeyEnter, 0, tcell.ModNone)
	assert.Equal(t, modehandler.ModeNormal, h.mode())
}

func TestSave_WithoutPathAsks(t *testing.T) {
	h := newHarness(t, "")
	h.typeText("hello")
	path := filepath.Join(t.TempDir(), "out.txt")

	h.key(tcell.KeyCtrlS, 0, tcell.ModCtrl)
	require.Equal(t, modehandler.ModePrompt, h.mode())
	h.typeText(path)
	h.key(tcell.KeyEnter, 0, tcell.ModNone)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(data))
	assert.Equal(t, "Saved "+path, h.app.statusBar.Message())
	assert.Equal(t, "Code Notepad - "+path, h.app.Title())
	assert.Len(t, h.app.sidebar.Files(), 1)
	assert.False(t, h.app.editor.IsModified())
}

func TestSave_CurrentPath(t *testing.T) {
	path := writeFile(t, "c.txt", "one")
	h := newHarness(t, path)
	h.key(tcell.KeyEnd, 0, tcell.ModNone)
	h.typeText(" two")

	listed := h.app.sidebar.Files()

	h.run("w")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "one two", string(data))
	assert.Equal(t, listed, h.app.sidebar.Files(), "a plain save leaves the file list alone")
}

func TestSaveAs_NewPath(t *testing.T) {
	path := writeFile(t, "d.txt", "data")
	h := newHarness(t, path)
	other := filepath.Join(t.TempDir(), "copy.txt")

	h.run("saveas", other)

	data, err := os.ReadFile(other)
	require.NoError(t, err)
	assert.Equal(t, "data", string(data))
	assert.Equal(t, other, h.app.editor.FilePath())
	assert.Len(t, h.app.sidebar.Files(), 2)
}

func TestSave_Failure(t *testing.T) {
	h := newHarness(t, "")
	h.typeText("x")

	h.run("w", t.TempDir())

	msg := h.modal(t)
	assert.True(t, strings.HasPrefix(msg.Text, "Could not save file: "), msg.Text)
	assert.True(t, h.app.editor.IsModified())
	assert.Equal(t, "", h.app.editor.FilePath())
}

func TestNew_ClearsDocument(t *testing.T) {
	path := writeFile(t, "e.txt", "text")
	h := newHarness(t, path)

	h.key(tcell.KeyCtrlN, 0, tcell.ModCtrl)

	assert.Equal(t, "", string(h.app.editor.GetBuffer().Bytes()))
	assert.Equal(t, "", h.app.editor.FilePath())
	assert.Equal(t, "New file created", h.app.statusBar.Message())
	assert.Equal(t, "Code Notepad - New File", h.app.Title())
	assert.Len(t, h.app.sidebar.Files(), 1, "the file list keeps earlier files")
}

func TestPrint(t *testing.T) {
	h := newHarness(t, "")
	h.key(tcell.KeyTab, 0, tcell.ModNone)
	h.typeText("x")

	h.key(tcell.KeyCtrlP, 0, tcell.ModCtrl)
	require.Equal(t, modehandler.ModeConfirm, h.mode())
	h.key(tcell.KeyRune, 'y', tcell.ModNone)

	require.Len(t, h.printer.jobs, 1)
	job := h.printer.jobs[0]
	assert.Equal(t, "New File", job.Title)
	assert.Equal(t, []string{"\tx"}, job.Lines)
	assert.Equal(t, 4, job.TabWidth)
	assert.True(t, job.LineNumbers)
	assert.Equal(t, settings.DefaultFontSize, job.FontSize)
	assert.Equal(t, modehandler.ModeNormal, h.mode())
}

func TestPrint_Declined(t *testing.T) {
	h := newHarness(t, "")
	h.run("print")
	h.key(tcell.KeyRune, 'n', tcell.ModNone)

	assert.Empty(t, h.printer.jobs)
	assert.Equal(t, "Print cancelled", h.app.statusBar.Message())
}

func TestPrint_Failure(t *testing.T) {
	h := newHarness(t, "")
	h.printer.err = fmt.Errorf("%w: %w", printing.ErrPrint, errors.New("no default destination"))

	h.run("print")
	h.key(tcell.KeyRune, 'y', tcell.ModNone)

	msg := h.modal(t)
	assert.Equal(t, "Could not print: no default destination", msg.Text)
}

func TestZoom(t *testing.T) {
	h := newHarness(t, "")

	h.key(tcell.KeyRune, '=', tcell.ModAlt)
	assert.Equal(t, 13, h.app.FontSize())

	for i := 0; i < 10; i++ {
		h.run("zoomout")
	}
	assert.Equal(t, settings.MinFontSize, h.app.FontSize())

	for i := 0; i < 30; i++ {
		h.run("zoomin")
	}
	assert.Equal(t, settings.MinFontSize+30, h.app.FontSize(), "zoom has no upper bound")

	h.run("print")
	h.key(tcell.KeyRune, 'y', tcell.ModNone)
	require.Len(t, h.printer.jobs, 1)
	assert.Equal(t, settings.MinFontSize+30, h.printer.jobs[0].FontSize)

	st, err := h.store.Load()
	require.NoError(t, err)
	assert.Equal(t, settings.DefaultFontSize, st.FontSize, "zoom is not persisted")
}

func TestSettings_SaveFromDialog(t *testing.T) {
	h := newHarness(t, "")

	h.key(tcell.KeyF2, 0, tcell.ModNone)
	require.Equal(t, modehandler.ModeSettings, h.mode())
	h.key(tcell.KeyEnter, 0, tcell.ModNone)

	assert.Equal(t, modehandler.ModeNormal, h.mode())
	assert.Equal(t, "Settings saved", h.app.statusBar.Message())
}

func TestSettings_CancelDiscards(t *testing.T) {
	h := newHarness(t, "")
	h.run("settings")
	h.key(tcell.KeyEscape, 0, tcell.ModNone)

	assert.Equal(t, modehandler.ModeNormal, h.mode())
	assert.NotEqual(t, "Settings saved", h.app.statusBar.Message())
}

func TestSettings_Apply(t *testing.T) {
	h := newHarness(t, "")
	h.app.setFontSize(20)

	st := settings.Defaults()
	st.TabWidth = 8
	st.FontSize = 16
	st.LineNumbers = false
	st.APIKey = "secret"
	h.app.saveSettings(st)

	assert.Equal(t, 8, h.app.editor.TabWidth())
	assert.Equal(t, 16, h.app.FontSize())
	assert.False(t, h.app.Settings().LineNumbers)
	saved, err := h.store.Load()
	require.NoError(t, err)
	assert.Equal(t, "secret", saved.APIKey)

	h.app.drawEditor()
	assert.Equal(t, 0, h.app.layout().GutterWidth)
}

func TestSettings_SaveFailure(t *testing.T) {
	h := newHarness(t, "")
	h.store.SaveErr = errors.New("read-only file system")

	st := settings.Defaults()
	st.TabWidth = 2
	h.app.saveSettings(st)

	msg := h.modal(t)
	assert.Equal(t, "Could not save settings: read-only file system", msg.Text)
	assert.Equal(t, 4, h.app.editor.TabWidth(), "failed save does not apply")
}

func TestSettings_Reload(t *testing.T) {
	h := newHarness(t, "")

	h.app.reloadSettings()
	assert.Equal(t, "Ready", h.app.statusBar.Message(), "unchanged settings are not re-applied")

	st := settings.Defaults()
	st.TabWidth = 6
	require.NoError(t, h.store.Save(st))
	h.app.reloadSettings()

	assert.Equal(t, 6, h.app.editor.TabWidth())
	assert.Equal(t, "Settings reloaded", h.app.statusBar.Message())
}

func TestThemeCommands(t *testing.T) {
	h := newHarness(t, "")

	h.run("theme")
	assert.Equal(t, "Current theme: Accurate", h.app.statusBar.Message())

	h.run("theme", "devcomfort", "dark")
	assert.Equal(t, "Theme set to: DevComfort Dark", h.app.statusBar.Message())
	assert.Equal(t, "DevComfort Dark", h.app.themeManager.Current().Name)

	h.run("theme", "nope")
	assert.Contains(t, h.app.statusBar.Message(), "theme 'nope' not found")
	assert.Equal(t, "DevComfort Dark", h.app.themeManager.Current().Name)

	h.run("themes")
	assert.Equal(t, "Available themes: Accurate, DevComfort Dark", h.app.statusBar.Message())
}

func TestFileList_OpenSelected(t *testing.T) {
	first := writeFile(t, "first.txt", "1")
	second := writeFile(t, "second.txt", "2")
	h := newHarness(t, first)
	h.run("e", second)

	h.key(tcell.KeyF3, 0, tcell.ModNone)
	require.Equal(t, modehandler.ModeSidebar, h.mode())
	h.key(tcell.KeyUp, 0, tcell.ModNone)
	h.key(tcell.KeyEnter, 0, tcell.ModNone)

	assert.Equal(t, "1", string(h.app.editor.GetBuffer().Bytes()))
	assert.Equal(t, modehandler.ModeNormal, h.mode())
}

func TestQuit(t *testing.T) {
	h := newHarness(t, "")
	h.typeText("unsaved")

	h.key(tcell.KeyCtrlQ, 0, tcell.ModCtrl)
	require.Equal(t, modehandler.ModeConfirm, h.mode())
	h.key(tcell.KeyRune, 'n', tcell.ModNone)
	assert.Equal(t, "Quit cancelled", h.app.statusBar.Message())

	h.key(tcell.KeyCtrlQ, 0, tcell.ModCtrl)
	h.key(tcell.KeyRune, 'y', tcell.ModNone)
	select {
	case <-h.app.quit:
	default:
		t.Fatal("quit was not signalled")
	}
}

func TestDrawEditor(t *testing.T) {
	path := writeFile(t, "draw.py", "def f():\n    return 1\n")
	h := newHarness(t, path)

	h.app.drawEditor()

	assert.True(t, strings.HasPrefix(h.row(0), "1 def f():"), h.row(0))
	assert.True(t, strings.HasPrefix(h.row(1), "2     return 1"), h.row(1))
	status := h.row(23)
	assert.Contains(t, status, "Opened "+path)

	h.app.statusBar.ResetTemporaryMessage()
	h.app.drawEditor()
	status = h.row(23)
	assert.Contains(t, status, "Ln 1, Col 1 | python | 12pt")

	x, y, visible := h.screen.GetCursor()
	assert.True(t, visible)
	assert.Equal(t, 2, x)
	assert.Equal(t, 0, y)
}

func TestDrawEditor_SidebarAndModal(t *testing.T) {
	path := writeFile(t, "side.txt", "text")
	h := newHarness(t, path)

	h.key(tcell.KeyF3, 0, tcell.ModNone)
	h.app.drawEditor()
	assert.Contains(t, h.row(0), "Files")
	assert.Contains(t, h.row(1), "side.txt")

	h.key(tcell.KeyEscape, 0, tcell.ModNone)
	h.run("e", filepath.Join(t.TempDir(), "nope.txt"))
	h.app.drawEditor()

	found := false
	for y := 0; y < 24; y++ {
		if strings.Contains(h.row(y), "Could not open file") {
			found = true
			break
		}
	}
	assert.True(t, found, "error modal is drawn")
}

func TestWordCount(t *testing.T) {
	path := writeFile(t, "wc.txt", "two words\nnaïve three here")
	h := newHarness(t, path)

	h.run("wc")

	assert.Equal(t, "Lines: 2, Words: 5, Characters: 26", h.app.statusBar.Message())
}
