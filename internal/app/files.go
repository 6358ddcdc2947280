package app

import (
	"context"
	"errors"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/bethropolis/codepad/internal/fileio"
	"github.com/bethropolis/codepad/internal/logger"
	"github.com/bethropolis/codepad/internal/printing"
)

// printTimeout bounds the print command.
const printTimeout = 30 * time.Second

// TitlePrefix starts every window title.
const TitlePrefix = "Code Notepad - "

// Title returns the window title for the current document.
func (a *App) Title() string {
	return TitlePrefix + a.documentName()
}

func (a *App) documentName() string {
	if path := a.editor.FilePath(); path != "" {
		return path
	}
	return "New File"
}

func (a *App) updateTitle() {
	a.tuiManager.SetTitle(a.Title())
}

func (a *App) newFile() {
	a.editor.NewDocument()
	a.pendingPath = ""
	a.statusBar.SetTemporaryMessage("New file created")
}

// openFile reads path into the document. A failure leaves the document as
// it was and reports the reason in a modal.
func (a *App) openFile(path string) bool {
	if err := a.editor.Load(path); err != nil {
		a.modeHandler.ShowError("%s", failureText(err, fileio.ErrOpen))
		return false
	}
	a.pendingPath = ""
	a.statusBar.SetTemporaryMessage("Opened %s", path)
	return true
}

// saveFile writes to path, or to the current path when path is empty.
// Without any path it asks for one. Only a save to a new path adds it to
// the file list.
func (a *App) saveFile(path string) bool {
	if path == "" && a.editor.FilePath() == "" {
		if a.pendingPath == "" {
			a.promptSaveAs()
			return false
		}
		path = a.pendingPath
	}
	if err := a.editor.Save(path); err != nil {
		a.modeHandler.ShowError("%s", failureText(err, fileio.ErrSave))
		return false
	}
	a.pendingPath = ""
	if path != "" {
		a.rememberFile(path)
	}
	a.statusBar.SetTemporaryMessage("Saved %s", a.editor.FilePath())
	return true
}

func (a *App) promptOpen() {
	a.modeHandler.Prompt("Open file: ", "", func(path string) { a.openFile(path) })
}

func (a *App) promptSaveAs() {
	initial := a.editor.FilePath()
	if initial == "" {
		initial = a.pendingPath
	}
	a.modeHandler.Prompt("Save as: ", initial, func(path string) { a.saveFile(path) })
}

func (a *App) printDocument() {
	a.modeHandler.Confirm("Print", "Print the document?", func() {
		job := printing.Job{
			Title:       a.documentName(),
			Lines:       a.editor.Lines(),
			TabWidth:    a.editor.TabWidth(),
			LineNumbers: a.prefs.LineNumbers,
			FontSize:    a.fontSize,
		}
		ctx, cancel := context.WithTimeout(context.Background(), printTimeout)
		defer cancel()
		if err := a.printer.Print(ctx, job); err != nil {
			a.modeHandler.ShowError("%s", failureText(err, printing.ErrPrint))
			return
		}
		logger.Infof("App: printed %q", job.Title)
		a.statusBar.SetTemporaryMessage("Document sent to printer")
	}, func() {
		a.statusBar.SetTemporaryMessage("Print cancelled")
	})
}

// failureText renders err for a modal as "<Category>: <reason>".
func failureText(err, category error) string {
	msg := err.Error()
	if !errors.Is(err, category) {
		msg = category.Error() + ": " + msg
	}
	r, size := utf8.DecodeRuneInString(msg)
	return string(unicode.ToUpper(r)) + msg[size:]
}
