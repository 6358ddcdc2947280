// Package fileio reads and writes documents as plain text.
//
// Every failure is reported in one of two user-visible categories, ErrOpen
// and ErrSave, with the operating system's reason appended.
package fileio

import (
	"errors"
	"fmt"
	"os"
)

var (
	// ErrOpen marks failures to read a document.
	ErrOpen = errors.New("could not open file")
	// ErrSave marks failures to write a document.
	ErrSave = errors.New("could not save file")
)

// DefaultPerm is the mode used for newly created documents.
const DefaultPerm os.FileMode = 0o644

// ReadText returns the full contents of path as a string.
func ReadText(path string) (string, error) {
	if path == "" {
		return "", fmt.Errorf("%w: no file path given", ErrOpen)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrOpen, err)
	}
	return string(data), nil
}

// WriteText replaces the contents of path with text, creating the file if
// needed. Existing permissions are kept.
func WriteText(path, text string) error {
	if path == "" {
		return fmt.Errorf("%w: no file path given", ErrSave)
	}
	perm := DefaultPerm
	if info, err := os.Stat(path); err == nil {
		if info.IsDir() {
			return fmt.Errorf("%w: %s is a directory", ErrSave, path)
		}
		perm = info.Mode().Perm()
	}
	if err := os.WriteFile(path, []byte(text), perm); err != nil {
		return fmt.Errorf("%w: %w", ErrSave, err)
	}
	return nil
}

// Exists reports whether path names an existing regular file.
func Exists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
