package fileio

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestWriteThenRead_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	rapid.Check(t, func(rt *rapid.T) {
		text := rapid.String().Draw(rt, "text")
		path := filepath.Join(dir, "doc.txt")

		require.NoError(rt, WriteText(path, text))
		got, err := ReadText(path)
		require.NoError(rt, err)
		require.Equal(rt, text, got)
	})
}

func TestReadText_MissingFile(t *testing.T) {
	_, err := ReadText(filepath.Join(t.TempDir(), "nope.py"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrOpen))
	assert.True(t, errors.Is(err, fs.ErrNotExist))
	assert.Contains(t, err.Error(), "could not open file: ")
}

func TestReadText_EmptyPath(t *testing.T) {
	_, err := ReadText("")
	assert.ErrorIs(t, err, ErrOpen)
}

func TestWriteText_Directory(t *testing.T) {
	err := WriteText(t.TempDir(), "x")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSave)
	assert.Contains(t, err.Error(), "could not save file: ")
}

func TestWriteText_MissingParent(t *testing.T) {
	err := WriteText(filepath.Join(t.TempDir(), "missing", "a.txt"), "x")
	assert.ErrorIs(t, err, ErrSave)
}

func TestWriteText_KeepsPermissions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "script.py")
	require.NoError(t, os.WriteFile(path, []byte("old"), 0o600))

	require.NoError(t, WriteText(path, "new"))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestExists(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.txt")
	assert.False(t, Exists(path))
	require.NoError(t, WriteText(path, ""))
	assert.True(t, Exists(path))
	assert.False(t, Exists(dir))
}
