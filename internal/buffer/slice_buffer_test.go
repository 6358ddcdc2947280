package buffer

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/bethropolis/codepad/internal/fileio"
	"github.com/bethropolis/codepad/internal/types"
)

func pos(line, col int) types.Position { return types.Position{Line: line, Col: col} }

func TestNewSliceBuffer(t *testing.T) {
	sb := NewSliceBuffer()
	assert.Equal(t, 1, sb.LineCount())
	assert.Equal(t, "", sb.Text())
	assert.False(t, sb.IsModified())
}

func TestInsert_SingleLine(t *testing.T) {
	sb := NewSliceBufferFromText("def f():")
	info, err := sb.Insert(pos(0, 4), []byte("main_"))
	require.NoError(t, err)
	assert.Equal(t, "def main_f():", sb.Text())
	assert.Equal(t, types.EditInfo{StartLine: 0, OldEndLine: 0, NewEndLine: 0}, info)
	assert.True(t, sb.IsModified())
}

func TestInsert_MultiLine(t *testing.T) {
	sb := NewSliceBufferFromText("ab\ncd")
	info, err := sb.Insert(pos(0, 1), []byte("X\nY\nZ"))
	require.NoError(t, err)
	assert.Equal(t, "aX\nY\nZb\ncd", sb.Text())
	assert.Equal(t, 2, info.LineDelta())
}

func TestInsert_UnicodeColumns(t *testing.T) {
	sb := NewSliceBufferFromText("héllo")
	_, err := sb.Insert(pos(0, 2), []byte("-"))
	require.NoError(t, err)
	assert.Equal(t, "hé-llo", sb.Text())
}

func TestInsert_ClampsPosition(t *testing.T) {
	sb := NewSliceBufferFromText("ab")
	_, err := sb.Insert(pos(5, 99), []byte("!"))
	require.NoError(t, err)
	assert.Equal(t, "ab!", sb.Text())
}

func TestDelete_WithinLine(t *testing.T) {
	sb := NewSliceBufferFromText("return None")
	_, err := sb.Delete(pos(0, 6), pos(0, 11))
	require.NoError(t, err)
	assert.Equal(t, "return", sb.Text())
}

func TestDelete_AcrossLines(t *testing.T) {
	sb := NewSliceBufferFromText("one\ntwo\nthree")
	info, err := sb.Delete(pos(2, 2), pos(0, 1))
	require.NoError(t, err)
	assert.Equal(t, "oree", sb.Text())
	assert.Equal(t, -2, info.LineDelta())
}

func TestDelete_Empty(t *testing.T) {
	sb := NewSliceBufferFromText("x")
	info, err := sb.Delete(pos(0, 1), pos(0, 1))
	require.NoError(t, err)
	assert.Equal(t, types.EditInfo{}, info)
	assert.False(t, sb.IsModified())
}

func TestSlice(t *testing.T) {
	sb := NewSliceBufferFromText("one\ntwo\nthree")
	got, err := sb.Slice(pos(0, 1), pos(2, 2))
	require.NoError(t, err)
	assert.Equal(t, "ne\ntwo\nth", string(got))

	got, err = sb.Slice(pos(1, 1), pos(1, 3))
	require.NoError(t, err)
	assert.Equal(t, "wo", string(got))
}

func TestInsertThenDelete_RestoresText(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		text := rapid.StringMatching(`[a-z \n]{0,40}`).Draw(t, "text")
		ins := rapid.StringMatching(`[A-Z\n]{1,10}`).Draw(t, "insert")
		sb := NewSliceBufferFromText(text)
		line := rapid.IntRange(0, sb.LineCount()-1).Draw(t, "line")
		lineBytes, _ := sb.Line(line)
		col := rapid.IntRange(0, len(lineBytes)).Draw(t, "col")

		start := pos(line, col)
		_, err := sb.Insert(start, []byte(ins))
		require.NoError(t, err)

		got, err := sb.Slice(start, endOf(start, ins))
		require.NoError(t, err)
		require.Equal(t, ins, string(got))

		_, err = sb.Delete(start, endOf(start, ins))
		require.NoError(t, err)
		require.Equal(t, text, sb.Text())
	})
}

// endOf computes the position after inserting ASCII text at start.
func endOf(start types.Position, text string) types.Position {
	end := start
	for _, r := range text {
		if r == '\n' {
			end.Line++
			end.Col = 0
		} else {
			end.Col++
		}
	}
	return end
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	rapid.Check(t, func(t *rapid.T) {
		text := rapid.String().Draw(t, "text")
		path := filepath.Join(dir, "doc.txt")

		require.NoError(t, NewSliceBufferFromText(text).Save(path))

		loaded := NewSliceBuffer()
		require.NoError(t, loaded.Load(path))
		require.Equal(t, text, loaded.Text())
		require.Equal(t, path, loaded.FilePath())
		require.False(t, loaded.IsModified())
	})
}

func TestLoad_FailureLeavesBufferUntouched(t *testing.T) {
	sb := NewSliceBufferFromText("keep me")
	err := sb.Load(filepath.Join(t.TempDir(), "missing.py"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, fileio.ErrOpen))
	assert.Equal(t, "keep me", sb.Text())
	assert.Equal(t, "", sb.FilePath())
}

func TestSave_NoPath(t *testing.T) {
	err := NewSliceBuffer().Save("")
	assert.ErrorIs(t, err, fileio.ErrSave)
}

func TestSave_AdoptsPathAndClearsModified(t *testing.T) {
	sb := NewSliceBufferFromText("x")
	_, _ = sb.Insert(pos(0, 1), []byte("y"))
	path := filepath.Join(t.TempDir(), "out.txt")
	require.NoError(t, sb.Save(path))
	assert.Equal(t, path, sb.FilePath())
	assert.False(t, sb.IsModified())
}

func TestReset(t *testing.T) {
	sb := NewSliceBufferFromText("a\nb")
	sb.Reset()
	assert.Equal(t, "", sb.Text())
	assert.Equal(t, "", sb.FilePath())
}
