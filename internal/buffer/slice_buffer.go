package buffer

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/bethropolis/codepad/internal/fileio"
	"github.com/bethropolis/codepad/internal/types"
)

// SliceBuffer stores one byte slice per line. Lines never contain '\n'.
type SliceBuffer struct {
	lines    [][]byte
	filePath string
	modified bool
}

// NewSliceBuffer creates an empty SliceBuffer holding a single empty line.
func NewSliceBuffer() *SliceBuffer {
	return &SliceBuffer{lines: [][]byte{{}}}
}

// NewSliceBufferFromText creates an unnamed buffer holding text.
func NewSliceBufferFromText(text string) *SliceBuffer {
	sb := NewSliceBuffer()
	sb.setText(text)
	return sb
}

func (sb *SliceBuffer) setText(text string) {
	parts := strings.Split(text, "\n")
	lines := make([][]byte, len(parts))
	for i, p := range parts {
		lines[i] = []byte(p)
	}
	sb.lines = lines
}

// Load replaces the buffer content with the file at filePath. On failure
// the buffer is left untouched.
func (sb *SliceBuffer) Load(filePath string) error {
	text, err := fileio.ReadText(filePath)
	if err != nil {
		return err
	}
	sb.setText(text)
	sb.filePath = filePath
	sb.modified = false
	return nil
}

// Reset empties the buffer and forgets its file path.
func (sb *SliceBuffer) Reset() {
	sb.lines = [][]byte{{}}
	sb.filePath = ""
	sb.modified = false
}

func (sb *SliceBuffer) Lines() [][]byte {
	return sb.lines
}

func (sb *SliceBuffer) LineCount() int {
	return len(sb.lines)
}

func (sb *SliceBuffer) Line(index int) ([]byte, error) {
	if index < 0 || index >= len(sb.lines) {
		return nil, fmt.Errorf("line index %d out of bounds (0-%d)", index, len(sb.lines)-1)
	}
	return sb.lines[index], nil
}

// Bytes joins all lines with '\n'.
func (sb *SliceBuffer) Bytes() []byte {
	return bytes.Join(sb.lines, []byte("\n"))
}

func (sb *SliceBuffer) Text() string {
	return string(sb.Bytes())
}

// Save writes the buffer to filePath, or to the current path when
// filePath is empty. A successful save adopts the new path.
func (sb *SliceBuffer) Save(filePath string) error {
	path := sb.filePath
	if filePath != "" {
		path = filePath
	}
	if path == "" {
		return fmt.Errorf("%w: %w", fileio.ErrSave, errors.New("no file path specified"))
	}
	if err := fileio.WriteText(path, sb.Text()); err != nil {
		return err
	}
	sb.filePath = path
	sb.modified = false
	return nil
}

func (sb *SliceBuffer) IsModified() bool {
	return sb.modified
}

func (sb *SliceBuffer) FilePath() string {
	return sb.filePath
}

// clamp bounds pos to the buffer and returns its byte offset in the line.
func (sb *SliceBuffer) clamp(pos types.Position) (types.Position, int) {
	if pos.Line < 0 {
		pos.Line = 0
	}
	if pos.Line >= len(sb.lines) {
		pos.Line = len(sb.lines) - 1
	}
	if pos.Col < 0 {
		pos.Col = 0
	}
	line := sb.lines[pos.Line]
	offset := 0
	col := 0
	for offset < len(line) && col < pos.Col {
		_, size := utf8.DecodeRune(line[offset:])
		offset += size
		col++
	}
	pos.Col = col
	return pos, offset
}

// Insert inserts text at pos. Text may span several lines.
func (sb *SliceBuffer) Insert(pos types.Position, text []byte) (types.EditInfo, error) {
	if len(text) == 0 {
		return types.EditInfo{}, nil
	}
	pos, offset := sb.clamp(pos)

	current := sb.lines[pos.Line]
	tail := append([]byte(nil), current[offset:]...)
	head := append([]byte(nil), current[:offset]...)

	parts := bytes.Split(text, []byte("\n"))
	newLines := make([][]byte, len(parts))
	for i, p := range parts {
		newLines[i] = append([]byte(nil), p...)
	}
	newLines[0] = append(head, newLines[0]...)
	last := len(newLines) - 1
	newLines[last] = append(newLines[last], tail...)

	lines := make([][]byte, 0, len(sb.lines)+last)
	lines = append(lines, sb.lines[:pos.Line]...)
	lines = append(lines, newLines...)
	lines = append(lines, sb.lines[pos.Line+1:]...)
	sb.lines = lines
	sb.modified = true

	return types.EditInfo{
		StartLine:  pos.Line,
		OldEndLine: pos.Line,
		NewEndLine: pos.Line + last,
	}, nil
}

// Delete removes the text between start (inclusive) and end (exclusive).
// The positions may be given in either order.
func (sb *SliceBuffer) Delete(start, end types.Position) (types.EditInfo, error) {
	start, end = types.Order(start, end)
	start, startOffset := sb.clamp(start)
	end, endOffset := sb.clamp(end)
	if start == end {
		return types.EditInfo{}, nil
	}

	merged := append([]byte(nil), sb.lines[start.Line][:startOffset]...)
	merged = append(merged, sb.lines[end.Line][endOffset:]...)

	lines := make([][]byte, 0, len(sb.lines)-(end.Line-start.Line))
	lines = append(lines, sb.lines[:start.Line]...)
	lines = append(lines, merged)
	lines = append(lines, sb.lines[end.Line+1:]...)
	sb.lines = lines
	sb.modified = true

	return types.EditInfo{
		StartLine:  start.Line,
		OldEndLine: end.Line,
		NewEndLine: start.Line,
	}, nil
}

// Slice returns a copy of the text between start and end.
func (sb *SliceBuffer) Slice(start, end types.Position) ([]byte, error) {
	start, end = types.Order(start, end)
	start, startOffset := sb.clamp(start)
	end, endOffset := sb.clamp(end)

	if start.Line == end.Line {
		return append([]byte(nil), sb.lines[start.Line][startOffset:endOffset]...), nil
	}
	var out bytes.Buffer
	out.Write(sb.lines[start.Line][startOffset:])
	for i := start.Line + 1; i < end.Line; i++ {
		out.WriteByte('\n')
		out.Write(sb.lines[i])
	}
	out.WriteByte('\n')
	out.Write(sb.lines[end.Line][:endOffset])
	return out.Bytes(), nil
}

var _ Buffer = (*SliceBuffer)(nil)
