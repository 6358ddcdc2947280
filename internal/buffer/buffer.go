// Package buffer holds the document being edited as a slice of lines.
package buffer

import "github.com/bethropolis/codepad/internal/types"

// Buffer defines the text buffer operations the editor relies on.
type Buffer interface {
	Load(filePath string) error
	Reset()
	Lines() [][]byte
	Line(index int) ([]byte, error)
	LineCount() int
	Insert(pos types.Position, text []byte) (types.EditInfo, error)
	Delete(start, end types.Position) (types.EditInfo, error)
	Slice(start, end types.Position) ([]byte, error)
	Save(filePath string) error
	Bytes() []byte
	Text() string
	FilePath() string
	IsModified() bool
}
