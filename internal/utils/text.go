// Package utils holds text measurement helpers shared by the editor core
// and the renderer.
package utils

import (
	"unicode/utf8"

	"github.com/rivo/uniseg"

	"github.com/bethropolis/codepad/internal/types"
)

// Cell is one grapheme cluster as it appears on screen.
type Cell struct {
	RuneIndex int    // index of the cluster's first rune in the line
	Runes     []rune // nil for the spaces a tab expands to
	Col       int    // visual column of the cell
	Width     int    // columns occupied
	Tab       bool
}

// EachCell walks line by grapheme cluster, expanding tabs to the next
// multiple of tabWidth. fn returning false stops the walk.
func EachCell(line []byte, tabWidth int, fn func(c Cell) bool) {
	if tabWidth <= 0 {
		tabWidth = 1
	}
	col, runeIndex := 0, 0
	state := -1
	rest := line
	for len(rest) > 0 {
		var cluster []byte
		var boundaries int
		cluster, rest, boundaries, state = uniseg.Step(rest, state)
		width := boundaries >> uniseg.ShiftWidth
		runes := []rune(string(cluster))

		c := Cell{RuneIndex: runeIndex, Runes: runes, Col: col, Width: width}
		if len(runes) == 1 && runes[0] == '\t' {
			c.Tab = true
			c.Runes = nil
			c.Width = tabWidth - col%tabWidth
		} else if c.Width == 0 {
			// Control characters and lone combining marks still take a cell.
			c.Width = 1
		}
		if !fn(c) {
			return
		}
		col += c.Width
		runeIndex += len(runes)
	}
}

// VisualColumn returns the screen column at which rune index runeIndex of
// line starts.
func VisualColumn(line []byte, runeIndex, tabWidth int) int {
	if runeIndex <= 0 {
		return 0
	}
	col := 0
	EachCell(line, tabWidth, func(c Cell) bool {
		if c.RuneIndex >= runeIndex {
			return false
		}
		col = c.Col + c.Width
		return true
	})
	return col
}

// VisualWidth is the total screen width of line.
func VisualWidth(line []byte, tabWidth int) int {
	return VisualColumn(line, utf8.RuneCount(line), tabWidth)
}

// RuneIndexAtColumn returns the rune index of the cell covering visual
// column col, or the line's rune count past its end.
func RuneIndexAtColumn(line []byte, col, tabWidth int) int {
	idx := utf8.RuneCount(line)
	EachCell(line, tabWidth, func(c Cell) bool {
		if col < c.Col+c.Width {
			idx = c.RuneIndex
			return false
		}
		return true
	})
	return idx
}

// RuneIndexToByteOffset converts a rune index to a byte offset in line.
// Returns -1 if runeIndex is past the end.
func RuneIndexToByteOffset(line []byte, runeIndex int) int {
	if runeIndex <= 0 {
		return 0
	}
	byteOffset, currentRune := 0, 0
	for byteOffset < len(line) {
		if currentRune == runeIndex {
			return byteOffset
		}
		_, size := utf8.DecodeRune(line[byteOffset:])
		byteOffset += size
		currentRune++
	}
	if currentRune == runeIndex {
		return len(line)
	}
	return -1
}

// PositionAfter returns the position just past text inserted at pos.
func PositionAfter(pos types.Position, text []byte) types.Position {
	for len(text) > 0 {
		r, size := utf8.DecodeRune(text)
		text = text[size:]
		if r == '\n' {
			pos.Line++
			pos.Col = 0
			continue
		}
		pos.Col++
	}
	return pos
}
