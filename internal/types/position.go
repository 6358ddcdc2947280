// Package types holds small value types shared across editor packages.
package types

// Position is a location in the buffer.
// Line is the 0-based line index, Col the 0-based rune index in that line.
type Position struct {
	Line int
	Col  int
}

// Before reports whether p sorts strictly before other.
func (p Position) Before(other Position) bool {
	return p.Line < other.Line || (p.Line == other.Line && p.Col < other.Col)
}

// Order returns the two positions sorted so that start <= end.
func Order(a, b Position) (start, end Position) {
	if b.Before(a) {
		return b, a
	}
	return a, b
}
