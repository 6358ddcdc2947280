// Package highlight caches per-line highlight spans for the editor.
package highlight

import (
	"github.com/bethropolis/codepad/internal/highlighter"
	"github.com/bethropolis/codepad/internal/logger"
	"github.com/bethropolis/codepad/internal/types"
)

// Cache memoizes RuleSet.Highlight per line index. Entries are dropped when
// their line changes and recomputed from scratch on the next lookup.
type Cache struct {
	rules *highlighter.RuleSet
	lines map[int][]highlighter.Span
}

// NewCache creates a cache for rules. A nil rule set highlights nothing.
func NewCache(rules *highlighter.RuleSet) *Cache {
	return &Cache{rules: rules, lines: make(map[int][]highlighter.Span)}
}

// RuleSet returns the active rule set.
func (c *Cache) RuleSet() *highlighter.RuleSet { return c.rules }

// SpansFor returns the spans of line index idx whose text is line.
func (c *Cache) SpansFor(idx int, line []byte) []highlighter.Span {
	if spans, ok := c.lines[idx]; ok {
		return spans
	}
	spans := c.rules.Highlight(string(line))
	c.lines[idx] = spans
	return spans
}

// Invalidate drops the lines an edit touched. When the line count changed,
// every later line moved and is dropped as well.
func (c *Cache) Invalidate(edit types.EditInfo) {
	if edit.LineDelta() != 0 {
		for idx := range c.lines {
			if idx >= edit.StartLine {
				delete(c.lines, idx)
			}
		}
		return
	}
	for idx := edit.StartLine; idx <= edit.NewEndLine; idx++ {
		delete(c.lines, idx)
	}
}

// Reset empties the cache.
func (c *Cache) Reset() {
	if len(c.lines) > 0 {
		logger.DebugTagf("highlight", "Highlight cache reset (%d lines)", len(c.lines))
	}
	c.lines = make(map[int][]highlighter.Span)
}

// Len returns the number of cached lines.
func (c *Cache) Len() int { return len(c.lines) }
