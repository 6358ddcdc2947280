// Package highlighter implements the line-local syntax highlight rule engine.
//
// A RuleSet is an ordered list of (pattern, style) rules. Highlighting a
// line runs every rule over it in order and records one Span per match;
// when spans overlap the later rule wins at paint time. There is no state
// carried between lines, so constructs spanning lines are not recognized.
package highlighter

import (
	"fmt"

	"github.com/dlclark/regexp2"
)

// Style is the set of visual attributes a rule applies.
// Foreground is a "#rrggbb" color; empty means the renderer default.
type Style struct {
	Foreground string
	Bold       bool
}

// IsZero reports whether s carries no attributes.
func (s Style) IsZero() bool {
	return s == Style{}
}

// Span is a styled run within one line. Start and Length count runes.
type Span struct {
	Start  int
	Length int
	Style  Style
}

// End returns the rune offset just past the span.
func (s Span) End() int {
	return s.Start + s.Length
}

// Rule pairs a compiled pattern with the style painted over its matches.
// Rules are immutable once constructed.
type Rule struct {
	name    string
	pattern *regexp2.Regexp
	style   Style
}

// NewRule compiles pattern. A malformed pattern is reported here; matching
// never fails afterwards.
func NewRule(name, pattern string, style Style) (Rule, error) {
	re, err := regexp2.Compile(pattern, regexp2.None)
	if err != nil {
		return Rule{}, fmt.Errorf("rule %q: invalid pattern %q: %w", name, pattern, err)
	}
	return Rule{name: name, pattern: re, style: style}, nil
}

// Name returns the rule's descriptive name (e.g. "keyword").
func (r Rule) Name() string { return r.name }

// Pattern returns the rule's source pattern.
func (r Rule) Pattern() string { return r.pattern.String() }

// Style returns the style the rule paints.
func (r Rule) Style() Style { return r.style }

// scan finds successive matches of the rule in line, calling visit for each
// non-empty match. The search resumes at the end of the previous match and
// always advances at least one rune, so the returned iteration count never
// exceeds len(line).
func (r Rule) scan(line []rune, visit func(Span)) (iterations int) {
	pos := 0
	for pos < len(line) {
		iterations++
		m, err := r.pattern.FindRunesMatchStartingAt(line, pos)
		if err != nil || m == nil {
			return iterations
		}
		if m.Length > 0 {
			visit(Span{Start: m.Index, Length: m.Length, Style: r.style})
		}
		next := m.Index + m.Length
		if next <= pos {
			next = pos + 1
		}
		pos = next
	}
	return iterations
}

// RuleSet is an ordered, fixed list of rules for one language profile.
type RuleSet struct {
	name  string
	rules []Rule
}

// RuleSpec is the uncompiled form of a Rule, used for static rule tables.
type RuleSpec struct {
	Name    string
	Pattern string
	Style   Style
}

// Compile builds a rule set from specs, failing on the first malformed
// pattern.
func Compile(name string, specs []RuleSpec) (*RuleSet, error) {
	rules := make([]Rule, 0, len(specs))
	for _, spec := range specs {
		r, err := NewRule(spec.Name, spec.Pattern, spec.Style)
		if err != nil {
			return nil, fmt.Errorf("profile %s: %w", name, err)
		}
		rules = append(rules, r)
	}
	return NewRuleSet(name, rules...), nil
}

// NewRuleSet builds a rule set from already compiled rules.
func NewRuleSet(name string, rules ...Rule) *RuleSet {
	return &RuleSet{name: name, rules: append([]Rule(nil), rules...)}
}

// Name returns the profile name of the rule set.
func (rs *RuleSet) Name() string {
	if rs == nil {
		return ""
	}
	return rs.name
}

// Len returns the number of rules.
func (rs *RuleSet) Len() int {
	if rs == nil {
		return 0
	}
	return len(rs.rules)
}

// Rules returns a copy of the rules in paint order.
func (rs *RuleSet) Rules() []Rule {
	if rs == nil {
		return nil
	}
	return append([]Rule(nil), rs.rules...)
}

// Highlight returns the spans of line in paint order: grouped by rule in
// rule order, and by position within a rule. It is a pure function of the
// line and the rule set.
func (rs *RuleSet) Highlight(line string) []Span {
	if rs == nil || line == "" {
		return nil
	}
	runes := []rune(line)
	var spans []Span
	for _, rule := range rs.rules {
		rule.scan(runes, func(s Span) {
			spans = append(spans, s)
		})
	}
	return spans
}

// Paint flattens spans onto a line of n runes, later spans overwriting
// earlier ones. Unstyled runes hold the zero Style.
func Paint(n int, spans []Span) []Style {
	if n <= 0 {
		return nil
	}
	styles := make([]Style, n)
	for _, s := range spans {
		start, end := s.Start, s.End()
		if start < 0 {
			start = 0
		}
		if end > n {
			end = n
		}
		for i := start; i < end; i++ {
			styles[i] = s.Style
		}
	}
	return styles
}
