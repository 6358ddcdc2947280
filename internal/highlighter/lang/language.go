package lang

import (
	"fmt"
	"sync"

	"github.com/bethropolis/codepad/internal/highlighter"
)

// Language is a named, ordered highlight rule table.
type Language struct {
	// Name is the profile name used in config ("python", "go", "plain").
	Name string

	// Extensions maps file extensions to this language.
	Extensions []string

	// Linguist holds the language names go-enry reports for this profile.
	Linguist []string

	// Rules are applied in order; later rules paint over earlier ones.
	Rules []highlighter.RuleSpec

	once     sync.Once
	compiled *highlighter.RuleSet
	err      error
}

// RuleSet compiles the language's rules on first use.
func (l *Language) RuleSet() (*highlighter.RuleSet, error) {
	l.once.Do(func() {
		l.compiled, l.err = highlighter.Compile(l.Name, l.Rules)
	})
	return l.compiled, l.err
}

// MustRuleSet is RuleSet for the built-in tables, which are known to compile.
func (l *Language) MustRuleSet() *highlighter.RuleSet {
	rs, err := l.RuleSet()
	if err != nil {
		panic(fmt.Sprintf("lang: built-in profile %s: %v", l.Name, err))
	}
	return rs
}
