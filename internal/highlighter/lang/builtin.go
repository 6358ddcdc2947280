package lang

import "github.com/bethropolis/codepad/internal/highlighter"

// Profile names.
const (
	Python = "python"
	Go     = "go"
	Plain  = "plain"

	// Auto asks Detect to pick a profile from the opened file.
	Auto = "auto"
)

// Default is used when detection finds nothing better.
const Default = Python

var (
	keywordStyle  = highlighter.Style{Foreground: "#FFD700", Bold: true}
	stringStyle   = highlighter.Style{Foreground: "#FF6B6B"}
	commentStyle  = highlighter.Style{Foreground: "#AAAAAA"}
	functionStyle = highlighter.Style{Foreground: "#FFA500", Bold: true}
	numberStyle   = highlighter.Style{Foreground: "#FFD700"}
)

var pythonKeywords = []string{
	"and", "as", "assert", "break", "class", "continue", "def", "del",
	"elif", "else", "except", "False", "finally", "for", "from", "global",
	"if", "import", "in", "is", "lambda", "None", "nonlocal", "not", "or",
	"pass", "raise", "return", "True", "try", "while", "with", "yield",
}

var goKeywords = []string{
	"break", "case", "chan", "const", "continue", "default", "defer", "else",
	"fallthrough", "for", "func", "go", "goto", "if", "import", "interface",
	"map", "package", "range", "return", "select", "struct", "switch", "type",
	"var", "nil", "true", "false", "iota",
}

func keywordRules(words []string) []highlighter.RuleSpec {
	rules := make([]highlighter.RuleSpec, 0, len(words))
	for _, w := range words {
		rules = append(rules, highlighter.RuleSpec{
			Name:    "keyword",
			Pattern: `\b` + w + `\b`,
			Style:   keywordStyle,
		})
	}
	return rules
}

func builtin() []*Language {
	python := &Language{
		Name:       Python,
		Extensions: []string{".py", ".pyw", ".pyi"},
		Linguist:   []string{"Python"},
		Rules: append(keywordRules(pythonKeywords),
			highlighter.RuleSpec{Name: "string", Pattern: `"[^"\\]*(\\.[^"\\]*)*"`, Style: stringStyle},
			highlighter.RuleSpec{Name: "string", Pattern: `'[^'\\]*(\\.[^'\\]*)*'`, Style: stringStyle},
			highlighter.RuleSpec{Name: "comment", Pattern: `#.*`, Style: commentStyle},
			highlighter.RuleSpec{Name: "function", Pattern: `\b[A-Za-z0-9_]+(?=\()`, Style: functionStyle},
			highlighter.RuleSpec{Name: "number", Pattern: `\b[0-9]+\b`, Style: numberStyle},
		),
	}

	golang := &Language{
		Name:       Go,
		Extensions: []string{".go"},
		Linguist:   []string{"Go"},
		Rules: append(keywordRules(goKeywords),
			highlighter.RuleSpec{Name: "string", Pattern: `"[^"\\]*(\\.[^"\\]*)*"`, Style: stringStyle},
			highlighter.RuleSpec{Name: "string", Pattern: "`[^`]*`", Style: stringStyle},
			highlighter.RuleSpec{Name: "string", Pattern: `'[^'\\]*(\\.[^'\\]*)*'`, Style: stringStyle},
			highlighter.RuleSpec{Name: "function", Pattern: `\b[A-Za-z0-9_]+(?=\()`, Style: functionStyle},
			highlighter.RuleSpec{Name: "number", Pattern: `\b[0-9]+\b`, Style: numberStyle},
			highlighter.RuleSpec{Name: "comment", Pattern: `//.*`, Style: commentStyle},
		),
	}

	plain := &Language{
		Name:       Plain,
		Extensions: []string{".txt", ".text", ".log"},
		Linguist:   []string{"Text"},
	}

	return []*Language{python, golang, plain}
}
