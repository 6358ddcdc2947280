package lang

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bethropolis/codepad/internal/highlighter"
)

func TestBuiltinProfilesCompile(t *testing.T) {
	for _, l := range GetAll() {
		rs, err := l.RuleSet()
		require.NoError(t, err, l.Name)
		assert.Equal(t, len(l.Rules), rs.Len(), l.Name)
	}
}

func TestPythonProfile_RuleTable(t *testing.T) {
	py := Get(Python)
	require.NotNil(t, py)
	// 33 keywords, two strings, comment, function, number.
	require.Len(t, py.Rules, 38)
	assert.Equal(t, `\band\b`, py.Rules[0].Pattern)
	assert.Equal(t, `\byield\b`, py.Rules[32].Pattern)
	assert.Equal(t, "comment", py.Rules[35].Name)
	assert.Equal(t, "number", py.Rules[37].Name)
}

func TestPythonProfile_Highlight(t *testing.T) {
	rs := Get(Python).MustRuleSet()

	line := `def greet(name): return "hi" # 42`
	styles := highlighter.Paint(utf8.RuneCountInString(line), rs.Highlight(line))

	assert.Equal(t, keywordStyle, styles[0])               // def
	assert.Equal(t, functionStyle, styles[4])              // greet
	assert.True(t, styles[9].IsZero())                     // (
	assert.Equal(t, keywordStyle, styles[17])              // return
	assert.Equal(t, stringStyle, styles[24])               // "hi"
	assert.Equal(t, commentStyle, styles[29])              // #
	assert.Equal(t, numberStyle, styles[31], "number rule paints after comment")
}

func TestPythonProfile_EscapedQuote(t *testing.T) {
	rs := Get(Python).MustRuleSet()

	line := `x = "a\"b" + 'c'`
	spans := rs.Highlight(line)
	var strs []highlighter.Span
	for _, s := range spans {
		if s.Style == stringStyle {
			strs = append(strs, s)
		}
	}
	require.Len(t, strs, 2)
	assert.Equal(t, highlighter.Span{Start: 4, Length: 6, Style: stringStyle}, strs[0])
	assert.Equal(t, highlighter.Span{Start: 13, Length: 3, Style: stringStyle}, strs[1])
}

func TestPlainProfile_NoSpans(t *testing.T) {
	rs := Get(Plain).MustRuleSet()
	assert.Empty(t, rs.Highlight("def x(): return 1"))
}

func TestDetect(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		content string
		want    string
	}{
		{"python extension", "script.py", "", Python},
		{"go extension", "main.go", "", Go},
		{"text extension", "notes.txt", "def foo():", Plain},
		{"upper case extension", "MAIN.GO", "", Go},
		{"python shebang", "runme", "#!/usr/bin/env python3\nprint(1)\n", Python},
		{"empty", "", "", Default},
		{"unknown extension", "data.zzqq", "", Default},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := Detect(tt.path, []byte(tt.content))
			require.NotNil(t, l)
			assert.Equal(t, tt.want, l.Name)
		})
	}
}

func TestResolve(t *testing.T) {
	assert.Equal(t, Go, Resolve("go", "x.py", nil).Name)
	assert.Equal(t, Plain, Resolve(" PLAIN ", "", nil).Name)
	assert.Equal(t, Python, Resolve("cobol", "x.go", nil).Name)
	assert.Equal(t, Go, Resolve(Auto, "x.go", nil).Name)
	assert.Equal(t, Go, Resolve("", "x.go", nil).Name)
}

func TestRegister_ReplacesByName(t *testing.T) {
	custom := &Language{
		Name:       "ini",
		Extensions: []string{".ini"},
		Rules: []highlighter.RuleSpec{
			{Name: "section", Pattern: `^\[.*\]$`, Style: keywordStyle},
		},
	}
	Register(custom)
	assert.Same(t, custom, Get("ini"))
	assert.Same(t, custom, GetForFile("/etc/app.INI"))

	replacement := &Language{Name: "ini", Extensions: []string{".ini"}}
	Register(replacement)
	assert.Same(t, replacement, Get("ini"))

	count := 0
	for _, l := range GetAll() {
		if l.Name == "ini" {
			count++
		}
	}
	assert.Equal(t, 1, count)
}
