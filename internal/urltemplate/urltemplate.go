// Package urltemplate tokenizes action URL templates such as
// "api/app/book/{id}/chapters/{chapterId:int}" into literal text and
// placeholders so path parameters can be rewritten into interpolations.
package urltemplate

import (
	"fmt"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// Template is the root of a parsed URL template
type Template struct {
	Segments []*Segment `parser:"@@*"`
}

// Segment is either a {placeholder} or a run of literal text
type Segment struct {
	Placeholder *string `parser:"  @Placeholder"`
	Text        *string `parser:"| @Text"`
}

var urlLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Placeholder", Pattern: `\{[^{}]*\}`},
	{Name: "Text", Pattern: `[^{}]+|[{}]`},
})

var parser = participle.MustBuild[Template](
	participle.Lexer(urlLexer),
)

// Parse tokenizes a URL template. Unbalanced braces are kept as text.
func Parse(url string) (*Template, error) {
	tmpl, err := parser.ParseString("", url)
	if err != nil {
		return nil, fmt.Errorf("failed to parse url template: %w", err)
	}
	return tmpl, nil
}

// Name returns the parameter name of a placeholder segment, without route
// constraints ("{id:int}") or optional markers ("{id?}"). It returns "" for
// text segments.
func (s *Segment) Name() string {
	if s.Placeholder == nil {
		return ""
	}
	name := strings.TrimSuffix(strings.TrimPrefix(*s.Placeholder, "{"), "}")
	if i := strings.IndexAny(name, ":="); i >= 0 {
		name = name[:i]
	}
	return strings.TrimSpace(strings.TrimSuffix(name, "?"))
}

// Interpolate replaces every placeholder naming param (case-insensitive)
// with "${expr}" and returns the number of replacements.
func (t *Template) Interpolate(param, expr string) int {
	replaced := 0
	for _, s := range t.Segments {
		if s.Placeholder == nil || !strings.EqualFold(s.Name(), param) {
			continue
		}
		text := "${" + expr + "}"
		s.Placeholder = nil
		s.Text = &text
		replaced++
	}
	return replaced
}

// String reassembles the template.
func (t *Template) String() string {
	var b strings.Builder
	for _, s := range t.Segments {
		switch {
		case s.Placeholder != nil:
			b.WriteString(*s.Placeholder)
		case s.Text != nil:
			b.WriteString(*s.Text)
		}
	}
	return b.String()
}

// IsInterpolated reports whether url contains an interpolation.
func IsInterpolated(url string) bool {
	return strings.Contains(url, "${")
}
