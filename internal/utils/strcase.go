package utils

import (
	"strings"
	"unicode"
)

// SplitWords breaks an identifier into words on separators and case
// boundaries. "GetBookListAsync" -> [Get Book List Async],
// "HTMLParser" -> [HTML Parser], "book_store-v2" -> [book store v2].
func SplitWords(s string) []string {
	var words []string
	runes := []rune(s)
	start := -1

	flush := func(end int) {
		if start >= 0 && end > start {
			words = append(words, string(runes[start:end]))
		}
		start = -1
	}

	for i, r := range runes {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			flush(i)
			continue
		}
		if start < 0 {
			start = i
			continue
		}

		prev := runes[i-1]
		switch {
		case unicode.IsUpper(r) && (unicode.IsLower(prev) || unicode.IsDigit(prev)):
			flush(i)
			start = i
		case unicode.IsUpper(r) && unicode.IsUpper(prev) && i+1 < len(runes) && unicode.IsLower(runes[i+1]):
			flush(i)
			start = i
		}
	}
	flush(len(runes))

	return words
}

// CamelCase converts an identifier to camelCase.
func CamelCase(s string) string {
	words := SplitWords(s)
	if len(words) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(strings.ToLower(words[0]))
	for _, w := range words[1:] {
		b.WriteString(capitalize(w))
	}
	return b.String()
}

// KebabCase converts an identifier to kebab-case.
func KebabCase(s string) string {
	words := SplitWords(s)
	for i, w := range words {
		words[i] = strings.ToLower(w)
	}
	return strings.Join(words, "-")
}

func capitalize(w string) string {
	if w == "" {
		return w
	}
	lower := []rune(strings.ToLower(w))
	lower[0] = unicode.ToUpper(lower[0])
	return string(lower)
}

// NeedsQuoting reports whether name cannot be used as a bare property key.
func NeedsQuoting(name string) bool {
	if name == "" {
		return true
	}
	for i, r := range name {
		if i == 0 && unicode.IsDigit(r) {
			return true
		}
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' && r != '$' {
			return true
		}
	}
	return false
}

// QuoteIfNeeded wraps name in single quotes when it is not a valid identifier.
func QuoteIfNeeded(name string) string {
	if NeedsQuoting(name) {
		return "'" + strings.ReplaceAll(name, "'", `\'`) + "'"
	}
	return name
}
