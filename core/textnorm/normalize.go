package textnorm

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const htmlApostrophe = "&#39;"

// Normalize returns the comparison form of a title. It never fails and is idempotent.
func Normalize(raw string) string {
	if raw == "" {
		return ""
	}

	// cases.Caser keeps state between calls, so each call gets its own.
	lowered := cases.Lower(language.Und).String(raw)
	lowered = strings.ReplaceAll(lowered, htmlApostrophe, "'")

	var b strings.Builder
	b.Grow(len(lowered))
	for _, r := range lowered {
		if isWordRune(r) || isSpace(r) {
			b.WriteRune(r)
		}
	}

	return strings.Join(strings.FieldsFunc(b.String(), isSpace), " ")
}

// Prefix returns the first n runes of s, or s itself when it is shorter.
func Prefix(s string, n int) string {
	if n <= 0 {
		return ""
	}
	count := 0
	for i := range s {
		if count == n {
			return s[:i]
		}
		count++
	}
	return s
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsNumber(r)
}

// isSpace also accepts the ASCII file, group, record and unit separators
// (U+001C-U+001F), which regular expression \s treats as whitespace.
func isSpace(r rune) bool {
	return unicode.IsSpace(r) || (r >= 0x1c && r <= 0x1f)
}
