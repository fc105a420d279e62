package textutil

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.English)

// SanitizeFolderName reduces a display name to characters safe for an export
// folder: word characters, spaces, and hyphens. The result is trimmed of
// surrounding whitespace.
func SanitizeFolderName(name string) string {
	var b strings.Builder
	for _, r := range name {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
		case r == '_' || r == '-' || r == ' ':
			b.WriteRune(r)
		}
	}
	return strings.TrimSpace(b.String())
}

// TitleWords replaces underscores with spaces and capitalizes each word,
// turning an identifier like "john_smith" into "John Smith".
func TitleWords(identifier string) string {
	return titleCaser.String(strings.ReplaceAll(identifier, "_", " "))
}
