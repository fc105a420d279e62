package textutil

import (
	"path/filepath"
	"regexp"
	"strings"
)

// DeriveVocabulary lists the document/role tokens stripped from filenames
// before attempting to derive a person identifier. It is a superset of
// MatchVocabulary and mirrors the classifier's token sets.
var DeriveVocabulary = []string{
	"front", "back", "selfie", "photo", "dl", "license", "id",
	"driver", "card", "document", "scan", "copy", "image",
}

// MatchVocabulary lists the role tokens stripped from filenames before
// fuzzy similarity comparison.
var MatchVocabulary = []string{
	"front", "back", "selfie", "photo", "dl", "license", "id",
}

var (
	derivePattern    = vocabularyPattern(DeriveVocabulary)
	matchPattern     = vocabularyPattern(MatchVocabulary)
	nonLetterPattern = regexp.MustCompile(`[^a-z]`)
	edgeDigitPattern = regexp.MustCompile(`^\d+_?|_?\d+$`)
)

// vocabularyPattern builds a case-insensitive pattern that matches any token
// from the list together with an optional trailing underscore.
func vocabularyPattern(tokens []string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)(` + strings.Join(tokens, "|") + `)_?`)
}

// StripExtension removes the file extension and lowercases the remainder.
func StripExtension(filename string) string {
	base := strings.ToLower(filename)
	return strings.TrimSuffix(base, strings.ToLower(filepath.Ext(filename)))
}

// StripDeriveVocabulary removes every occurrence of the derivation vocabulary
// from the name, then trims leading/trailing underscores and digit runs. The
// input should already be extension-free and lowercase.
func StripDeriveVocabulary(name string) string {
	cleaned := derivePattern.ReplaceAllString(name, "")
	cleaned = strings.Trim(cleaned, "_")
	return edgeDigitPattern.ReplaceAllString(cleaned, "")
}

// StripMatchVocabulary removes the match vocabulary and every non-letter
// character, leaving only lowercase letters for fuzzy comparison.
func StripMatchVocabulary(name string) string {
	cleaned := matchPattern.ReplaceAllString(strings.ToLower(name), "")
	return nonLetterPattern.ReplaceAllString(cleaned, "")
}
