package classify

import (
	"regexp"

	"imageorganizer/internal/textutil"
)

var (
	underscorePairPattern = regexp.MustCompile(`^([a-z]{2,})_([a-z]{2,})$`)
	lowercasePattern      = regexp.MustCompile(`^[a-z]+$`)
)

// DeriveIdentifier extracts a candidate person identifier from a filename.
// Returns "" when the cleaned filename matches no derivation pattern.
//
// The extension and the shared document/role vocabulary are stripped first,
// along with leading/trailing underscores and digit runs. The remainder is
// interpreted as firstname_lastname, a concatenated name to split, or a single
// name token, in that order.
func DeriveIdentifier(filename string) string {
	cleaned := textutil.StripDeriveVocabulary(textutil.StripExtension(filename))

	if m := underscorePairPattern.FindStringSubmatch(cleaned); m != nil {
		return m[1] + "_" + m[2]
	}

	// Concatenated firstnamelastname: try split points from offset 2 up to
	// min(8, len-2), keeping the first split with a plausible second half.
	if len(cleaned) >= 6 && len(cleaned) <= 20 && lowercasePattern.MatchString(cleaned) {
		limit := 8
		if len(cleaned)-2 < limit {
			limit = len(cleaned) - 2
		}
		for i := 2; i <= limit; i++ {
			first, last := cleaned[:i], cleaned[i:]
			if len(last) >= 2 {
				return first + "_" + last
			}
		}
	}

	if len(cleaned) >= 3 && len(cleaned) <= 25 && lowercasePattern.MatchString(cleaned) {
		return cleaned
	}
	return ""
}
