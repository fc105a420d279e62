package textutil

// similarityThreshold is the minimum normalized edit-distance similarity for
// two cleaned filenames to be considered the same person.
const similarityThreshold = 0.6

// Similar reports whether two filenames likely refer to the same person after
// vocabulary stripping. Cleaned names shorter than 3 letters carry too little
// signal and never match.
func Similar(a, b string) bool {
	cleanA := StripMatchVocabulary(a)
	cleanB := StripMatchVocabulary(b)
	if len(cleanA) < 3 || len(cleanB) < 3 {
		return false
	}
	return Similarity(cleanA, cleanB) > similarityThreshold
}

// Similarity computes normalized edit-distance similarity in [0, 1]:
// 1 - levenshtein(longer, shorter) / len(longer).
func Similarity(a, b string) float64 {
	longer, shorter := a, b
	if len(b) > len(a) {
		longer, shorter = b, a
	}
	if len(longer) == 0 {
		return 1.0
	}
	distance := levenshtein(longer, shorter)
	return float64(len(longer)-distance) / float64(len(longer))
}

// levenshtein computes the edit distance between two strings using a
// two-row dynamic programming table.
func levenshtein(a, b string) int {
	if a == b {
		return 0
	}
	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := 0; j <= len(b); j++ {
		prev[j] = j
	}
	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = minInt(prev[j-1]+cost, minInt(curr[j-1]+1, prev[j]+1))
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
