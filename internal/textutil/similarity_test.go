package textutil

import "testing"

func TestSimilarSharedBase(t *testing.T) {
	if !Similar("johnsmith", "john_smith_front") {
		t.Fatal("expected johnsmith and john_smith_front to match after cleaning")
	}
}

func TestSimilarLengthGuard(t *testing.T) {
	if Similar("ab", "cd") {
		t.Fatal("expected short cleaned names to never match")
	}
	if Similar("dl_front", "dl_back") {
		t.Fatal("expected names that clean to nothing to never match")
	}
}

func TestSimilarDistinctNames(t *testing.T) {
	if Similar("johnsmith_front", "maryjones_front") {
		t.Fatal("expected unrelated names to stay below the threshold")
	}
}

func TestSimilarityBounds(t *testing.T) {
	if got := Similarity("abc", "abc"); got != 1.0 {
		t.Fatalf("identical strings: got %v, want 1.0", got)
	}
	if got := Similarity("", ""); got != 1.0 {
		t.Fatalf("empty strings: got %v, want 1.0", got)
	}
	if got := Similarity("abcd", "wxyz"); got != 0 {
		t.Fatalf("disjoint strings: got %v, want 0", got)
	}
}

func TestLevenshtein(t *testing.T) {
	cases := []struct {
		a, b string
		want int
	}{
		{"kitten", "sitting", 3},
		{"flaw", "lawn", 2},
		{"", "abc", 3},
		{"same", "same", 0},
	}
	for _, tc := range cases {
		if got := levenshtein(tc.a, tc.b); got != tc.want {
			t.Fatalf("levenshtein(%q, %q) = %d, want %d", tc.a, tc.b, got, tc.want)
		}
	}
}
