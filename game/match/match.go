package match

import "strings"

// Normalize prepares a word for comparison by trimming surrounding
// whitespace and lower-casing it.
func Normalize(word string) string {
	return strings.ToLower(strings.TrimSpace(word))
}

// Distance returns the Levenshtein edit distance between a and b,
// counting insertions, deletions, and substitutions at cost 1 each.
// It operates on runes, so multi-byte characters count as one edit.
func Distance(a, b string) int {
	if a == b {
		return 0
	}

	ra := []rune(a)
	rb := []rune(b)

	if len(ra) == 0 {
		return len(rb)
	}
	if len(rb) == 0 {
		return len(ra)
	}

	// Single-row dynamic programming over the shorter dimension.
	dp := make([]int, len(rb)+1)
	for j := range dp {
		dp[j] = j
	}

	for i := 1; i <= len(ra); i++ {
		prev := dp[0] // dp[i-1][j-1]
		dp[0] = i
		for j := 1; j <= len(rb); j++ {
			cur := dp[j]
			if ra[i-1] == rb[j-1] {
				dp[j] = prev
			} else {
				dp[j] = min(prev, cur, dp[j-1]) + 1
			}
			prev = cur
		}
	}

	return dp[len(rb)]
}

// Match reports whether two words count as a successful round under the
// single-typo tolerance rule: equal after normalization, or within edit
// distance 1 of each other.
func Match(a, b string) bool {
	w1 := Normalize(a)
	w2 := Normalize(b)
	if w1 == w2 {
		return true
	}
	return Distance(w1, w2) <= 1
}
