// Package match implements the word comparison rules for Word Duel.
//
// The package is a pure function library with no state: words are
// normalized (trimmed and lower-cased), compared by Levenshtein edit
// distance, and considered a match when they are equal after
// normalization or differ by at most a single character edit.
//
// Matching Rules:
//
// A round is won when both players submit matching words. The single-typo
// tolerance means "color" and "colour" match (one insertion), as do
// "cat" and "bat" (one substitution), while "cat" and "dog" do not.
//
// Usage:
//
//	if match.Match(word1, word2) {
//		// round resolved, game over
//	}
//
//	d := match.Distance("kitten", "sitting") // 3
//
// Edge Cases:
//
// An empty word matches any single-character word (distance 1). This
// follows directly from the tolerance rule and is intentional; empty
// submissions are rejected upstream before comparison, so the case only
// arises when calling the comparator directly.
package match
