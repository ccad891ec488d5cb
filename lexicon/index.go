package lexicon

import (
	"sort"
	"strings"
	"unicode/utf8"
)

// sortLongestFirst orders a keyword table by descending keyword rune count.
// The sort is stable: equal-length keywords keep declaration order, which
// is the tie-break rule the parser depends on.
func sortLongestFirst[T any](items []T, keyword func(T) string) {
	sort.SliceStable(items, func(i, j int) bool {
		return utf8.RuneCountInString(keyword(items[i])) > utf8.RuneCountInString(keyword(items[j]))
	})
}

// matchFold reports whether keyword occurs as a literal substring of text,
// case-insensitive for Latin letters, and returns the matched slice of the
// original text so the caller can strip it.
func matchFold(text, keyword string) (string, bool) {
	if keyword == "" {
		return "", false
	}
	idx := strings.Index(strings.ToLower(text), strings.ToLower(keyword))
	if idx < 0 {
		return "", false
	}
	// ASCII lowering preserves byte offsets; Arabic text is unaffected by it.
	return text[idx : idx+len(keyword)], true
}
