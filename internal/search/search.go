// Package search filters a word list by headword prefix.
package search

import (
	"strings"

	"wordbook/internal/storage"
)

// Filter returns, in their original order, the words whose headword starts
// with prefix. Matching is case-sensitive. An empty prefix matches every word;
// hiding results for an empty query is up to the caller.
func Filter(words []storage.Word, prefix string) []storage.Word {
	matches := make([]storage.Word, 0, len(words))
	for _, w := range words {
		if strings.HasPrefix(w.Word, prefix) {
			matches = append(matches, w)
		}
	}
	return matches
}

// Limit truncates words to at most n entries. n <= 0 means no limit.
func Limit(words []storage.Word, n int) []storage.Word {
	if n <= 0 || len(words) <= n {
		return words
	}
	return words[:n]
}
