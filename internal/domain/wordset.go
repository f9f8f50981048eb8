package domain

import (
	"slices"

	"github.com/samber/lo"
)

// WordSet is an unordered set of lowercase words. The zero value (nil) is a
// usable empty read-only set; use NewWordSet or make before inserting.
type WordSet map[string]struct{}

// NewWordSet builds a WordSet from words, normalizing each to lowercase.
func NewWordSet(words ...string) WordSet {
	s := make(WordSet, len(words))
	for _, w := range words {
		s.Add(w)
	}
	return s
}

// Add inserts the normalized form of word into the set.
func (s WordSet) Add(word string) {
	s[NormalizeWord(word)] = struct{}{}
}

// Contains reports whether the normalized form of word is in the set.
func (s WordSet) Contains(word string) bool {
	_, ok := s[NormalizeWord(word)]
	return ok
}

// Len returns the number of words in the set.
func (s WordSet) Len() int { return len(s) }

// Sorted returns the words in lexicographic order.
func (s WordSet) Sorted() []string {
	words := lo.Keys(s)
	slices.Sort(words)
	return words
}

// Difference returns the words in s that are not in other.
func (s WordSet) Difference(other WordSet) WordSet {
	out := make(WordSet, len(s))
	for w := range s {
		if _, ok := other[w]; !ok {
			out[w] = struct{}{}
		}
	}
	return out
}

// Clone returns an independent copy of the set.
func (s WordSet) Clone() WordSet {
	out := make(WordSet, len(s))
	for w := range s {
		out[w] = struct{}{}
	}
	return out
}

// Equal reports whether both sets contain exactly the same words.
func (s WordSet) Equal(other WordSet) bool {
	if len(s) != len(other) {
		return false
	}
	for w := range s {
		if _, ok := other[w]; !ok {
			return false
		}
	}
	return true
}
