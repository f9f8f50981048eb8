package bee

import (
	"math"
	"sort"
	"strings"

	"github.com/samber/lo"

	"github.com/hivegames/beeline/internal/domain"
)

// UnguessedWords returns the answers not yet gotten. Without a ranker the
// list is alphabetical; with one it is sorted rarest-first, and words the
// ranker does not know are treated as rarest of all.
func (s *Session) UnguessedWords(ranker WordRanker) []string {
	words := s.puzzle.UnguessedAnswers(s.rec.GottenWords).Sorted()
	if ranker == nil {
		return words
	}

	rankOf := func(word string) int {
		if r, ok := ranker.Rank(word); ok {
			return r
		}
		return math.MaxInt
	}
	sort.SliceStable(words, func(i, j int) bool {
		return rankOf(words[i]) > rankOf(words[j])
	})
	return words
}

// ListWords renders the valid answers among the given words as an English
// list, each wrapped in marker. With separatePangrams the pangrams move to
// a trailing "and the pangram ..." clause.
func (s *Session) ListWords(words []string, separatePangrams bool, marker string, capitalize bool) string {
	valid := lo.Filter(words, func(w string, _ int) bool {
		return s.puzzle.CountsAsAnswer(w)
	})
	valid = lo.Map(valid, func(w string, _ int) string {
		return domain.NormalizeWord(w)
	})
	valid = lo.Uniq(valid)
	sort.Strings(valid)

	decorate := func(w string) string {
		if capitalize {
			w = strings.ToUpper(w[:1]) + w[1:]
		}
		return marker + w + marker
	}

	if !separatePangrams {
		return englishJoin(lo.Map(valid, func(w string, _ int) string {
			return decorate(w)
		}))
	}

	pangrams := lo.Filter(valid, func(w string, _ int) bool {
		return s.puzzle.IsPangram(w)
	})
	plain := lo.Filter(valid, func(w string, _ int) bool {
		return !s.puzzle.IsPangram(w)
	})

	items := lo.Map(plain, func(w string, _ int) string {
		return decorate(w)
	})
	if len(pangrams) > 0 {
		noun := "pangram"
		if len(pangrams) > 1 {
			noun = "pangrams"
		}
		clause := "the " + noun + " " + englishJoin(lo.Map(pangrams, func(w string, _ int) string {
			return decorate(w)
		}))
		items = append(items, clause)
	}
	return englishJoin(items)
}

// englishJoin joins items with commas and a final "and", Oxford comma
// included from three items up.
func englishJoin(items []string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	case 2:
		return items[0] + " and " + items[1]
	default:
		return strings.Join(items[:len(items)-1], ", ") + ", and " + items[len(items)-1]
	}
}
