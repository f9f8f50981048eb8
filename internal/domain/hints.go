package domain

import (
	"fmt"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/samber/lo"
)

// HintSummary aggregates an answer subset (typically the unguessed answers)
// without revealing any word: which lengths remain, how many words share a
// first letter and length, how many share each two-letter prefix, and how
// many pangrams are left. Deterministic for a given input.
type HintSummary struct {
	Empty        bool
	WordLengths  map[int]struct{}
	FirstLetters map[string]map[int]int // first letter -> word length -> count
	TwoLetters   map[string]int         // two-letter prefix -> count
	PangramCount int
}

// NewHintSummary builds a summary over words. Words are normalized to
// lowercase; a word is counted as a pangram when it uses seven distinct
// letters, independent of any particular puzzle.
func NewHintSummary(words []string) *HintSummary {
	h := &HintSummary{
		Empty:        len(words) == 0,
		WordLengths:  make(map[int]struct{}),
		FirstLetters: make(map[string]map[int]int),
		TwoLetters:   make(map[string]int),
	}
	for _, raw := range words {
		w := NormalizeWord(raw)
		if w == "" {
			continue
		}
		h.WordLengths[len(w)] = struct{}{}
		first := w[:1]
		if h.FirstLetters[first] == nil {
			h.FirstLetters[first] = make(map[int]int)
		}
		h.FirstLetters[first][len(w)]++
		if len(w) >= 2 {
			h.TwoLetters[w[:2]]++
		}
		if distinctLetters(w) == TotalLetters {
			h.PangramCount++
		}
	}
	return h
}

func distinctLetters(word string) int {
	seen := make(map[rune]struct{}, len(word))
	for _, r := range word {
		seen[r] = struct{}{}
	}
	return len(seen)
}

// FormatTable renders the first-letter/length count grid with per-row and
// per-column sums, or a sentence when nothing remains.
func (h *HintSummary) FormatTable() string {
	if h.Empty {
		return "There are no remaining words."
	}

	lengths := lo.Keys(h.WordLengths)
	sort.Ints(lengths)
	letters := lo.Keys(h.FirstLetters)
	sort.Strings(letters)

	var sb strings.Builder
	tw := tabwriter.NewWriter(&sb, 0, 0, 1, ' ', 0)

	fmt.Fprint(tw, " ")
	for _, l := range lengths {
		fmt.Fprintf(tw, "\t%d", l)
	}
	fmt.Fprint(tw, "\tΣ\n")

	columnSums := make(map[int]int, len(lengths))
	for _, letter := range letters {
		counts := h.FirstLetters[letter]
		fmt.Fprint(tw, strings.ToUpper(letter))
		rowSum := 0
		for _, l := range lengths {
			if c := counts[l]; c != 0 {
				fmt.Fprintf(tw, "\t%d", c)
				rowSum += c
				columnSums[l] += c
			} else {
				fmt.Fprint(tw, "\t-")
			}
		}
		fmt.Fprintf(tw, "\t%d\n", rowSum)
	}

	total := 0
	fmt.Fprint(tw, "Σ")
	for _, l := range lengths {
		fmt.Fprintf(tw, "\t%d", columnSums[l])
		total += columnSums[l]
	}
	fmt.Fprintf(tw, "\t%d\n", total)

	tw.Flush()
	return strings.TrimRight(sb.String(), "\n")
}

// FormatTwoLetters renders the two-letter prefix counts as "Ch: 3, Hu: 2".
func (h *HintSummary) FormatTwoLetters() string {
	prefixes := lo.Keys(h.TwoLetters)
	sort.Strings(prefixes)
	parts := lo.Map(prefixes, func(p string, _ int) string {
		return fmt.Sprintf("%s%s: %d", strings.ToUpper(p[:1]), p[1:], h.TwoLetters[p])
	})
	return strings.Join(parts, ", ")
}

// FormatPangramCount renders the remaining-pangram count as an English
// sentence, e.g. "There are two remaining pangrams."
func (h *HintSummary) FormatPangramCount() string {
	c := h.PangramCount
	return fmt.Sprintf("There %s %s remaining %s.", copula(c), numberWord(c), pluralize("pangram", c))
}
