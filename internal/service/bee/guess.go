package bee

import (
	"context"
	"fmt"
	"strings"
	"unicode"

	"github.com/hivegames/beeline/internal/domain"
)

// Guess judges one word against the session's puzzle and progress. A good
// word joins the gotten set and the session is persisted before the
// judgment is returned.
func (s *Session) Guess(ctx context.Context, word string) (domain.JudgmentSet, error) {
	before := s.rec.GottenWords.Len()
	judgment := domain.Judge(word, s.puzzle, s.rec.GottenWords)

	if s.rec.GottenWords.Len() != before {
		if err := s.persist(ctx); err != nil {
			return nil, fmt.Errorf("guess %q: %w", word, err)
		}
	}
	return judgment, nil
}

// WordJudgment pairs one candidate word with its judgment.
type WordJudgment struct {
	Word     string
	Judgment domain.JudgmentSet
}

// GuessLineResult aggregates the judgments of one free-text guess line for
// presentation layers.
type GuessLineResult struct {
	Judged       []WordJudgment
	PointsGained int
	SawPangram   bool
	SawRepeat    bool
}

// GuessLine splits a free-text line into candidate words and judges each in
// order. Newly gotten words are persisted once, after the whole line is
// judged.
func (s *Session) GuessLine(ctx context.Context, line string) (*GuessLineResult, error) {
	words := splitGuessLine(line)
	result := &GuessLineResult{}

	before := s.rec.GottenWords.Len()
	for _, word := range words {
		judgment := domain.Judge(word, s.puzzle, s.rec.GottenWords)
		result.Judged = append(result.Judged, WordJudgment{Word: word, Judgment: judgment})

		switch {
		case judgment.Contains(domain.JudgmentAlreadyGotten):
			result.SawRepeat = true
		case judgment.Contains(domain.JudgmentGood):
			result.PointsGained += domain.WordPoints(word)
			if judgment.Contains(domain.JudgmentPangram) {
				result.PointsGained += s.bonus
				result.SawPangram = true
			}
		}
	}

	if s.rec.GottenWords.Len() != before {
		if err := s.persist(ctx); err != nil {
			return nil, fmt.Errorf("guess line: %w", err)
		}
	}
	return result, nil
}

// splitGuessLine extracts candidate words from a free-text line, treating
// any run of non-letters as a separator.
func splitGuessLine(line string) []string {
	fields := strings.FieldsFunc(line, func(r rune) bool {
		return !unicode.IsLetter(r)
	})
	return fields
}
