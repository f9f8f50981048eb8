package domain

import (
	"bytes"
	"regexp"
	"strings"
)

// OutsideLetters is the number of non-center letters in a puzzle.
const OutsideLetters = 6

// TotalLetters is the number of distinct usable letters (center included).
const TotalLetters = 7

// MinWordLength is the shortest accepted answer.
const MinWordLength = 4

var dayPattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// Puzzle is one day's Spelling Bee: a center letter that every answer must
// contain, six outer letters, and the official answer list. Immutable after
// construction except for the cached rendered image.
type Puzzle struct {
	Day      string   // YYYY-MM-DD, primary key for storage
	Center   string   // single uppercase letter
	Outside  []string // 6 distinct uppercase letters, order is display-significant
	Answers  WordSet  // lowercase valid words
	Pangrams WordSet  // subset of Answers using all 7 letters
	Image    []byte   // optional cached render, format self-described by magic bytes
}

// NewPuzzle validates and constructs a Puzzle. Letters are uppercased, words
// lowercased, and pangrams unioned into answers in case the source ever
// disagrees with itself.
func NewPuzzle(day, center string, outside, pangrams, answers []string) (*Puzzle, error) {
	var fieldErrs []FieldError
	if !dayPattern.MatchString(day) {
		fieldErrs = append(fieldErrs, FieldError{Field: "day", Message: "must be YYYY-MM-DD"})
	}
	center = NormalizeLetter(center)
	if len(center) != 1 {
		fieldErrs = append(fieldErrs, FieldError{Field: "center", Message: "must be a single letter"})
	}
	if len(outside) != OutsideLetters {
		fieldErrs = append(fieldErrs, FieldError{Field: "outside", Message: "must contain exactly 6 letters"})
	}
	if len(fieldErrs) > 0 {
		return nil, NewValidationErrors(fieldErrs)
	}

	p := &Puzzle{
		Day:      day,
		Center:   center,
		Outside:  make([]string, 0, OutsideLetters),
		Answers:  NewWordSet(answers...),
		Pangrams: NewWordSet(pangrams...),
	}
	for _, l := range outside {
		l = NormalizeLetter(l)
		if len(l) != 1 {
			return nil, NewValidationError("outside", "letters must be single characters")
		}
		p.Outside = append(p.Outside, l)
	}
	for w := range p.Pangrams {
		p.Answers[w] = struct{}{}
	}
	return p, nil
}

// LettersMatch reports whether both puzzles use the same letters, comparing
// center plus outside letters in source order. This is the original notion of
// puzzle equality: it deliberately ignores Day and Answers, so two puzzles
// from different days with the same letter layout compare equal. Do not use
// it as a full-identity key.
func (p *Puzzle) LettersMatch(other *Puzzle) bool {
	if other == nil {
		return false
	}
	return p.Center+strings.Join(p.Outside, "") == other.Center+strings.Join(other.Outside, "")
}

// CountsAsAnswer reports whether word is a valid answer, case-insensitively.
func (p *Puzzle) CountsAsAnswer(word string) bool {
	return p.Answers.Contains(word)
}

// IsPangram reports whether word is one of the puzzle's pangrams.
func (p *Puzzle) IsPangram(word string) bool {
	return p.Pangrams.Contains(word)
}

// PercentageComplete returns the share of answers present in gotten,
// as a percentage rounded to one decimal place.
func (p *Puzzle) PercentageComplete(gotten WordSet) float64 {
	if len(p.Answers) == 0 {
		return 0
	}
	pct := float64(len(gotten)) / float64(len(p.Answers)) * 100
	return float64(int(pct*10+0.5)) / 10
}

// UnguessedAnswers returns the answers not yet present in gotten.
func (p *Puzzle) UnguessedAnswers(gotten WordSet) WordSet {
	return p.Answers.Difference(gotten)
}

// ImageFormat identifies the cached image by its magic bytes.
// Returns "png", "gif", "jpg", or "" when absent or unrecognized.
func (p *Puzzle) ImageFormat() string {
	switch {
	case len(p.Image) >= 4 && bytes.Equal(p.Image[:4], []byte("\x89PNG")):
		return "png"
	case len(p.Image) >= 3 && bytes.Equal(p.Image[:3], []byte("GIF")):
		return "gif"
	case len(p.Image) >= 2 && bytes.Equal(p.Image[:2], []byte{0xff, 0xd8}):
		return "jpg"
	default:
		return ""
	}
}

// Letters returns all seven usable letters, center first.
func (p *Puzzle) Letters() []string {
	return append([]string{p.Center}, p.Outside...)
}
