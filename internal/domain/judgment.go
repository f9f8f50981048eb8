package domain

// Judgment classifies one aspect of a guessed word.
type Judgment string

const (
	JudgmentWrong         Judgment = "WRONG"
	JudgmentGood          Judgment = "GOOD"
	JudgmentPangram       Judgment = "PANGRAM"
	JudgmentAlreadyGotten Judgment = "ALREADY_GOTTEN"
)

func (j Judgment) String() string { return string(j) }

func (j Judgment) IsValid() bool {
	switch j {
	case JudgmentWrong, JudgmentGood, JudgmentPangram, JudgmentAlreadyGotten:
		return true
	}
	return false
}

// JudgmentSet is the combined outcome of judging a single guess.
// WRONG is always alone; GOOD may co-occur with PANGRAM and ALREADY_GOTTEN.
type JudgmentSet map[Judgment]struct{}

// NewJudgmentSet builds a JudgmentSet from the given flags.
func NewJudgmentSet(js ...Judgment) JudgmentSet {
	s := make(JudgmentSet, len(js))
	for _, j := range js {
		s[j] = struct{}{}
	}
	return s
}

// Contains reports whether the set includes j.
func (s JudgmentSet) Contains(j Judgment) bool {
	_, ok := s[j]
	return ok
}

// Equal reports whether both sets hold exactly the same judgments.
func (s JudgmentSet) Equal(other JudgmentSet) bool {
	if len(s) != len(other) {
		return false
	}
	for j := range s {
		if _, ok := other[j]; !ok {
			return false
		}
	}
	return true
}

// Judge evaluates a guessed word against the puzzle. The comparison is
// case-insensitive. When progress is non-nil it is consulted for
// ALREADY_GOTTEN and, if the word is good, the normalized word is inserted —
// the only mutation in the judging path. A nil progress set makes Judge a
// pure lookup: no ALREADY_GOTTEN, no side effects.
func Judge(word string, puzzle *Puzzle, progress WordSet) JudgmentSet {
	result := make(JudgmentSet, 3)
	w := NormalizeWord(word)
	if !puzzle.CountsAsAnswer(w) {
		result[JudgmentWrong] = struct{}{}
		return result
	}

	result[JudgmentGood] = struct{}{}
	if puzzle.IsPangram(w) {
		result[JudgmentPangram] = struct{}{}
	}
	if progress != nil {
		if progress.Contains(w) {
			result[JudgmentAlreadyGotten] = struct{}{}
		}
		progress.Add(w)
	}
	return result
}
