package domain

// DefaultPangramBonus is the flat bonus a pangram earns on top of its
// length score. The NYT value is a domain parameter, not something this
// engine can derive, so it stays an explicit constant with a config override.
const DefaultPangramBonus = 7

// RankStep is one rung of the qualitative ranking ladder: the minimum share
// of the maximum score (in percent) needed to earn the label.
type RankStep struct {
	Percent float64
	Label   string
}

// RankSteps is the NYT ladder, highest first. Ranking takes the first rung
// whose threshold the score meets.
var RankSteps = []RankStep{
	{70, "Genius"},
	{50, "Amazing"},
	{40, "Great"},
	{25, "Nice"},
	{15, "Solid"},
	{8, "Good"},
	{5, "Moving Up"},
	{2, "Good Start"},
	{0, "Beginner"},
}

// WordPoints returns the length-based score of a single word: four-letter
// words are worth one point, longer words one point per letter.
func WordPoints(word string) int {
	w := NormalizeWord(word)
	if len(w) <= MinWordLength {
		return 1
	}
	return len(w)
}

// AnyWordsPoints sums length-based points over words without consulting any
// puzzle, so unknown words count and no pangram bonus applies.
func AnyWordsPoints(words []string) int {
	total := 0
	for _, w := range words {
		total += WordPoints(w)
	}
	return total
}

// ValidWordsPoints scores words against the puzzle: words that are not valid
// answers contribute nothing, and each pangram earns the flat bonus on top
// of its length score.
func ValidWordsPoints(words []string, puzzle *Puzzle, bonus int) int {
	total := 0
	counted := make(WordSet, len(words))
	for _, raw := range words {
		w := NormalizeWord(raw)
		if !puzzle.CountsAsAnswer(w) || counted.Contains(w) {
			continue
		}
		counted.Add(w)
		total += WordPoints(w)
		if puzzle.IsPangram(w) {
			total += bonus
		}
	}
	return total
}

// MaxPoints is the score of the puzzle's complete answer set.
func MaxPoints(puzzle *Puzzle, bonus int) int {
	return ValidWordsPoints(puzzle.Answers.Sorted(), puzzle, bonus)
}

// PointsPercentage returns points as a share of max, rounded to one decimal.
func PointsPercentage(points, max int) float64 {
	if max == 0 {
		return 0
	}
	pct := float64(points) / float64(max) * 100
	return float64(int(pct*10+0.5)) / 10
}

// Ranking maps a score to its qualitative label, walking the ladder from the
// top down and taking the first rung reached.
func Ranking(points, max int) string {
	if max == 0 {
		return RankSteps[len(RankSteps)-1].Label
	}
	pct := float64(points) / float64(max) * 100
	for _, step := range RankSteps {
		if pct >= step.Percent {
			return step.Label
		}
	}
	return RankSteps[len(RankSteps)-1].Label
}
