package domain

import "testing"

func TestWordPoints(t *testing.T) {
	t.Parallel()

	tests := []struct {
		word string
		want int
	}{
		{word: "hunk", want: 1},
		{word: "chunk", want: 5},
		{word: "chunked", want: 7},
		{word: "HUNK", want: 1},
	}
	for _, tt := range tests {
		if got := WordPoints(tt.word); got != tt.want {
			t.Errorf("WordPoints(%q) = %d, want %d", tt.word, got, tt.want)
		}
	}
}

func TestValidWordsPoints(t *testing.T) {
	t.Parallel()

	p := testPuzzle(t)

	tests := []struct {
		name  string
		words []string
		want  int
	}{
		{name: "single 4-letter", words: []string{"hunk"}, want: 1},
		{name: "4 and 5 letters", words: []string{"hunk", "chunk"}, want: 6},
		{name: "pangram with bonus", words: []string{"chunked"}, want: 14},
		{name: "all three", words: []string{"hunk", "chunk", "chunked"}, want: 20},
		{name: "invalid word ignored", words: []string{"hunk", "dunk"}, want: 1},
		{name: "duplicate counted once", words: []string{"hunk", "HUNK"}, want: 1},
		{name: "empty", words: nil, want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := ValidWordsPoints(tt.words, p, DefaultPangramBonus); got != tt.want {
				t.Errorf("ValidWordsPoints(%v) = %d, want %d", tt.words, got, tt.want)
			}
		})
	}
}

func TestAnyWordsPoints_CountsUnknownWords(t *testing.T) {
	t.Parallel()

	if got := AnyWordsPoints([]string{"hunk", "dunk"}); got != 2 {
		t.Errorf("AnyWordsPoints = %d, want 2", got)
	}
}

func TestMaxPoints(t *testing.T) {
	t.Parallel()

	p := testPuzzle(t)
	if got := MaxPoints(p, DefaultPangramBonus); got != 127 {
		t.Errorf("MaxPoints = %d, want 127", got)
	}
}

func TestRanking(t *testing.T) {
	t.Parallel()

	p := testPuzzle(t)
	max := MaxPoints(p, DefaultPangramBonus)

	tests := []struct {
		name   string
		points int
		want   string
	}{
		{name: "chunked plus hunk", points: 15, want: "Good"},   // 11.8% of 127
		{name: "all three fixture words", points: 20, want: "Solid"}, // 15.7%
		{name: "zero", points: 0, want: "Beginner"},
		{name: "everything", points: max, want: "Genius"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Ranking(tt.points, max); got != tt.want {
				t.Errorf("Ranking(%d, %d) = %q, want %q", tt.points, max, got, tt.want)
			}
		})
	}

	if got := Ranking(10, 0); got != "Beginner" {
		t.Errorf("Ranking with zero max = %q, want Beginner", got)
	}
}

func TestPointsPercentage(t *testing.T) {
	t.Parallel()

	if got := PointsPercentage(20, 127); got != 15.7 {
		t.Errorf("PointsPercentage(20, 127) = %v, want 15.7", got)
	}
	if got := PointsPercentage(5, 0); got != 0 {
		t.Errorf("PointsPercentage with zero max = %v, want 0", got)
	}
}
