package domain

import "testing"

func TestJudge_PureLookup(t *testing.T) {
	t.Parallel()

	p := testPuzzle(t)

	tests := []struct {
		name string
		word string
		want JudgmentSet
	}{
		{name: "good word", word: "hunk", want: NewJudgmentSet(JudgmentGood)},
		{name: "pangram", word: "chunked", want: NewJudgmentSet(JudgmentGood, JudgmentPangram)},
		{name: "wrong word", word: "batarang", want: NewJudgmentSet(JudgmentWrong)},
		{name: "too short", word: "heh", want: NewJudgmentSet(JudgmentWrong)},
		{name: "empty", word: "", want: NewJudgmentSet(JudgmentWrong)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := Judge(tt.word, p, nil)
			if !got.Equal(tt.want) {
				t.Errorf("Judge(%q) = %v, want %v", tt.word, got, tt.want)
			}
		})
	}
}

func TestJudge_CaseInsensitive(t *testing.T) {
	t.Parallel()

	p := testPuzzle(t)
	for _, word := range []string{"Chunked", "CHUNKED", "chunked"} {
		got := Judge(word, p, nil)
		want := NewJudgmentSet(JudgmentGood, JudgmentPangram)
		if !got.Equal(want) {
			t.Errorf("Judge(%q) = %v, want %v", word, got, want)
		}
	}
}

func TestJudge_WrongNeverCoOccursWithGood(t *testing.T) {
	t.Parallel()

	p := testPuzzle(t)
	for _, word := range []string{"hunk", "chunked", "zamboni", "", "Chunk"} {
		got := Judge(word, p, NewWordSet())
		if got.Contains(JudgmentWrong) && len(got) != 1 {
			t.Errorf("Judge(%q): WRONG must be exclusive, got %v", word, got)
		}
	}
}

func TestJudge_ProgressMutation(t *testing.T) {
	t.Parallel()

	p := testPuzzle(t)
	progress := NewWordSet()

	first := Judge("chunked", p, progress)
	if !first.Equal(NewJudgmentSet(JudgmentGood, JudgmentPangram)) {
		t.Errorf("first judgment = %v", first)
	}
	if !progress.Contains("chunked") {
		t.Fatal("good word should be inserted into progress")
	}

	// Second identical guess reports the repeat.
	second := Judge("chunked", p, progress)
	if !second.Equal(NewJudgmentSet(JudgmentGood, JudgmentPangram, JudgmentAlreadyGotten)) {
		t.Errorf("second judgment = %v", second)
	}

	// Normalized form is what lands in the set.
	Judge("HUNK", p, progress)
	if !progress.Contains("hunk") {
		t.Error("progress should hold the lowercase form")
	}

	// Wrong words never touch the set.
	before := progress.Len()
	Judge("zamboni", p, progress)
	if progress.Len() != before {
		t.Error("wrong word must not mutate progress")
	}
}

func TestJudge_NilProgressNeverAlreadyGotten(t *testing.T) {
	t.Parallel()

	p := testPuzzle(t)
	for i := 0; i < 2; i++ {
		got := Judge("hunk", p, nil)
		if got.Contains(JudgmentAlreadyGotten) {
			t.Fatal("nil progress must never produce ALREADY_GOTTEN")
		}
	}
}

func TestJudge_PreSeededProgress(t *testing.T) {
	t.Parallel()

	p := testPuzzle(t)
	got := Judge("chunked", p, NewWordSet("hunk", "chunked"))
	want := NewJudgmentSet(JudgmentGood, JudgmentPangram, JudgmentAlreadyGotten)
	if !got.Equal(want) {
		t.Errorf("Judge with pre-seeded progress = %v, want %v", got, want)
	}
}

func TestJudgment_IsValid(t *testing.T) {
	t.Parallel()

	for _, j := range []Judgment{JudgmentWrong, JudgmentGood, JudgmentPangram, JudgmentAlreadyGotten} {
		if !j.IsValid() {
			t.Errorf("%s should be valid", j)
		}
	}
	if Judgment("MAYBE").IsValid() {
		t.Error("unknown judgment should be invalid")
	}
}
