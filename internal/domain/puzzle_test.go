package domain

import (
	"errors"
	"testing"
)

func testPuzzle(t *testing.T) *Puzzle {
	t.Helper()
	p, err := NewPuzzle(
		"2022-01-16", "H", []string{"C", "D", "E", "K", "N", "U"},
		[]string{"unchecked", "chunked"},
		[]string{
			"unheeded", "chucked", "unchecked", "hence", "heeded", "nunchuk",
			"chunk", "nunchuck", "hunched", "hunk", "check", "hunch", "chunked",
			"cheek", "checked", "chuck", "hued", "heck", "heed", "uncheck", "eunuch",
		},
	)
	if err != nil {
		t.Fatalf("NewPuzzle: %v", err)
	}
	return p
}

func TestNewPuzzle_Normalizes(t *testing.T) {
	t.Parallel()

	p, err := NewPuzzle(
		"2022-01-16", "h", []string{"c", "d", "e", "k", "n", "u"},
		[]string{"Chunked"},
		[]string{"HUNK"},
	)
	if err != nil {
		t.Fatalf("NewPuzzle: %v", err)
	}
	if p.Center != "H" {
		t.Errorf("Center = %q, want H", p.Center)
	}
	if p.Outside[0] != "C" {
		t.Errorf("Outside[0] = %q, want C", p.Outside[0])
	}
	if !p.Answers.Contains("hunk") {
		t.Error("answers should hold lowercase hunk")
	}
	// Pangrams are unioned into answers even when the source omits them.
	if !p.Answers.Contains("chunked") {
		t.Error("pangram chunked should be unioned into answers")
	}
	if !p.Pangrams.Contains("chunked") {
		t.Error("pangrams should hold lowercase chunked")
	}
}

func TestNewPuzzle_Validation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		day     string
		center  string
		outside []string
	}{
		{name: "malformed day", day: "Jan 16 2022", center: "H", outside: []string{"C", "D", "E", "K", "N", "U"}},
		{name: "empty day", day: "", center: "H", outside: []string{"C", "D", "E", "K", "N", "U"}},
		{name: "multi-char center", day: "2022-01-16", center: "HC", outside: []string{"C", "D", "E", "K", "N", "U"}},
		{name: "empty center", day: "2022-01-16", center: "", outside: []string{"C", "D", "E", "K", "N", "U"}},
		{name: "too few outside", day: "2022-01-16", center: "H", outside: []string{"C", "D"}},
		{name: "too many outside", day: "2022-01-16", center: "H", outside: []string{"C", "D", "E", "K", "N", "U", "X"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := NewPuzzle(tt.day, tt.center, tt.outside, nil, nil)
			if !errors.Is(err, ErrValidation) {
				t.Fatalf("NewPuzzle() error = %v, want ErrValidation", err)
			}
		})
	}
}

func TestPuzzle_BasicAttributes(t *testing.T) {
	t.Parallel()

	p := testPuzzle(t)
	if p.Day != "2022-01-16" {
		t.Errorf("Day = %q", p.Day)
	}
	if p.Answers.Len() != 21 {
		t.Errorf("Answers.Len() = %d, want 21", p.Answers.Len())
	}
	if p.Pangrams.Len() != 2 {
		t.Errorf("Pangrams.Len() = %d, want 2", p.Pangrams.Len())
	}
	for w := range p.Pangrams {
		if !p.Answers.Contains(w) {
			t.Errorf("pangram %q missing from answers", w)
		}
	}
}

// LettersMatch intentionally ignores Day and Answers: it compares only the
// letter layout, as the original engine did. Documented quirk, not a bug to
// fix silently.
func TestPuzzle_LettersMatch_IgnoresDayAndAnswers(t *testing.T) {
	t.Parallel()

	p := testPuzzle(t)
	other, err := NewPuzzle(
		"2023-05-05", "H", []string{"C", "D", "E", "K", "N", "U"},
		nil, []string{"hunch"},
	)
	if err != nil {
		t.Fatalf("NewPuzzle: %v", err)
	}
	if !p.LettersMatch(other) {
		t.Error("puzzles with identical letters should match regardless of day/answers")
	}

	reordered, err := NewPuzzle(
		"2022-01-16", "H", []string{"D", "C", "E", "K", "N", "U"},
		nil, nil,
	)
	if err != nil {
		t.Fatalf("NewPuzzle: %v", err)
	}
	if p.LettersMatch(reordered) {
		t.Error("outside letter order is part of the comparison")
	}
	if p.LettersMatch(nil) {
		t.Error("nil never matches")
	}
}

func TestPuzzle_PercentageComplete(t *testing.T) {
	t.Parallel()

	p := testPuzzle(t)
	got := p.PercentageComplete(NewWordSet("hunk", "chunk", "chunked"))
	want := 14.3 // 3/21, rounded to one decimal
	if got != want {
		t.Errorf("PercentageComplete = %v, want %v", got, want)
	}
	if p.PercentageComplete(nil) != 0 {
		t.Error("empty progress should be 0%")
	}
}

func TestPuzzle_ImageFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		image []byte
		want  string
	}{
		{name: "png", image: []byte("\x89PNG\r\n\x1a\n"), want: "png"},
		{name: "gif", image: []byte("GIF89a"), want: "gif"},
		{name: "jpg", image: []byte{0xff, 0xd8, 0xff, 0xe0}, want: "jpg"},
		{name: "absent", image: nil, want: ""},
		{name: "unknown", image: []byte("BM"), want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			p := testPuzzle(t)
			p.Image = tt.image
			if got := p.ImageFormat(); got != tt.want {
				t.Errorf("ImageFormat() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPuzzle_Letters(t *testing.T) {
	t.Parallel()

	p := testPuzzle(t)
	letters := p.Letters()
	if len(letters) != TotalLetters {
		t.Fatalf("Letters() returned %d letters", len(letters))
	}
	if letters[0] != "H" {
		t.Errorf("center should come first, got %q", letters[0])
	}
}
