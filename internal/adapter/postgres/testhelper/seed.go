package testhelper

import (
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/google/uuid"

	"github.com/hivegames/beeline/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// FixturePuzzle builds the 2022-01-16 H/CDEKNU puzzle used throughout the
// test suite (21 answers, 2 pangrams, 127 max points at the default bonus).
func FixturePuzzle(t *testing.T, day string) *domain.Puzzle {
	t.Helper()

	p, err := domain.NewPuzzle(
		day, "H", []string{"C", "D", "E", "K", "N", "U"},
		[]string{"unchecked", "chunked"},
		[]string{
			"unheeded", "chucked", "unchecked", "hence", "heeded", "nunchuk",
			"chunk", "nunchuck", "hunched", "hunk", "check", "hunch", "chunked",
			"cheek", "checked", "chuck", "hued", "heck", "heed", "uncheck", "eunuch",
		},
	)
	if err != nil {
		t.Fatalf("testhelper: FixturePuzzle: %v", err)
	}
	return p
}

// SessionID returns a fresh unique session id for tests.
func SessionID() string {
	return uuid.NewString()
}

// UniqueDay returns a unique day string so tests sharing one database never
// collide on the puzzles primary key. The year segment carries the
// uniqueness; the result still matches YYYY-MM-DD.
func UniqueDay(t *testing.T) string {
	t.Helper()
	return fmt.Sprintf("%04d-01-16", 1000+dayCounter.Add(1))
}

var dayCounter atomic.Int64
