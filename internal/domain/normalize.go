package domain

import (
	"strings"
)

// NormalizeWord prepares a guessed or stored word for comparison:
//   - trims leading/trailing whitespace
//   - converts to lowercase
//
// Hyphens and apostrophes are preserved; puzzle answers never contain
// spaces, so inner whitespace is left alone and simply fails to match.
func NormalizeWord(word string) string {
	return strings.ToLower(strings.TrimSpace(word))
}

// NormalizeLetter uppercases a single puzzle letter for display-form storage.
func NormalizeLetter(letter string) string {
	return strings.ToUpper(strings.TrimSpace(letter))
}
