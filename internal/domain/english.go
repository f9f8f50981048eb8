package domain

import "strconv"

var smallNumbers = []string{
	"zero", "one", "two", "three", "four", "five", "six", "seven", "eight",
	"nine", "ten", "eleven", "twelve", "thirteen", "fourteen", "fifteen",
	"sixteen", "seventeen", "eighteen", "nineteen", "twenty",
}

// numberWord spells out small counts for prose ("two remaining pangrams");
// larger counts fall back to digits.
func numberWord(n int) string {
	if n >= 0 && n < len(smallNumbers) {
		return smallNumbers[n]
	}
	return strconv.Itoa(n)
}

// pluralize appends "s" unless n is exactly one. Good enough for the nouns
// this package produces ("word", "pangram").
func pluralize(noun string, n int) string {
	if n == 1 {
		return noun
	}
	return noun + "s"
}

// copula returns "is" or "are" to agree with n.
func copula(n int) string {
	if n == 1 {
		return "is"
	}
	return "are"
}
