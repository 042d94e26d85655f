package password

import "unicode/utf8"

// Strength is a coarse three level rating of a password.
type Strength string

const (
	StrengthWeak   Strength = "weak"
	StrengthMedium Strength = "medium"
	StrengthStrong Strength = "strong"
)

// MaxPoints is the highest value Points can return.
const MaxPoints = 7

// Points sums the independent strength signals of pw, one point each:
// length >= 8, >= 12, >= 16, a lowercase letter, an uppercase letter, a digit
// and any character outside [A-Za-z0-9]. Length is counted in runes.
func Points(pw string) int {
	var lower, upper, digit, symbol bool
	for _, r := range pw {
		switch {
		case r >= 'a' && r <= 'z':
			lower = true
		case r >= 'A' && r <= 'Z':
			upper = true
		case r >= '0' && r <= '9':
			digit = true
		default:
			symbol = true
		}
	}

	n := utf8.RuneCountInString(pw)
	points := 0
	for _, ok := range []bool{n >= 8, n >= 12, n >= 16, lower, upper, digit, symbol} {
		if ok {
			points++
		}
	}

	return points
}

// Score maps Points onto a label: 0-3 weak, 4-5 medium, 6-7 strong.
func Score(pw string) Strength {
	switch p := Points(pw); {
	case p >= 6:
		return StrengthStrong
	case p >= 4:
		return StrengthMedium
	default:
		return StrengthWeak
	}
}
