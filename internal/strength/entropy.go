package strength

import (
	"fmt"
	"math"
	"unicode/utf8"
)

const (
	guessesPerSecond = 1e9

	minute = 60.0
	hour   = 60 * minute
	day    = 24 * hour
	month  = 30 * day
	year   = 365 * day
)

const lessThanSecond = "Less than a second"

// Entropy estimates the bits of a password as its length times log2 of
// the alphabet implied by the character classes it uses. Repetition and
// dictionary words are not accounted for.
func Entropy(password string) float64 {
	return entropyOf(password, ProfileOf(password))
}

func entropyOf(password string, p Profile) float64 {
	size := p.alphabetSize()
	if size == 0 {
		return 0
	}
	return float64(utf8.RuneCountInString(password)) * math.Log2(float64(size))
}

// CrackTime converts entropy bits into a brute-force duration, assuming
// 1e9 guesses per second and that half the keyspace is searched on average.
func CrackTime(bits float64) string {
	if math.IsNaN(bits) || bits <= 0 {
		return lessThanSecond
	}

	seconds := math.Exp2(bits) / (2 * guessesPerSecond)

	switch {
	case seconds < 1:
		return lessThanSecond
	case seconds < minute:
		return fmt.Sprintf("%d seconds", int64(seconds))
	case seconds < hour:
		return fmt.Sprintf("%d minutes", int64(seconds/minute))
	case seconds < day:
		return fmt.Sprintf("%d hours", int64(seconds/hour))
	case seconds < month:
		return fmt.Sprintf("%d days", int64(seconds/day))
	case seconds < year:
		return fmt.Sprintf("%d months", int64(seconds/month))
	}

	// Compare as floats: seconds may be +Inf or exceed int64.
	years := math.Floor(seconds / year)
	switch {
	case years > 1_000_000:
		return "Millions of years"
	case years > 1000:
		return fmt.Sprintf("%dk+ years", int64(years/1000))
	default:
		return fmt.Sprintf("%d years", int64(years))
	}
}
