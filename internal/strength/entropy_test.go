package strength

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEntropy(t *testing.T) {
	tests := []struct {
		name     string
		password string
		want     float64
	}{
		{name: "empty", password: "", want: 0},
		{name: "control characters only", password: "\x01\x02\x03", want: 0},
		{name: "lowercase", password: "abc", want: 3 * math.Log2(26)},
		{name: "mixed case", password: "aB", want: 2 * math.Log2(52)},
		{name: "digits", password: "2024", want: 4 * math.Log2(10)},
		{name: "punctuation", password: "!?", want: 2 * math.Log2(32)},
		{name: "all ascii classes", password: "P@ssw0rd123", want: 11 * math.Log2(94)},
		{name: "non-ascii adds a flat 100", password: "日本", want: 2 * math.Log2(100)},
		{name: "accented lowercase counts twice", password: "é", want: math.Log2(126)},
		{name: "repeated symbols use the same alphabet", password: "ééé", want: 3 * math.Log2(126)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Entropy(tt.password), 1e-9)
		})
	}
}

func TestEntropyOfExampleIsAboutSeventyTwoBits(t *testing.T) {
	assert.InDelta(t, 72.1, Entropy("P@ssw0rd123"), 0.1)
}

// bitsFor returns the entropy that yields the given average crack time.
func bitsFor(seconds float64) float64 {
	return math.Log2(seconds * 2 * guessesPerSecond)
}

func TestCrackTime(t *testing.T) {
	tests := []struct {
		name string
		bits float64
		want string
	}{
		{name: "zero entropy", bits: 0, want: "Less than a second"},
		{name: "negative entropy", bits: -4, want: "Less than a second"},
		{name: "NaN", bits: math.NaN(), want: "Less than a second"},
		{name: "sub-second", bits: bitsFor(0.5), want: "Less than a second"},
		{name: "seconds", bits: bitsFor(30.5), want: "30 seconds"},
		{name: "minutes", bits: bitsFor(2.5 * minute), want: "2 minutes"},
		{name: "hours", bits: bitsFor(5.5 * hour), want: "5 hours"},
		{name: "days", bits: bitsFor(3.5 * day), want: "3 days"},
		{name: "months", bits: bitsFor(2.5 * month), want: "2 months"},
		{name: "years", bits: bitsFor(500.5 * year), want: "500 years"},
		{name: "exactly a thousand years", bits: bitsFor(1000.5 * year), want: "1000 years"},
		{name: "thousands of years", bits: bitsFor(12_500.5 * year), want: "12k+ years"},
		{name: "exactly a million years", bits: bitsFor(1_000_000.5 * year), want: "1000k+ years"},
		{name: "millions of years", bits: bitsFor(2e6 * year), want: "Millions of years"},
		{name: "overflowing keyspace", bits: 5000, want: "Millions of years"},
		{name: "infinite entropy", bits: math.Inf(1), want: "Millions of years"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CrackTime(tt.bits))
		})
	}
}

func TestCrackTimeOfEmptyPassword(t *testing.T) {
	assert.Equal(t, "Less than a second", CrackTime(Entropy("")))
}
