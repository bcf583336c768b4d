package strength

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyzeEmptyPassword(t *testing.T) {
	result, ok := Analyze("")
	assert.False(t, ok)
	assert.Equal(t, Result{}, result)
}

func TestAnalyze(t *testing.T) {
	tests := []struct {
		name     string
		password string
		score    int
		strength Category
		criteria Criteria
	}{
		{
			name:     "common pattern penalty",
			password: "P@ssw0rd123",
			score:    60,
			strength: Medium,
			criteria: Criteria{Length: true, Lowercase: true, Uppercase: true, Numbers: true, Special: true},
		},
		{
			name:     "repetition penalty",
			password: "aaaa1111",
			score:    20,
			strength: Weak,
			criteria: Criteria{Length: true, Lowercase: true, Numbers: true},
		},
		{
			name:     "all checks pass",
			password: "Xk9#mQ2!vLp7",
			score:    90,
			strength: Strong,
			criteria: Criteria{Length: true, Lowercase: true, Uppercase: true, Numbers: true, Special: true},
		},
		{
			name:     "negative sum clamps to zero",
			password: "111",
			score:    0,
			strength: Weak,
			criteria: Criteria{Numbers: true},
		},
		{
			name:     "medium without symbols",
			password: "Tr0ub4dor",
			score:    65,
			strength: Medium,
			criteria: Criteria{Length: true, Lowercase: true, Uppercase: true, Numbers: true},
		},
		{
			name:     "strong at nine characters",
			password: "Zyxwvut1!",
			score:    80,
			strength: Strong,
			criteria: Criteria{Length: true, Lowercase: true, Uppercase: true, Numbers: true, Special: true},
		},
		{
			name:     "short lowercase word",
			password: "hello",
			score:    30,
			strength: Weak,
			criteria: Criteria{Lowercase: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, ok := Analyze(tt.password)
			require.True(t, ok)

			assert.Equal(t, tt.score, result.Score)
			assert.Equal(t, tt.strength, result.Strength)
			assert.Equal(t, tt.criteria, result.Criteria)
			assert.Len(t, result.Feedback, len(rules))
			assert.InDelta(t, Entropy(tt.password), result.Entropy, 1e-9)
			assert.Equal(t, CrackTime(result.Entropy), result.CrackTime)
		})
	}
}

func TestAnalyzeFeedback(t *testing.T) {
	result, ok := Analyze("aaaa1111")
	require.True(t, ok)

	want := []Feedback{
		{Kind: Pass, Message: "Good length (8+ characters)"},
		{Kind: Pass, Message: "Contains lowercase letters"},
		{Kind: Fail, Message: "Missing uppercase letters"},
		{Kind: Pass, Message: "Contains numbers"},
		{Kind: Fail, Message: "Missing special characters"},
		{Kind: Warning, Message: "Contains common patterns (avoid sequences like '123', 'abc', 'password')"},
		{Kind: Warning, Message: "Contains repeated characters"},
	}
	assert.Equal(t, want, result.Feedback)
}

func TestAnalyzeCommonPatternsIgnoreCase(t *testing.T) {
	for _, pw := range []string{"xxQWERTYxx", "myPassWordzz", "zzABCzz"} {
		result, ok := Analyze(pw)
		require.True(t, ok)
		assert.Equal(t, Warning, result.Feedback[5].Kind, pw)
	}
}

func TestAnalyzeScoreAlwaysInRange(t *testing.T) {
	passwords := []string{
		"a", "1", "!", "000", "aaa", "abc123", "password", "qwerty111",
		"\x01", "日本語のパスワード", "Correct-Horse-Battery-Staple-42",
		"zzzzzzzzzzzzzzzzzzzzzzzz", "Xk9#mQ2!vL", "🔒🔒🔒",
	}
	for _, pw := range passwords {
		result, ok := Analyze(pw)
		require.True(t, ok, pw)
		assert.GreaterOrEqual(t, result.Score, 0, pw)
		assert.LessOrEqual(t, result.Score, 100, pw)
		assert.Equal(t, categorize(result.Score), result.Strength, pw)
	}
}

func TestAnalyzeAddingMissingClassNeverLowersScore(t *testing.T) {
	bases := []string{"hello", "HELLO", "2468", "!!??", "hellothere", "Hello", "hello99", "HELLO#"}
	additions := []struct {
		char    string
		present func(Profile) bool
	}{
		{char: "z", present: func(p Profile) bool { return p.Lower }},
		{char: "Q", present: func(p Profile) bool { return p.Upper }},
		{char: "7", present: func(p Profile) bool { return p.Digit }},
		{char: "#", present: func(p Profile) bool { return p.Punct }},
	}

	for _, base := range bases {
		before, ok := Analyze(base)
		require.True(t, ok)
		for _, add := range additions {
			if add.present(ProfileOf(base)) {
				continue
			}
			after, ok := Analyze(base + add.char)
			require.True(t, ok)
			assert.GreaterOrEqual(t, after.Score, before.Score, "%q + %q", base, add.char)
		}
	}
}

func TestAnalyzeIsDeterministic(t *testing.T) {
	first, ok := Analyze("Tr0ub4dor&3")
	require.True(t, ok)
	second, ok := Analyze("Tr0ub4dor&3")
	require.True(t, ok)
	assert.Equal(t, first, second)
}

func TestAnalyzeCountsRunesNotBytes(t *testing.T) {
	// Eight characters, sixteen bytes.
	result, ok := Analyze("ééééçççç")
	require.True(t, ok)
	assert.True(t, result.Criteria.Length)
	assert.InDelta(t, 8*math.Log2(126), result.Entropy, 1e-9)
}

func TestResultJSON(t *testing.T) {
	result, ok := Analyze("Xk9#mQ2!vLp7")
	require.True(t, ok)

	data, err := json.Marshal(result)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "Strong", decoded["strength"])
	assert.Equal(t, float64(90), decoded["score"])

	feedback := decoded["feedback"].([]any)
	assert.Equal(t, "pass", feedback[0].(map[string]any)["kind"])

	var roundTrip Result
	require.NoError(t, json.Unmarshal(data, &roundTrip))
	assert.Equal(t, result, roundTrip)
}

func TestHasRun(t *testing.T) {
	tests := []struct {
		s    string
		want bool
	}{
		{"", false},
		{"aa", false},
		{"aab", false},
		{"abab", false},
		{"aaab", true},
		{"baaa", true},
		{"ab111c", true},
		{"ééé", true},
		{"aAa", false},
	}
	for _, tt := range tests {
		if got := hasRun(tt.s, 3); got != tt.want {
			t.Errorf("hasRun(%q) = %v, want %v", tt.s, got, tt.want)
		}
	}
}

func TestProfileOf(t *testing.T) {
	tests := []struct {
		password string
		want     Profile
	}{
		{"", Profile{}},
		{"abc", Profile{Lower: true}},
		{"ABC", Profile{Upper: true}},
		{"123", Profile{Digit: true}},
		{"~`\\", Profile{Punct: true}},
		{"aB3$", Profile{Lower: true, Upper: true, Digit: true, Punct: true}},
		{"é", Profile{Lower: true, NonASCII: true}},
		{"€", Profile{NonASCII: true}},
		{" \t", Profile{}},
	}
	for _, tt := range tests {
		if got := ProfileOf(tt.password); got != tt.want {
			t.Errorf("ProfileOf(%q) = %+v, want %+v", tt.password, got, tt.want)
		}
	}
}
