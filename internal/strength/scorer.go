// Package strength scores passwords with a fixed rule set and estimates
// their entropy and brute-force crack time.
package strength

import (
	"strings"
	"unicode/utf8"
)

const (
	minLength       = 8
	excellentLength = 12

	minScore = 0
	maxScore = 100
)

// commonPatterns are substrings that mark a password as predictable.
var commonPatterns = []string{"123", "abc", "password", "qwerty", "111", "000"}

// candidate is the per-call view of a password shared by all rules.
type candidate struct {
	password string
	length   int
	profile  Profile
}

// rule evaluates one independent check and returns its score delta
// together with the feedback line it produces.
type rule struct {
	name  string
	check func(c candidate) (int, Feedback)
}

// rules run in order; feedback lines appear in the same order.
var rules = []rule{
	{name: "length", check: checkLength},
	classRule("lowercase", func(p Profile) bool { return p.Lower }, 10,
		"Contains lowercase letters", "Missing lowercase letters"),
	classRule("uppercase", func(p Profile) bool { return p.Upper }, 10,
		"Contains uppercase letters", "Missing uppercase letters"),
	classRule("numbers", func(p Profile) bool { return p.Digit }, 10,
		"Contains numbers", "Missing numbers"),
	classRule("special", func(p Profile) bool { return p.Punct }, 15,
		"Contains special characters", "Missing special characters"),
	{name: "common_patterns", check: checkCommonPatterns},
	{name: "repetition", check: checkRepetition},
}

func checkLength(c candidate) (int, Feedback) {
	switch {
	case c.length >= excellentLength:
		return 25, Feedback{Kind: Pass, Message: "Excellent length (12+ characters)"}
	case c.length >= minLength:
		return 15, Feedback{Kind: Pass, Message: "Good length (8+ characters)"}
	default:
		return 0, Feedback{Kind: Fail, Message: "Too short (minimum 8 characters recommended)"}
	}
}

func classRule(name string, present func(Profile) bool, delta int, passMsg, failMsg string) rule {
	return rule{
		name: name,
		check: func(c candidate) (int, Feedback) {
			if present(c.profile) {
				return delta, Feedback{Kind: Pass, Message: passMsg}
			}
			return 0, Feedback{Kind: Fail, Message: failMsg}
		},
	}
}

func checkCommonPatterns(c candidate) (int, Feedback) {
	lower := strings.ToLower(c.password)
	for _, pattern := range commonPatterns {
		if strings.Contains(lower, pattern) {
			return -10, Feedback{
				Kind:    Warning,
				Message: "Contains common patterns (avoid sequences like '123', 'abc', 'password')",
			}
		}
	}
	return 10, Feedback{Kind: Pass, Message: "No common patterns detected"}
}

func checkRepetition(c candidate) (int, Feedback) {
	if hasRun(c.password, 3) {
		return -5, Feedback{Kind: Warning, Message: "Contains repeated characters"}
	}
	return 10, Feedback{Kind: Pass, Message: "No excessive character repetition"}
}

// hasRun reports whether some character occurs n or more times in a row.
func hasRun(s string, n int) bool {
	var prev rune
	run := 0
	for _, r := range s {
		if run > 0 && r == prev {
			run++
		} else {
			prev, run = r, 1
		}
		if run >= n {
			return true
		}
	}
	return false
}

// Analyze scores password against the rule set. It returns false only for
// the empty string, which has nothing to report.
func Analyze(password string) (Result, bool) {
	if password == "" {
		return Result{}, false
	}

	c := candidate{
		password: password,
		length:   utf8.RuneCountInString(password),
		profile:  ProfileOf(password),
	}

	score := 0
	feedback := make([]Feedback, 0, len(rules))
	for _, r := range rules {
		delta, fb := r.check(c)
		score += delta
		feedback = append(feedback, fb)
	}
	score = max(minScore, min(maxScore, score))

	entropy := entropyOf(password, c.profile)

	return Result{
		Score:    score,
		Strength: categorize(score),
		Feedback: feedback,
		Criteria: Criteria{
			Length:    c.length >= minLength,
			Lowercase: c.profile.Lower,
			Uppercase: c.profile.Upper,
			Numbers:   c.profile.Digit,
			Special:   c.profile.Punct,
		},
		Entropy:   entropy,
		CrackTime: CrackTime(entropy),
	}, true
}
