package strength

import (
	"strings"
	"unicode"

	"github.com/vaultpass/passcheck/internal/charset"
)

// Profile records which character classes occur in a password.
type Profile struct {
	Lower    bool
	Upper    bool
	Digit    bool
	Punct    bool
	NonASCII bool
}

// ProfileOf scans password once and reports the classes it contains.
func ProfileOf(password string) Profile {
	var p Profile
	for _, r := range password {
		switch {
		case unicode.IsLower(r):
			p.Lower = true
		case unicode.IsUpper(r):
			p.Upper = true
		case unicode.IsDigit(r):
			p.Digit = true
		case r < unicode.MaxASCII && strings.ContainsRune(charset.Punctuation, r):
			p.Punct = true
		}
		if r > unicode.MaxASCII {
			p.NonASCII = true
		}
	}
	return p
}

// alphabetSize is the effective symbol count implied by the profile.
func (p Profile) alphabetSize() int {
	size := 0
	if p.Lower {
		size += 26
	}
	if p.Upper {
		size += 26
	}
	if p.Digit {
		size += 10
	}
	if p.Punct {
		size += len(charset.Punctuation)
	}
	if p.NonASCII {
		size += 100
	}
	return size
}
