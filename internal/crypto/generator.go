package crypto

import (
	"crypto/rand"
	"errors"
	"math/big"

	"github.com/vaultpass/passcheck/internal/charset"
)

const (
	MinLength = 8
	MaxLength = 128
)

var (
	ErrLengthTooShort   = errors.New("password length must be at least 8")
	ErrLengthTooLong    = errors.New("password length must be at most 128")
	ErrNoCharacterTypes = errors.New("at least one character type must be selected")
)

// GeneratorOptions configures the password generator.
type GeneratorOptions struct {
	Length    int
	Uppercase bool
	Lowercase bool
	Numbers   bool
	Symbols   bool
}

// DefaultOptions returns sensible defaults: 16 characters with all types enabled.
func DefaultOptions() GeneratorOptions {
	return GeneratorOptions{
		Length:    16,
		Uppercase: true,
		Lowercase: true,
		Numbers:   true,
		Symbols:   true,
	}
}

// Alphabet returns the characters the options draw from, in
// lowercase, uppercase, digit, symbol order.
func (o GeneratorOptions) Alphabet() string {
	var pool string
	if o.Lowercase {
		pool += charset.Lowercase
	}
	if o.Uppercase {
		pool += charset.Uppercase
	}
	if o.Numbers {
		pool += charset.Digits
	}
	if o.Symbols {
		pool += charset.Punctuation
	}
	return pool
}

// Generate creates a cryptographically secure random password based on the given options.
// Every character is an independent uniform draw from the selected alphabet, so a
// selected type may be absent from a short result.
func Generate(opts GeneratorOptions) (string, error) {
	pool := opts.Alphabet()
	if pool == "" {
		return "", ErrNoCharacterTypes
	}
	if opts.Length < MinLength {
		return "", ErrLengthTooShort
	}
	if opts.Length > MaxLength {
		return "", ErrLengthTooLong
	}

	result := make([]byte, opts.Length)
	for i := range result {
		ch, err := randChar(pool)
		if err != nil {
			return "", err
		}
		result[i] = ch
	}

	return string(result), nil
}

// randChar picks a random character from an ASCII pool using crypto/rand.
func randChar(pool string) (byte, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(int64(len(pool))))
	if err != nil {
		return 0, err
	}
	return pool[n.Int64()], nil
}
