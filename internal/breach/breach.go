// Package breach checks passwords against a list of known breached
// passwords. Lists are built once and never modified, so a List is safe
// for concurrent use.
package breach

import (
	"bufio"
	_ "embed"
	"fmt"
	"io"
	"os"
	"strings"
)

//go:embed breached_passwords.txt
var builtinRaw string

var builtin = mustParse(builtinRaw)

// List is an immutable set of lowercased breached passwords.
type List struct {
	entries map[string]struct{}
}

// Default returns the built-in list.
func Default() *List {
	return builtin
}

// IsBreached reports whether password appears in the built-in list.
func IsBreached(password string) bool {
	return builtin.Contains(password)
}

// Contains reports whether password matches an entry, ignoring case.
func (l *List) Contains(password string) bool {
	if l == nil || password == "" {
		return false
	}
	_, ok := l.entries[strings.ToLower(password)]
	return ok
}

// Len returns the number of distinct entries.
func (l *List) Len() int {
	if l == nil {
		return 0
	}
	return len(l.entries)
}

// Parse reads one password per line. Blank lines and lines starting with
// '#' are skipped; surrounding whitespace is trimmed.
func Parse(r io.Reader) (*List, error) {
	l := &List{entries: make(map[string]struct{})}
	if err := l.read(r); err != nil {
		return nil, err
	}
	return l, nil
}

// LoadFile returns a new List holding the built-in entries plus those read
// from path.
func LoadFile(path string) (*List, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening breach list: %w", err)
	}
	defer f.Close()

	l := &List{entries: make(map[string]struct{}, builtin.Len())}
	for pw := range builtin.entries {
		l.entries[pw] = struct{}{}
	}
	if err := l.read(f); err != nil {
		return nil, fmt.Errorf("reading breach list %s: %w", path, err)
	}
	return l, nil
}

// read is only called while a List is being constructed.
func (l *List) read(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		l.entries[strings.ToLower(line)] = struct{}{}
	}
	return scanner.Err()
}

func mustParse(raw string) *List {
	l, err := Parse(strings.NewReader(raw))
	if err != nil {
		panic(fmt.Sprintf("breach: parsing built-in list: %v", err))
	}
	return l
}
