// Package cli implements the passcheck terminal commands. Passwords are
// read from standard input, with a hidden prompt on a terminal, and never
// taken from the command line.
package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/gookit/color"
	"golang.org/x/term"

	"github.com/vaultpass/passcheck/internal/strength"
)

type PasscheckCommand struct {
	Analyze  AnalyzeCommand  `command:"analyze" description:"Analyze the strength of a password read from standard input"`
	Generate GenerateCommand `command:"generate" description:"Generate a cryptographically random password"`
	Compare  CompareCommand  `command:"compare" description:"Compare up to five passwords read from standard input, one per line"`
	Report   ReportCommand   `command:"report" description:"Write a plain-text strength report for a password read from standard input"`
}

var Passcheck PasscheckCommand

var (
	stdin  io.Reader = os.Stdin
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

// secretReader reads passwords without echo on a terminal and line by
// line otherwise.
type secretReader struct {
	in    io.Reader
	lines *bufio.Reader
}

func newSecretReader(in io.Reader) *secretReader {
	return &secretReader{in: in, lines: bufio.NewReader(in)}
}

func (s *secretReader) interactive() (int, bool) {
	f, ok := s.in.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return 0, false
	}
	return int(f.Fd()), true
}

// read returns the next password; io.EOF means the input is exhausted.
func (s *secretReader) read(prompt string) (string, error) {
	if fd, ok := s.interactive(); ok {
		fmt.Fprint(stderr, prompt)
		b, err := term.ReadPassword(fd)
		fmt.Fprintln(stderr)
		if err != nil {
			return "", fmt.Errorf("reading password: %w", err)
		}
		return string(b), nil
	}

	line, err := s.lines.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("reading password: %w", err)
		}
		if line == "" {
			return "", io.EOF
		}
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// painter colors output unless disabled.
type painter struct {
	enabled bool
}

func (p painter) kind(k strength.FeedbackKind, s string) string {
	if !p.enabled {
		return s
	}
	switch k {
	case strength.Pass:
		return color.Success.Render(s)
	case strength.Fail:
		return color.Danger.Render(s)
	default:
		return color.Warn.Render(s)
	}
}

func (p painter) category(c strength.Category) string {
	switch c {
	case strength.Strong:
		return p.kind(strength.Pass, c.String())
	case strength.Medium:
		return p.kind(strength.Warning, c.String())
	default:
		return p.kind(strength.Fail, c.String())
	}
}

var markers = map[strength.FeedbackKind]string{
	strength.Pass:    "✓",
	strength.Fail:    "✗",
	strength.Warning: "⚠",
}

func printResult(w io.Writer, p painter, result strength.Result) {
	fmt.Fprintf(w, "Strength: %s (%d/100)\n", p.category(result.Strength), result.Score)
	fmt.Fprintf(w, "Entropy: %.1f bits\n", result.Entropy)
	fmt.Fprintf(w, "Estimated crack time: %s\n", result.CrackTime)
}

func printFeedback(w io.Writer, p painter, feedback []strength.Feedback) {
	for _, f := range feedback {
		fmt.Fprintln(w, p.kind(f.Kind, markers[f.Kind]+" "+f.Message))
	}
}
