// Package report renders a password analysis as a plain-text report.
// The report is built from the analysis result only and never includes
// the password itself.
package report

import (
	_ "embed"
	"fmt"
	"io"
	"strings"
	"text/template"
	"time"

	"github.com/gookit/color"

	"github.com/vaultpass/passcheck/internal/strength"
)

//go:embed template.txt
var templateContent string

// Data is everything the report shows.
type Data struct {
	Result      strength.Result
	Breached    bool
	GeneratedAt time.Time
}

// Options controls rendering.
type Options struct {
	// Color enables ANSI colors for terminal output.
	Color bool
}

var markers = map[strength.FeedbackKind]string{
	strength.Pass:    "✓",
	strength.Fail:    "✗",
	strength.Warning: "⚠",
}

// Write renders the report for data to w.
func Write(w io.Writer, data Data, opts Options) error {
	t, err := template.
		New("report").
		Funcs(funcMap(opts.Color)).
		Parse(templateContent)
	if err != nil {
		return err
	}

	return t.Execute(w, data)
}

// Filename returns the download name of a report generated at t.
func Filename(t time.Time) string {
	return fmt.Sprintf("password_strength_report_%s.txt", t.Format("20060102_150405"))
}

func funcMap(enableColor bool) template.FuncMap {
	danger, success, warn := fmt.Sprint, fmt.Sprint, fmt.Sprint
	if enableColor {
		danger, success, warn = color.Danger.Render, color.Success.Render, color.Warn.Render
	}

	paint := func(kind strength.FeedbackKind, s string) string {
		switch kind {
		case strength.Pass:
			return success(s)
		case strength.Fail:
			return danger(s)
		default:
			return warn(s)
		}
	}

	return template.FuncMap{
		"danger":  danger,
		"success": success,
		"rule": func() string {
			return strings.Repeat("=", 50)
		},
		"mark": func(ok bool) string {
			if ok {
				return paint(strength.Pass, markers[strength.Pass])
			}
			return paint(strength.Fail, markers[strength.Fail])
		},
		"feedback": func(f strength.Feedback) string {
			return paint(f.Kind, markers[f.Kind]+" "+f.Message)
		},
		"rating": func(c strength.Category) string {
			switch c {
			case strength.Strong:
				return success(c.String())
			case strength.Medium:
				return warn(c.String())
			default:
				return danger(c.String())
			}
		},
	}
}
