package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"text/tabwriter"
	"time"

	"github.com/vaultpass/passcheck/internal/model"
	"github.com/vaultpass/passcheck/internal/report"
	"github.com/vaultpass/passcheck/internal/service"
	"github.com/vaultpass/passcheck/internal/strength"
)

type AnalyzeCommand struct {
	NoColor bool `long:"no-color" description:"disable colored output"`
}

func (command *AnalyzeCommand) Execute(args []string) error {
	password, err := newSecretReader(stdin).read("Password: ")
	if err != nil && !errors.Is(err, io.EOF) {
		return err
	}

	resp, err := service.NewAnalyzerService(nil, nil).Analyze(model.AnalyzeRequest{Password: password})
	if errors.Is(err, service.ErrEmptyPassword) {
		fmt.Fprintln(stderr, "Enter a password to check its strength")
		return nil
	}
	if err != nil {
		return err
	}

	p := painter{enabled: !command.NoColor}
	printResult(stdout, p, resp.Result)
	if resp.Breached {
		fmt.Fprintln(stdout, p.kind(strength.Fail, "WARNING: This password appears in common breach databases! Do not use this password."))
	}
	fmt.Fprintln(stdout)
	printFeedback(stdout, p, resp.Feedback)

	return nil
}

type CompareCommand struct {
	NoColor bool `long:"no-color" description:"disable colored output"`
}

func (command *CompareCommand) Execute(args []string) error {
	reader := newSecretReader(stdin)
	_, interactive := reader.interactive()

	var passwords []string
	for len(passwords) < service.MaxCompare {
		pw, err := reader.read(fmt.Sprintf("Password %d (empty to finish): ", len(passwords)+1))
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return err
		}
		if pw == "" && interactive {
			break
		}
		passwords = append(passwords, pw)
	}

	resp, err := service.NewAnalyzerService(nil, nil).Compare(model.CompareRequest{Passwords: passwords})
	if err != nil {
		return err
	}

	p := painter{enabled: !command.NoColor}
	tw := tabwriter.NewWriter(stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "PASSWORD\tSTRENGTH\tSCORE\tENTROPY\tCRACK TIME")
	for _, e := range resp.Results {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%.1f\t%s\n", e.Label, e.Strength, e.Score, e.Entropy, e.CrackTime)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, p.kind(strength.Pass, resp.Results[resp.Strongest].Label+" is the strongest!"))
	return nil
}

type ReportCommand struct {
	Output  string `short:"o" long:"output" description:"write the report to this file instead of standard output" value-name:"PATH"`
	NoColor bool   `long:"no-color" description:"disable colored output"`
}

func (command *ReportCommand) Execute(args []string) error {
	password, err := newSecretReader(stdin).read("Password: ")
	if err != nil && !errors.Is(err, io.EOF) {
		return err
	}

	svc := service.NewAnalyzerService(nil, nil)
	now := time.Now()

	if command.Output == "" {
		err := svc.Report(stdout, model.AnalyzeRequest{Password: password}, now, report.Options{Color: !command.NoColor})
		if errors.Is(err, service.ErrEmptyPassword) {
			fmt.Fprintln(stderr, "Enter a password to generate a report")
			return nil
		}
		return err
	}

	if password == "" {
		fmt.Fprintln(stderr, "Enter a password to generate a report")
		return nil
	}

	f, err := os.OpenFile(command.Output, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating report file: %w", err)
	}
	if err := svc.Report(f, model.AnalyzeRequest{Password: password}, now, report.Options{}); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}

	fmt.Fprintf(stderr, "Report written to %s\n", command.Output)
	return nil
}
