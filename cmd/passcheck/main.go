package main

import (
	"errors"
	"os"

	"github.com/jessevdk/go-flags"

	"github.com/vaultpass/passcheck/internal/cli"
)

func main() {
	parser := flags.NewParser(&cli.Passcheck, flags.Default)
	parser.LongDescription = "Estimates password strength, checks common breach lists and generates random passwords."

	if _, err := parser.Parse(); err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}
}
