package cli

import (
	"errors"
	"fmt"

	"github.com/vaultpass/passcheck/internal/crypto"
	"github.com/vaultpass/passcheck/internal/model"
	"github.com/vaultpass/passcheck/internal/service"
)

type GenerateCommand struct {
	Length      int  `short:"l" long:"length" default:"16" description:"number of characters" value-name:"N"`
	NoUppercase bool `long:"no-uppercase" description:"exclude uppercase letters (A-Z)"`
	NoLowercase bool `long:"no-lowercase" description:"exclude lowercase letters (a-z)"`
	NoNumbers   bool `long:"no-numbers" description:"exclude numbers (0-9)"`
	NoSymbols   bool `long:"no-symbols" description:"exclude special characters"`
	Evaluate    bool `short:"e" long:"evaluate" description:"also analyze the generated password"`
	NoColor     bool `long:"no-color" description:"disable colored output"`
}

func (command *GenerateCommand) Execute(args []string) error {
	upper, lower := !command.NoUppercase, !command.NoLowercase
	numbers, symbols := !command.NoNumbers, !command.NoSymbols

	resp, err := service.NewGeneratorService(nil).Generate(model.GenerateRequest{
		Length:    command.Length,
		Uppercase: &upper,
		Lowercase: &lower,
		Numbers:   &numbers,
		Symbols:   &symbols,
		Evaluate:  command.Evaluate,
	})
	if errors.Is(err, crypto.ErrNoCharacterTypes) {
		return errors.New("please select at least one character type")
	}
	if err != nil {
		return err
	}

	fmt.Fprintln(stdout, resp.Password)
	if resp.Analysis != nil {
		fmt.Fprintln(stdout)
		printResult(stdout, painter{enabled: !command.NoColor}, *resp.Analysis)
	}
	return nil
}
