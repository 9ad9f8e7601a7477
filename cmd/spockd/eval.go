package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/spock-lang/spock"
	"github.com/spock-lang/spock/internal/cli/ui"
	"github.com/spock-lang/spock/internal/errs"
	"github.com/spock-lang/spock/internal/token"
)

var evalCmd = &cobra.Command{
	Use:   "eval [file]",
	Short: "Evaluate a Spock program from a file or stdin",
	Long:  "Reads a framed Spock program from a file argument or, if none is given, from stdin, and prints its evaluation.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		source, err := readSource(args)
		if err != nil {
			return err
		}

		result, serr := spock.Analyze(source)
		if serr != nil {
			printStageError(os.Stderr, serr)
			os.Exit(serr.ExitCode())
		}

		fmt.Print(result)
		return nil
	},
}

// printStageError renders a SpockError to w, fuzzy-suggesting a
// correction against the known lexicon when the failure is an
// undefined-character lexical error.
func printStageError(w io.Writer, serr *errs.SpockError) {
	if serr.Category == errs.CategoryLexical && serr.Token != "" {
		fmt.Fprint(w, ui.UnknownOperatorError(serr.Token, token.KnownLexemes(), false))
		return
	}
	fmt.Fprint(w, ui.StageError(string(serr.Stage), serr.Message, false))
}

func readSource(args []string) (string, error) {
	if len(args) == 1 {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", fmt.Errorf("reading %s: %w", args[0], err)
		}
		return string(data), nil
	}

	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("reading stdin: %w", err)
	}
	return string(data), nil
}
