package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/spock-lang/spock"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive Spock session",
	Long: `Prompts for one statement body at a time, framing and numbering each
line automatically. An empty line ends the program, evaluates it, and
starts a fresh one. Ctrl+C exits.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		runREPL()
		return nil
	},
}

func runREPL() {
	success := color.New(color.FgGreen)

	for {
		var lines []string
		lineNum := 1
		for {
			var body string
			prompt := &survey.Input{Message: fmt.Sprintf("%d.", lineNum)}
			if err := survey.AskOne(prompt, &body); err != nil {
				return
			}
			if strings.TrimSpace(body) == "" {
				break
			}
			lines = append(lines, fmt.Sprintf("%d.  %s", lineNum, body))
			lineNum++
		}
		if len(lines) == 0 {
			continue
		}

		source := strings.Join(lines, "\n") + "$$"
		result, err := spock.Analyze(source)
		if err != nil {
			printStageError(os.Stdout, err)
			continue
		}
		success.Print(result)
	}
}
