package main

import (
	"os"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/spock-lang/spock/internal/cli/ui"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		table := ui.NewKeyValueTable(os.Stdout, false)
		table.AddRow("spockd version", Version)
		table.AddRow("Git commit", GitCommit)
		table.AddRow("Build date", BuildDate)
		table.AddRow("Go version", runtime.Version())
		table.Render()
	},
}
