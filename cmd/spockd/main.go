package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Version information - set at build time via -ldflags.
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "spockd",
		Short: "Spock symbolic-logic analyzer and collaborator server",
		Long: `spockd evaluates Spock programs: framed, dot-terminated lines of
three-valued boolean logic, set membership, and forward substitution.
It runs standalone against a file or stdin, interactively as a REPL,
or as an HTTP/WebSocket collaborator server for remote clients.`,
	}

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(evalCmd)
	rootCmd.AddCommand(replCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(lspCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
