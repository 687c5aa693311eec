package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "pddls",
		Short: "A language server and toolbox for PDDL files",
	}

	rootCmd.AddCommand(newLSPCmd())
	rootCmd.AddCommand(newParseCmd())
	rootCmd.AddCommand(newCompleteCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
