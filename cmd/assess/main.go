// Command assess scores a business profile offline and manages the schema.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "assess",
	Short:         "CloudAdopt readiness tooling",
	SilenceUsage:  true,
	SilenceErrors: false,
}

func main() {
	rootCmd.AddCommand(newScoreCmd(), newMigrateCmd())
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
