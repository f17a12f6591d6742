package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "guides",
		Short: "Inspect the application guide catalog",
		Long: `guides runs the catalog filter locally against the builtin corpus.
Deployment and plan flags stand in for the values the REST service reads
from its environment and the caller's subscription.`,
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newListCmd())
	rootCmd.AddCommand(newStructuredCmd())
	rootCmd.AddCommand(newApiCmd())
	return rootCmd
}
