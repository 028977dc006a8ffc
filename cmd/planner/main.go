// Package main is the entry point for the engraving planner CLI
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/engraving-planner/internal/errors"
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "planner",
		Short: "Lost Ark engraving planner",
		Long: `Reduces an engraving goal by books and ability stone, splits what is left into
accessory-sized values and lists the accessories to buy next to the ones already owned.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(newPlanCmd())
	rootCmd.AddCommand(newEngravingsCmd())

	return rootCmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(errors.GetCode(err).ExitCode())
	}
}
