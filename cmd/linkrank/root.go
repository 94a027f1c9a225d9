// Package main provides the entry point for the LinkRank CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for LinkRank.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "linkrank",
		Short: "PageRank estimator for a closed corpus of HTML documents",
		Long: `LinkRank estimates the relative importance (PageRank) of pages in a
closed corpus of interlinked HTML documents.

Two independent estimators are run over the corpus link graph:
a stochastic random-surfer simulation and a deterministic fixed-point
iteration. Their results are reported side by side.`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")

	// Add subcommands
	cmd.AddCommand(NewRankCmd())
	cmd.AddCommand(NewInitCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
