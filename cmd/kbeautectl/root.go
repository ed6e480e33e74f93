package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const defaultCatalogPath = "products.jsonl"

// newRootCmd builds the command tree; each call returns fresh flag state
func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "kbeautectl",
		Short:        "KBeauté catalog and matching tools",
		SilenceUsage: true, // don't print usage on operational errors
		Long: `kbeautectl validates product catalogs and runs the keyword matcher
offline, without the HTTP server or the language model.`,
	}

	rootCmd.AddCommand(
		newCheckCmd(),
		newFiltersCmd(),
		newRecommendCmd(),
		newVersionCmd(),
	)

	return rootCmd
}

// Execute is called by main.go.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
