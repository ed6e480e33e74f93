package main

import (
	"fmt"
	"strings"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/kbeaute/backend/internal/usecase"
)

func newFiltersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "filters <query>",
		Short: "Print the filters the keyword extractor finds in a query",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := strings.Join(args, " ")
			filters := usecase.NewQueryPreprocessor(nil, false).ExtractFilters(query)

			data, err := json.MarshalIndent(filters, "", "  ")
			if err != nil {
				return fmt.Errorf("encode filters: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return nil
		},
	}
}
