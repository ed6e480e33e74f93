package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/kbeaute/backend/internal/infrastructure/catalog"
	"github.com/kbeaute/backend/internal/usecase"
)

func newRecommendCmd() *cobra.Command {
	var (
		catalogPath string
		top         int
	)

	cmd := &cobra.Command{
		Use:   "recommend <query>",
		Short: "Rank a catalog against a query with the keyword matcher",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if top < 1 {
				return fmt.Errorf("--top must be at least 1, got %d", top)
			}

			products, err := catalog.Load(catalogPath)
			if err != nil {
				return err
			}

			query := strings.Join(args, " ")
			filters := usecase.NewQueryPreprocessor(nil, false).ExtractFilters(query)
			matcher := usecase.NewMatchingService(products, usecase.MatchConfig{MaxResults: top})

			ranked, err := matcher.Rank(cmd.Context(), filters)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if filters.IsEmpty() {
				fmt.Fprintln(out, "  ⚠  no known keywords in query, showing the front of the catalog")
			}

			tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "RANK\tSCORE\tBRAND\tPRODUCT")
			for i, sp := range ranked {
				fmt.Fprintf(tw, "%d\t%d\t%s\t%s\n", i+1, sp.Score, sp.Product.Brand, sp.Product.ProductName)
			}
			return tw.Flush()
		},
	}

	cmd.Flags().StringVar(&catalogPath, "catalog", defaultCatalogPath, "Path to the JSON Lines product catalog")
	cmd.Flags().IntVar(&top, "top", usecase.DefaultMaxResults, "Number of products to show")
	return cmd
}
