package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kbeaute/backend/internal/infrastructure/catalog"
)

func newCheckCmd() *cobra.Command {
	var catalogPath string

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Load a catalog file and report what it contains",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			products, err := catalog.Load(catalogPath)
			if err != nil {
				return fmt.Errorf("catalog check failed: %w", err)
			}

			out := cmd.OutOrStdout()
			brands := make(map[string]bool)
			var noActives, noSkinTypes, noConcerns int
			for _, p := range products.Products() {
				brands[p.Brand] = true
				if len(p.ActiveIngredients) == 0 {
					noActives++
				}
				if len(p.SkinTypes) == 0 {
					noSkinTypes++
				}
				if len(p.Concerns) == 0 {
					noConcerns++
				}
			}

			fmt.Fprintf(out, "  ✓  %d products from %d brands in %s\n", products.Len(), len(brands), catalogPath)
			printGap(cmd, noActives, "without active ingredients")
			printGap(cmd, noSkinTypes, "without skin types")
			printGap(cmd, noConcerns, "without concerns")
			return nil
		},
	}

	cmd.Flags().StringVar(&catalogPath, "catalog", defaultCatalogPath, "Path to the JSON Lines product catalog")
	return cmd
}

// printGap reports products that can never score in one attribute group
func printGap(cmd *cobra.Command, count int, what string) {
	if count == 0 {
		return
	}
	fmt.Fprintf(cmd.OutOrStdout(), "  ⚠  %d products %s\n", count, what)
}
