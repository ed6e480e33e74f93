package catalog

import (
	"strings"

	"github.com/kbeaute/backend/internal/domain"
)

// productRecord is one line of the catalog file as stored on disk
type productRecord struct {
	Brand             string   `json:"brand"`
	ProductName       string   `json:"product_name"`
	Summary           string   `json:"summary"`
	FullIngredients   string   `json:"full_ingredients"`
	ActiveIngredients []string `json:"active_ingredients"`
	KeyIngredients    []string `json:"key_ingredients"`
	SkinTypes         []string `json:"skin_types"`
	Concerns          []string `json:"concerns"`
	RecommendedUse    string   `json:"recommended_use"`
}

// MapToProduct converts a catalog record to a domain Product.
// Older exports name the active list key_ingredients; it is used when
// active_ingredients is absent.
func MapToProduct(r *productRecord) domain.Product {
	active := r.ActiveIngredients
	if len(active) == 0 {
		active = r.KeyIngredients
	}

	return domain.Product{
		Brand:             strings.TrimSpace(r.Brand),
		ProductName:       strings.TrimSpace(r.ProductName),
		Summary:           strings.TrimSpace(r.Summary),
		FullIngredients:   strings.TrimSpace(r.FullIngredients),
		ActiveIngredients: cleanList(active),
		SkinTypes:         cleanList(r.SkinTypes),
		Concerns:          cleanList(r.Concerns),
		RecommendedUse:    strings.TrimSpace(r.RecommendedUse),
	}
}

// cleanList trims entries and drops empty ones
func cleanList(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
