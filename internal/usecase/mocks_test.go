package usecase

import (
	"context"

	"github.com/kbeaute/backend/internal/domain"
)

// MockLanguageModel is a mock implementation of domain.LanguageModel
type MockLanguageModel struct {
	reply    string
	err      error
	requests []domain.CompletionRequest
}

func (m *MockLanguageModel) Complete(ctx context.Context, req domain.CompletionRequest) (string, error) {
	m.requests = append(m.requests, req)
	if m.err != nil {
		return "", m.err
	}
	return m.reply, nil
}

// MockFilterExtractor is a mock implementation of domain.FilterExtractor
type MockFilterExtractor struct {
	filters domain.Filters
	err     error
	called  bool
}

func (m *MockFilterExtractor) Extract(ctx context.Context, text string) (domain.Filters, error) {
	m.called = true
	if m.err != nil {
		return domain.Filters{}, m.err
	}
	return m.filters, nil
}

// Test catalog fixtures
var (
	vitaminSerum = domain.Product{
		Brand:             "Klairs",
		ProductName:       "Freshly Juiced Vitamin Drop Serum",
		Summary:           "A gentle brightening serum with 5% ascorbic acid. Suitable for daily use.",
		FullIngredients:   "Water, Ascorbic Acid, Propanediol, Centella Asiatica Extract",
		ActiveIngredients: []string{"Ascorbic Acid"},
		SkinTypes:         []string{"Normal", "Dry"},
		Concerns:          []string{"Dullness"},
		RecommendedUse:    "Morning and evening after toner.",
	}

	retinolCream = domain.Product{
		Brand:             "Some By Mi",
		ProductName:       "Retinol Intense Cream",
		Summary:           "A night cream that smooths fine lines.",
		FullIngredients:   "Water, Glycerin, Retinol, Bakuchiol",
		ActiveIngredients: []string{"Retinol"},
		SkinTypes:         []string{"Normal", "Mature"},
		Concerns:          []string{"Aging"},
		RecommendedUse:    "Evening only.",
	}

	bhaToner = domain.Product{
		Brand:             "COSRX",
		ProductName:       "BHA Blackhead Power Liquid",
		Summary:           "An exfoliating toner for clogged pores.",
		FullIngredients:   "Salix Alba (Willow) Bark Water, Betaine Salicylate, Niacinamide",
		ActiveIngredients: []string{"Betaine Salicylate", "Niacinamide"},
		SkinTypes:         []string{"Oily", "Combination", "Acne-prone"},
		Concerns:          []string{"Pores", "Acne"},
		RecommendedUse:    "Evening, after cleansing.",
	}

	snailEssence = domain.Product{
		Brand:             "COSRX",
		ProductName:       "Advanced Snail 96 Mucin Power Essence",
		Summary:           "A lightweight essence for hydration and repair.",
		FullIngredients:   "Snail Secretion Filtrate, Betaine, Sodium Hyaluronate",
		ActiveIngredients: []string{"Snail Secretion Filtrate"},
		SkinTypes:         []string{"Dry", "Sensitive"},
		Concerns:          []string{"Dryness", "Redness"},
		RecommendedUse:    "Morning and evening.",
	}
)

func testCatalog(products ...domain.Product) *domain.Catalog {
	if len(products) == 0 {
		products = []domain.Product{vitaminSerum, retinolCream, bhaToner, snailEssence}
	}
	return domain.NewCatalog(products)
}
