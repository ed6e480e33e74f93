package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/kbeaute/backend/internal/domain"
)

func TestNewMatchingService(t *testing.T) {
	t.Run("uses provided max results", func(t *testing.T) {
		svc := NewMatchingService(testCatalog(), MatchConfig{MaxResults: 5})
		if svc.MaxResults() != 5 {
			t.Errorf("MaxResults() = %d, want 5", svc.MaxResults())
		}
	})

	t.Run("uses default max results when zero", func(t *testing.T) {
		svc := NewMatchingService(testCatalog(), MatchConfig{})
		if svc.MaxResults() != DefaultMaxResults {
			t.Errorf("MaxResults() = %d, want %d (default)", svc.MaxResults(), DefaultMaxResults)
		}
	})

	t.Run("uses default max results when negative", func(t *testing.T) {
		svc := NewMatchingService(testCatalog(), MatchConfig{MaxResults: -1})
		if svc.MaxResults() != DefaultMaxResults {
			t.Errorf("MaxResults() = %d, want %d (default)", svc.MaxResults(), DefaultMaxResults)
		}
	})

	t.Run("accepts a nil catalog", func(t *testing.T) {
		svc := NewMatchingService(nil, MatchConfig{})
		ranked, err := svc.Rank(context.Background(), domain.Filters{Ingredients: []string{"retinol"}})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(ranked) != 0 {
			t.Errorf("len(ranked) = %d, want 0", len(ranked))
		}
	})
}

func TestRank(t *testing.T) {
	ctx := context.Background()

	t.Run("vitamin c serum ranks the ascorbic acid serum first", func(t *testing.T) {
		serum := domain.Product{ProductName: "Glow Serum", FullIngredients: "Water, Ascorbic Acid"}
		cream := domain.Product{ProductName: "Night Cream", FullIngredients: "Water, Retinol"}
		svc := NewMatchingService(testCatalog(serum, cream), MatchConfig{})

		filters := NewQueryPreprocessor(nil, false).ExtractFilters("vitamin c serum")
		ranked, err := svc.Rank(ctx, filters)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(ranked) != 2 {
			t.Fatalf("len(ranked) = %d, want 2", len(ranked))
		}
		if ranked[0].Product.ProductName != "Glow Serum" || ranked[0].Score != 4 {
			t.Errorf("ranked[0] = %s (%d), want Glow Serum (4)", ranked[0].Product.ProductName, ranked[0].Score)
		}
		if ranked[1].Product.ProductName != "Night Cream" || ranked[1].Score != 0 {
			t.Errorf("ranked[1] = %s (%d), want Night Cream (0)", ranked[1].Product.ProductName, ranked[1].Score)
		}
	})

	t.Run("returns results in descending score order", func(t *testing.T) {
		svc := NewMatchingService(testCatalog(), MatchConfig{MaxResults: 4})
		filters := domain.Filters{
			Ingredients: []string{"niacinamide"},
			SkinTypes:   []string{"oily"},
			Concerns:    []string{"dryness"},
		}

		ranked, err := svc.Rank(ctx, filters)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		for i := 1; i < len(ranked); i++ {
			if ranked[i].Score > ranked[i-1].Score {
				t.Errorf("ranked[%d].Score = %d > ranked[%d].Score = %d", i, ranked[i].Score, i-1, ranked[i-1].Score)
			}
		}
		if ranked[0].Product.ProductName != bhaToner.ProductName {
			t.Errorf("top product = %s, want %s", ranked[0].Product.ProductName, bhaToner.ProductName)
		}
	})

	t.Run("ties keep catalog order", func(t *testing.T) {
		a := domain.Product{ProductName: "A Toner"}
		b := domain.Product{ProductName: "B Cream"}
		c := domain.Product{ProductName: "C Toner"}
		svc := NewMatchingService(testCatalog(a, b, c), MatchConfig{})

		ranked, err := svc.Rank(ctx, domain.Filters{ProductTypes: []string{"toner"}})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		want := []string{"A Toner", "C Toner", "B Cream"}
		for i, name := range want {
			if ranked[i].Product.ProductName != name {
				t.Errorf("ranked[%d] = %s, want %s", i, ranked[i].Product.ProductName, name)
			}
		}
	})

	t.Run("truncates to max results", func(t *testing.T) {
		svc := NewMatchingService(testCatalog(), MatchConfig{MaxResults: 2})

		ranked, err := svc.Rank(ctx, domain.Filters{SkinTypes: []string{"normal"}})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(ranked) != 2 {
			t.Errorf("len(ranked) = %d, want 2", len(ranked))
		}
	})

	t.Run("empty filters return the front of the catalog with zero scores", func(t *testing.T) {
		svc := NewMatchingService(testCatalog(), MatchConfig{})

		ranked, err := svc.Rank(ctx, domain.Filters{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		want := []string{vitaminSerum.ProductName, retinolCream.ProductName, bhaToner.ProductName}
		if len(ranked) != len(want) {
			t.Fatalf("len(ranked) = %d, want %d", len(ranked), len(want))
		}
		for i, name := range want {
			if ranked[i].Product.ProductName != name {
				t.Errorf("ranked[%d] = %s, want %s", i, ranked[i].Product.ProductName, name)
			}
			if ranked[i].Score != 0 {
				t.Errorf("ranked[%d].Score = %d, want 0", i, ranked[i].Score)
			}
		}
	})

	t.Run("returns context error when canceled", func(t *testing.T) {
		svc := NewMatchingService(testCatalog(), MatchConfig{})
		canceled, cancel := context.WithCancel(ctx)
		cancel()

		_, err := svc.Rank(canceled, domain.Filters{})
		if !errors.Is(err, context.Canceled) {
			t.Errorf("error = %v, want context.Canceled", err)
		}
	})

	t.Run("does not reorder the catalog", func(t *testing.T) {
		catalog := testCatalog()
		svc := NewMatchingService(catalog, MatchConfig{})

		if _, err := svc.Rank(ctx, domain.Filters{Ingredients: []string{"snail mucin"}}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if catalog.Products()[0].ProductName != vitaminSerum.ProductName {
			t.Errorf("catalog order changed, first = %s", catalog.Products()[0].ProductName)
		}
	})
}

func TestScoreProduct(t *testing.T) {
	tests := []struct {
		name    string
		filters domain.Filters
		product domain.Product
		want    int
	}{
		{
			name:    "no filters score zero",
			filters: domain.Filters{},
			product: vitaminSerum,
			want:    0,
		},
		{
			name:    "ingredient synonym in full ingredients",
			filters: domain.Filters{Ingredients: []string{"vitamin c"}},
			product: vitaminSerum,
			want:    3,
		},
		{
			name:    "ingredient from active ingredients only",
			filters: domain.Filters{Ingredients: []string{"niacinamide"}},
			product: domain.Product{ActiveIngredients: []string{"Niacinamide"}},
			want:    3,
		},
		{
			name:    "values resolving to one concept count once",
			filters: domain.Filters{Ingredients: []string{"vitamin c", "ascorbic acid"}},
			product: vitaminSerum,
			want:    3,
		},
		{
			name:    "unknown ingredient matches literally",
			filters: domain.Filters{Ingredients: []string{"mulberry"}},
			product: domain.Product{FullIngredients: "Morus Alba (Mulberry) Root Extract"},
			want:    3,
		},
		{
			name:    "skin type",
			filters: domain.Filters{SkinTypes: []string{"oily skin"}},
			product: bhaToner,
			want:    2,
		},
		{
			name:    "concern",
			filters: domain.Filters{Concerns: []string{"acne"}},
			product: bhaToner,
			want:    2,
		},
		{
			name:    "product type from name or summary",
			filters: domain.Filters{ProductTypes: []string{"toner"}},
			product: bhaToner,
			want:    1,
		},
		{
			name:    "matching is case insensitive",
			filters: domain.Filters{Ingredients: []string{"NIACINAMIDE"}, SkinTypes: []string{"Combination"}},
			product: bhaToner,
			want:    5,
		},
		{
			name: "all groups add up",
			filters: domain.Filters{
				Ingredients:  []string{"salicylic acid", "niacinamide"},
				SkinTypes:    []string{"oily"},
				Concerns:     []string{"pores"},
				ProductTypes: []string{"toner"},
			},
			product: bhaToner,
			want:    3 + 3 + 2 + 2 + 1,
		},
		{
			name:    "non-matching product scores zero",
			filters: domain.Filters{Ingredients: []string{"retinol"}, ProductTypes: []string{"cream"}},
			product: snailEssence,
			want:    0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ScoreProduct(tt.filters, tt.product)
			if got != tt.want {
				t.Errorf("ScoreProduct() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestScoreProduct_Monotonic(t *testing.T) {
	products := []domain.Product{vitaminSerum, retinolCream, bhaToner, snailEssence}
	base := domain.Filters{SkinTypes: []string{"dry"}, Concerns: []string{"aging"}}

	for _, extra := range []string{"retinol", "niacinamide", "ascorbic acid", "snail mucin", "unknown thing"} {
		extended := base
		extended.Ingredients = append([]string{}, extra)

		for _, p := range products {
			before := ScoreProduct(base, p)
			after := ScoreProduct(extended, p)
			if after < before {
				t.Errorf("adding %q lowered score of %s from %d to %d", extra, p.ProductName, before, after)
			}
		}
	}
}
