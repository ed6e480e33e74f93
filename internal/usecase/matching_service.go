package usecase

import (
	"context"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/kbeaute/backend/internal/domain"
)

// Attribute group weights for scoring
const (
	weightIngredient  = 3
	weightSkinType    = 2
	weightConcern     = 2
	weightProductType = 1
)

// DefaultMaxResults is the number of products returned per query
const DefaultMaxResults = 3

// MatchConfig holds configuration for the matching service
type MatchConfig struct {
	MaxResults         int
	EnableDebugLogging bool
	Logger             *zap.Logger
}

// indexedProduct holds the lower-cased attribute text of one catalog product
type indexedProduct struct {
	product     domain.Product
	ingredients string
	skinTypes   []string
	concerns    []string
	typeText    string
}

// resolvedFilters are filters expanded into vocabulary concepts
type resolvedFilters struct {
	ingredients  []concept
	skinTypes    []concept
	concerns     []concept
	productTypes []concept
}

// MatchingService scores catalog products against query filters
type MatchingService struct {
	index              []indexedProduct
	maxResults         int
	enableDebugLogging bool
	logger             *zap.Logger
}

// NewMatchingService creates a matching service over an immutable catalog.
// Product text is lower-cased once here so that requests only read it.
func NewMatchingService(catalog *domain.Catalog, config MatchConfig) *MatchingService {
	maxResults := config.MaxResults
	if maxResults <= 0 {
		maxResults = DefaultMaxResults
	}

	logger := config.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	products := catalog.Products()
	index := make([]indexedProduct, 0, len(products))
	for _, p := range products {
		index = append(index, indexProduct(p))
	}

	return &MatchingService{
		index:              index,
		maxResults:         maxResults,
		enableDebugLogging: config.EnableDebugLogging,
		logger:             logger,
	}
}

// MaxResults returns the number of products Rank returns at most
func (s *MatchingService) MaxResults() int {
	return s.maxResults
}

// Rank scores every catalog product and returns the top results, best first.
// Ties keep catalog order. When nothing matches, all scores are zero and the
// first products of the catalog are returned.
func (s *MatchingService) Rank(ctx context.Context, filters domain.Filters) ([]domain.ScoredProduct, error) {
	resolved := resolveFilters(filters)

	scored := make([]domain.ScoredProduct, 0, len(s.index))
	for i := range s.index {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		ip := &s.index[i]
		score := scoreProduct(resolved, ip)
		scored = append(scored, domain.ScoredProduct{Product: ip.product, Score: score})

		if s.enableDebugLogging {
			s.logger.Debug("scored product",
				zap.String("brand", ip.product.Brand),
				zap.String("product", ip.product.ProductName),
				zap.Int("score", score),
			)
		}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	if len(scored) > s.maxResults {
		scored = scored[:s.maxResults]
	}

	return scored, nil
}

// ScoreProduct returns the relevance score of a single product for the filters
func ScoreProduct(filters domain.Filters, product domain.Product) int {
	ip := indexProduct(product)
	return scoreProduct(resolveFilters(filters), &ip)
}

// scoreProduct adds the group weight for every resolved concept the product matches
func scoreProduct(f resolvedFilters, ip *indexedProduct) int {
	score := 0

	for _, c := range f.ingredients {
		if containsAnyTerm(ip.ingredients, c.terms) {
			score += weightIngredient
		}
	}

	for _, c := range f.skinTypes {
		if anyContainsAnyTerm(ip.skinTypes, c.terms) {
			score += weightSkinType
		}
	}

	for _, c := range f.concerns {
		if anyContainsAnyTerm(ip.concerns, c.terms) {
			score += weightConcern
		}
	}

	for _, c := range f.productTypes {
		if containsAnyTerm(ip.typeText, c.terms) {
			score += weightProductType
		}
	}

	return score
}

// indexProduct lower-cases the attribute text the scorer reads
func indexProduct(p domain.Product) indexedProduct {
	ingredients := strings.ToLower(strings.Join(p.ActiveIngredients, ", ") + " " + p.FullIngredients)

	return indexedProduct{
		product:     p,
		ingredients: ingredients,
		skinTypes:   lowerAll(p.SkinTypes),
		concerns:    lowerAll(p.Concerns),
		typeText:    strings.ToLower(p.ProductName + " " + p.Summary),
	}
}

// resolveFilters expands every filter group against its vocabulary
func resolveFilters(filters domain.Filters) resolvedFilters {
	return resolvedFilters{
		ingredients:  resolveConcepts(filters.Ingredients, ingredientConcepts),
		skinTypes:    resolveConcepts(filters.SkinTypes, skinTypeConcepts),
		concerns:     resolveConcepts(filters.Concerns, concernConcepts),
		productTypes: resolveConcepts(filters.ProductTypes, productTypeConcepts),
	}
}

// resolveConcepts maps filter values to vocabulary concepts. A value naming a known
// term expands to every term of that concept; unknown values match literally.
// Each concept appears once even if several values resolve to it.
func resolveConcepts(values []string, vocabulary []concept) []concept {
	var resolved []concept
	seen := make(map[string]bool)

	add := func(c concept) {
		if !seen[c.name] {
			seen[c.name] = true
			resolved = append(resolved, c)
		}
	}

	for _, value := range values {
		normalized := normalizeQuery(value)
		if normalized == "" {
			continue
		}

		padded := " " + normalized + " "
		known := false
		for _, c := range vocabulary {
			if c.name == normalized || containsAnyPhrase(padded, c.terms) {
				add(c)
				known = true
			}
		}

		if !known {
			add(concept{name: normalized, terms: []string{normalized}})
		}
	}

	return resolved
}

// containsAnyPhrase checks whether any term occurs at word boundaries in padded
func containsAnyPhrase(padded string, terms []string) bool {
	for _, term := range terms {
		if containsPhrase(padded, term) {
			return true
		}
	}
	return false
}

// containsAnyTerm checks whether any term is a substring of text
func containsAnyTerm(text string, terms []string) bool {
	for _, term := range terms {
		if strings.Contains(text, term) {
			return true
		}
	}
	return false
}

// anyContainsAnyTerm checks whether any entry contains any of the terms
func anyContainsAnyTerm(entries, terms []string) bool {
	for _, entry := range entries {
		if containsAnyTerm(entry, terms) {
			return true
		}
	}
	return false
}

// lowerAll returns a lower-cased copy of values
func lowerAll(values []string) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = strings.ToLower(v)
	}
	return out
}
