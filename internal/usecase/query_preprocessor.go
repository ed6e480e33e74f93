package usecase

import (
	"context"
	"regexp"
	"strings"

	"go.uber.org/zap"

	"github.com/kbeaute/backend/internal/domain"
)

// Compiled regex patterns for query normalization
var (
	// Everything except letters, digits, hyphens and whitespace becomes a space
	punctuationPattern = regexp.MustCompile(`[^\p{L}\p{N}\s-]`)

	// Multiple spaces cleanup
	multiSpacePattern = regexp.MustCompile(`\s+`)
)

// concept is a canonical term together with the phrases that denote it.
// terms is used both to detect the concept in a query and to match product text.
type concept struct {
	name  string
	terms []string
}

// ingredientConcepts contains the active ingredients customers ask for (weight 3)
var ingredientConcepts = []concept{
	{"vitamin c", []string{
		"vitamin c", "ascorbic acid", "ethyl ascorbyl ether", "sodium ascorbyl phosphate",
		"magnesium ascorbyl phosphate", "tetrahexyldecyl ascorbate", "ascorbyl glucoside",
		"3-o-ethyl ascorbic acid",
	}},
	{"retinol", []string{
		"retinol", "retinal", "retinaldehyde", "retinyl palmitate", "retinoid",
		"hydroxypinacolone retinoate", "bakuchiol",
	}},
	{"niacinamide", []string{"niacinamide", "nicotinamide", "vitamin b3"}},
	{"hyaluronic acid", []string{"hyaluronic acid", "sodium hyaluronate", "hyaluronan"}},
	{"salicylic acid", []string{"salicylic acid", "bha", "betaine salicylate", "willow bark"}},
	{"glycolic acid", []string{"glycolic acid", "aha"}},
	{"lactic acid", []string{"lactic acid"}},
	{"azelaic acid", []string{"azelaic acid"}},
	{"centella asiatica", []string{"centella asiatica", "centella", "cica", "madecassoside", "asiaticoside", "tiger grass"}},
	{"snail mucin", []string{"snail mucin", "snail secretion filtrate"}},
	{"ceramide", []string{"ceramide"}},
	{"peptide", []string{"peptide", "copper tripeptide", "palmitoyl"}},
	{"panthenol", []string{"panthenol", "vitamin b5"}},
	{"green tea", []string{"green tea", "camellia sinensis"}},
	{"tea tree", []string{"tea tree", "melaleuca"}},
	{"propolis", []string{"propolis"}},
	{"mugwort", []string{"mugwort", "artemisia"}},
	{"rice", []string{"rice extract", "rice ferment", "oryza sativa"}},
	{"zinc oxide", []string{"zinc oxide"}},
	{"squalane", []string{"squalane"}},
}

// skinTypeConcepts contains skin type keywords (weight 2)
var skinTypeConcepts = []concept{
	{"oily", []string{"oily"}},
	{"dry", []string{"dry"}},
	{"combination", []string{"combination"}},
	{"sensitive", []string{"sensitive"}},
	{"normal", []string{"normal"}},
	{"acne-prone", []string{"acne-prone", "acne prone"}},
	{"mature", []string{"mature"}},
}

// concernConcepts contains skin concern keywords (weight 2)
var concernConcepts = []concept{
	{"acne", []string{"acne", "breakout", "pimple", "blemish"}},
	{"aging", []string{"aging", "ageing", "anti-aging", "wrinkle", "fine lines", "firmness", "elasticity"}},
	{"hyperpigmentation", []string{"hyperpigmentation", "pigmentation", "dark spots", "dark spot", "melasma", "uneven tone", "uneven skin tone"}},
	{"dullness", []string{"dullness", "dull", "brightening", "radiance", "glow"}},
	{"dryness", []string{"dryness", "dehydration", "dehydrated", "hydration", "moisture"}},
	{"redness", []string{"redness", "rosacea", "irritation", "inflammation", "soothing", "calming"}},
	{"pores", []string{"pores", "enlarged pores", "blackheads", "sebum"}},
	{"dark circles", []string{"dark circles", "puffiness"}},
	{"sun damage", []string{"sun damage", "uv damage", "sunburn"}},
}

// productTypeConcepts contains product format keywords (weight 1)
var productTypeConcepts = []concept{
	{"serum", []string{"serum"}},
	{"ampoule", []string{"ampoule"}},
	{"essence", []string{"essence"}},
	{"toner", []string{"toner"}},
	{"cleanser", []string{"cleanser", "cleansing", "face wash"}},
	{"cream", []string{"cream", "moisturizer", "moisturiser"}},
	{"eye cream", []string{"eye cream"}},
	{"lotion", []string{"lotion", "emulsion"}},
	{"gel", []string{"gel"}},
	{"sunscreen", []string{"sunscreen", "sun cream", "sunblock", "spf"}},
	{"mask", []string{"mask"}},
	{"oil", []string{"facial oil", "cleansing oil", "face oil"}},
	{"exfoliator", []string{"exfoliator", "exfoliant", "peeling", "scrub"}},
	{"mist", []string{"mist"}},
	{"balm", []string{"balm"}},
}

// QueryPreprocessor handles cleaning free text and extracting known keywords from it
type QueryPreprocessor struct {
	logger             *zap.Logger
	enableDebugLogging bool
}

var _ domain.FilterExtractor = (*QueryPreprocessor)(nil)

// NewQueryPreprocessor creates a new query preprocessor
func NewQueryPreprocessor(logger *zap.Logger, enableDebugLogging bool) *QueryPreprocessor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &QueryPreprocessor{
		logger:             logger,
		enableDebugLogging: enableDebugLogging,
	}
}

// Extract implements domain.FilterExtractor using the built-in vocabulary.
// It never fails; text without any known keyword yields empty filters.
func (p *QueryPreprocessor) Extract(_ context.Context, text string) (domain.Filters, error) {
	return p.ExtractFilters(text), nil
}

// ExtractFilters returns the canonical concept names found in the text, per group
func (p *QueryPreprocessor) ExtractFilters(text string) domain.Filters {
	padded := " " + normalizeQuery(text) + " "

	filters := domain.Filters{
		Ingredients:  detectConcepts(padded, ingredientConcepts),
		SkinTypes:    detectConcepts(padded, skinTypeConcepts),
		Concerns:     detectConcepts(padded, concernConcepts),
		ProductTypes: detectConcepts(padded, productTypeConcepts),
	}

	if p.enableDebugLogging {
		p.logger.Debug("extracted keyword filters",
			zap.String("query", text),
			zap.Strings("ingredients", filters.Ingredients),
			zap.Strings("skin_types", filters.SkinTypes),
			zap.Strings("concerns", filters.Concerns),
			zap.Strings("product_types", filters.ProductTypes),
		)
	}

	return filters
}

// normalizeQuery lower-cases text, strips punctuation and collapses whitespace
func normalizeQuery(text string) string {
	cleaned := punctuationPattern.ReplaceAllString(strings.ToLower(text), " ")
	cleaned = multiSpacePattern.ReplaceAllString(cleaned, " ")
	return strings.TrimSpace(cleaned)
}

// detectConcepts returns the names of concepts with a term occurring as a whole
// word sequence in padded, which must be normalized and space-padded.
func detectConcepts(padded string, vocabulary []concept) []string {
	var found []string
	for _, c := range vocabulary {
		for _, term := range c.terms {
			if containsPhrase(padded, term) {
				found = append(found, c.name)
				break
			}
		}
	}
	return found
}

// containsPhrase checks for term at word boundaries. Trailing "s" is tolerated so
// "serums" and "wrinkles" still hit their singular terms.
func containsPhrase(padded, term string) bool {
	return strings.Contains(padded, " "+term+" ") || strings.Contains(padded, " "+term+"s ")
}
