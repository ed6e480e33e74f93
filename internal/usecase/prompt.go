package usecase

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/kbeaute/backend/internal/domain"
)

const (
	answerSystemPrompt = "You are a precise skincare expert."

	// NoMatchAnswer is returned by Ask when no product scores above zero
	NoMatchAnswer = "Sorry, no products found matching your criteria."

	maxContextBlockRunes    = 1000
	maxShortDescriptionRune = 200
)

// sentenceEndPattern matches a sentence terminator followed by whitespace or the end
var sentenceEndPattern = regexp.MustCompile(`[.!?](\s|$)`)

// buildProductContext renders one block per product for the answer prompt
func buildProductContext(products []domain.Product) string {
	blocks := make([]string, 0, len(products))
	for _, p := range products {
		block := fmt.Sprintf("Brand: %s\nProduct: %s\nDescription: %s\nKey Ingredients: %s\nWhen to Use: %s",
			p.Brand, p.ProductName, p.Summary, strings.Join(p.ActiveIngredients, ", "), p.RecommendedUse)
		blocks = append(blocks, truncateRunes(block, maxContextBlockRunes))
	}
	return strings.Join(blocks, "\n")
}

// buildAnswerPrompt builds the user prompt for answer synthesis
func buildAnswerPrompt(products []domain.Product, question string, maxProducts int) string {
	return fmt.Sprintf(`You are KBeauté's AI skincare expert. Only use the product data below to answer:
%s

Question: %s
Return a short, clear recommendation for up to %d products, with brand, name, key ingredients and when to use.
`, buildProductContext(products), question, maxProducts)
}

// ToRecommendation maps a catalog product to its public recommendation shape
func ToRecommendation(p domain.Product) domain.Recommendation {
	keyIngredients := p.ActiveIngredients
	if keyIngredients == nil {
		keyIngredients = []string{}
	}

	return domain.Recommendation{
		Brand:            p.Brand,
		ProductName:      p.ProductName,
		ShortDescription: shortDescription(p.Summary),
		KeyIngredients:   keyIngredients,
		WhenToUse:        p.RecommendedUse,
	}
}

// shortDescription returns the first sentence of the summary, cut at a word
// boundary when longer than maxShortDescriptionRune.
func shortDescription(summary string) string {
	summary = strings.TrimSpace(summary)
	if loc := sentenceEndPattern.FindStringIndex(summary); loc != nil {
		summary = summary[:loc[0]+1]
	}

	if utf8.RuneCountInString(summary) <= maxShortDescriptionRune {
		return summary
	}

	cut := truncateRunes(summary, maxShortDescriptionRune)
	if lastSpace := strings.LastIndex(cut, " "); lastSpace > maxShortDescriptionRune/2 {
		cut = cut[:lastSpace]
	}
	return strings.TrimRight(cut, " ,;:") + "…"
}

// truncateRunes cuts s to at most n runes
func truncateRunes(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	runes := []rune(s)
	return string(runes[:n])
}
