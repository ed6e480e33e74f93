package usecase

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/kbeaute/backend/internal/domain"
)

const filterExtractionSystemPrompt = `You extract shopping filters from skincare questions.
Respond with a JSON object with exactly these keys: "ingredients", "skin_types", "concerns", "product_types".
Each value is an array of short lowercase strings. Use an empty array when nothing applies.
Do not add any other keys or any text outside the JSON object.`

// LLMFilterExtractor delegates filter extraction to the language model
type LLMFilterExtractor struct {
	model  domain.LanguageModel
	logger *zap.Logger
}

var _ domain.FilterExtractor = (*LLMFilterExtractor)(nil)

// NewLLMFilterExtractor creates a filter extractor backed by the language model
func NewLLMFilterExtractor(model domain.LanguageModel, logger *zap.Logger) *LLMFilterExtractor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LLMFilterExtractor{model: model, logger: logger}
}

// Extract asks the model for filters. A failed call is an upstream error; an
// unparseable reply degrades to empty filters.
func (e *LLMFilterExtractor) Extract(ctx context.Context, text string) (domain.Filters, error) {
	reply, err := e.model.Complete(ctx, domain.CompletionRequest{
		Operation:    domain.OperationExtractFilters,
		SystemPrompt: filterExtractionSystemPrompt,
		UserPrompt:   text,
		JSON:         true,
	})
	if err != nil {
		return domain.Filters{}, fmt.Errorf("extract filters: %w", err)
	}

	filters, ok := DecodeFilters(reply)
	if !ok {
		e.logger.Warn("language model returned malformed filters, using empty filters",
			zap.Int("reply_length", len(reply)),
		)
	}

	return filters, nil
}
