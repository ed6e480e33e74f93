package usecase

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/kbeaute/backend/internal/domain"
	"github.com/kbeaute/backend/internal/logger"
	"github.com/kbeaute/backend/internal/metrics"
)

// Recommendation outcomes, used as metrics labels
const (
	outcomeMatched   = "matched"
	outcomeZeroScore = "zero_score"
)

// RecommendationServiceConfig holds configuration for the recommendation service
type RecommendationServiceConfig struct {
	MaxResults         int
	EnableDebugLogging bool
	Logger             *zap.Logger
}

// RecommendationService answers customer queries from the catalog
type RecommendationService struct {
	catalog   *domain.Catalog
	matcher   *MatchingService
	extractor domain.FilterExtractor
	model     domain.LanguageModel
}

// NewRecommendationService creates a recommendation service with dependencies.
// extractor decides how queries become filters; model is only used to phrase
// answers for Ask.
func NewRecommendationService(
	catalog *domain.Catalog,
	extractor domain.FilterExtractor,
	model domain.LanguageModel,
	config RecommendationServiceConfig,
) *RecommendationService {
	matcher := NewMatchingService(catalog, MatchConfig{
		MaxResults:         config.MaxResults,
		EnableDebugLogging: config.EnableDebugLogging,
		Logger:             config.Logger,
	})

	return &RecommendationService{
		catalog:   catalog,
		matcher:   matcher,
		extractor: extractor,
		model:     model,
	}
}

// CatalogSize returns the number of products served
func (s *RecommendationService) CatalogSize() int {
	return s.catalog.Len()
}

// Recommend returns the top-ranked products for a free-text query.
// Flow: validate -> extract filters -> score catalog -> top N
func (s *RecommendationService) Recommend(ctx context.Context, query string) ([]domain.ScoredProduct, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, domain.ErrInvalidRequest
	}

	ranked, err := s.rank(ctx, query)
	if err != nil {
		return nil, err
	}

	outcome := outcomeZeroScore
	if len(ranked) > 0 && ranked[0].Score > 0 {
		outcome = outcomeMatched
	}
	metrics.RecommendationsTotal.WithLabelValues("recommend", outcome).Inc()

	return ranked, nil
}

// Ask answers a question in natural language using only matching products.
// When no product scores above zero the model is not called.
func (s *RecommendationService) Ask(ctx context.Context, question string) (string, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return "", domain.ErrInvalidRequest
	}

	ranked, err := s.rank(ctx, question)
	if err != nil {
		return "", err
	}

	matches := make([]domain.Product, 0, len(ranked))
	for _, sp := range ranked {
		if sp.Score > 0 {
			matches = append(matches, sp.Product)
		}
	}

	if len(matches) == 0 {
		metrics.RecommendationsTotal.WithLabelValues("ask", outcomeZeroScore).Inc()
		return NoMatchAnswer, nil
	}
	metrics.RecommendationsTotal.WithLabelValues("ask", outcomeMatched).Inc()

	answer, err := s.model.Complete(ctx, domain.CompletionRequest{
		Operation:    domain.OperationAnswer,
		SystemPrompt: answerSystemPrompt,
		UserPrompt:   buildAnswerPrompt(matches, question, s.matcher.MaxResults()),
	})
	if err != nil {
		return "", fmt.Errorf("answer question: %w", err)
	}

	return strings.TrimSpace(answer), nil
}

// rank extracts filters from the text and scores the catalog against them
func (s *RecommendationService) rank(ctx context.Context, text string) ([]domain.ScoredProduct, error) {
	log := logger.FromContext(ctx)

	filters, err := s.extractor.Extract(ctx, text)
	if err != nil {
		log.Warn("filter extraction failed", zap.Error(err))
		return nil, err
	}

	ranked, err := s.matcher.Rank(ctx, filters)
	if err != nil {
		return nil, err
	}

	if len(ranked) > 0 {
		log.Debug("ranked catalog",
			zap.Bool("filters_empty", filters.IsEmpty()),
			zap.Int("results", len(ranked)),
			zap.Int("top_score", ranked[0].Score),
		)
	}

	return ranked, nil
}
