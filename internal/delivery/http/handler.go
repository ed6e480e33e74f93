package http

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/kbeaute/backend/internal/domain"
	"github.com/kbeaute/backend/internal/logger"
	"github.com/kbeaute/backend/internal/usecase"
	"github.com/kbeaute/backend/internal/version"
)

const (
	serviceName       = "kbeaute-backend"
	rootStatusMessage = "KBeauté skincare recommender is running."

	msgNoQuery            = "No query provided."
	msgInvalidBody        = "Invalid request body"
	msgUpstreamFailure    = "Language model temporarily unavailable"
	msgInternalError      = "Internal server error"
	msgServiceUnavailable = "Recommendation service not configured"
)

// errNoBody marks a request without a JSON body
var errNoBody = errors.New("request body is empty")

// Recommender is the use case the handlers delegate to
type Recommender interface {
	Recommend(ctx context.Context, query string) ([]domain.ScoredProduct, error)
	Ask(ctx context.Context, question string) (string, error)
	CatalogSize() int
}

// Handler holds dependencies for HTTP handlers
type Handler struct {
	recommender Recommender
	logger      *zap.Logger
}

// NewHandler creates a new HTTP handler. A nil recommender makes the
// recommendation endpoints answer 501.
func NewHandler(recommender Recommender, log *zap.Logger) *Handler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Handler{
		recommender: recommender,
		logger:      log,
	}
}

// RecommendRequest is the body of POST /recommend
type RecommendRequest struct {
	Query string `json:"query"`
}

// AskRequest is the body of POST /ask
type AskRequest struct {
	Question string `json:"question"`
}

// RecommendResponse is the success body of POST /recommend
type RecommendResponse struct {
	Recommendations []domain.Recommendation `json:"recommendations"`
}

// AskResponse is the success body of POST /ask
type AskResponse struct {
	Answer string `json:"answer"`
}

// Root returns a plain status string
func (h *Handler) Root(c *gin.Context) {
	c.String(http.StatusOK, rootStatusMessage)
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	products := 0
	if h.recommender != nil {
		products = h.recommender.CatalogSize()
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   "healthy",
		"service":  serviceName,
		"version":  version.Version,
		"products": products,
	})
}

// Recommend handles product recommendation requests
func (h *Handler) Recommend(c *gin.Context) {
	if h.recommender == nil {
		c.JSON(http.StatusNotImplemented, gin.H{"error": msgServiceUnavailable})
		return
	}

	var req RecommendRequest
	if !h.bind(c, &req) {
		return
	}

	ranked, err := h.recommender.Recommend(c.Request.Context(), req.Query)
	if err != nil {
		h.respondError(c, err)
		return
	}

	recommendations := make([]domain.Recommendation, 0, len(ranked))
	for _, sp := range ranked {
		recommendations = append(recommendations, usecase.ToRecommendation(sp.Product))
	}

	c.JSON(http.StatusOK, RecommendResponse{Recommendations: recommendations})
}

// Ask handles natural-language question requests
func (h *Handler) Ask(c *gin.Context) {
	if h.recommender == nil {
		c.JSON(http.StatusNotImplemented, gin.H{"error": msgServiceUnavailable})
		return
	}

	var req AskRequest
	if !h.bind(c, &req) {
		return
	}

	answer, err := h.recommender.Ask(c.Request.Context(), req.Question)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, AskResponse{Answer: answer})
}

// bind decodes the JSON body into dst and writes a 400 response on failure.
// An absent or empty body counts as a missing query.
func (h *Handler) bind(c *gin.Context, dst interface{}) bool {
	err := decodeBody(c, dst)
	switch {
	case err == nil:
		return true
	case errors.Is(err, errNoBody):
		c.JSON(http.StatusBadRequest, gin.H{"error": msgNoQuery})
	default:
		logger.FromContext(c.Request.Context()).Debug("invalid request body", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": msgInvalidBody})
	}
	return false
}

// decodeBody binds the request JSON, reporting errNoBody for an empty body
func decodeBody(c *gin.Context, dst interface{}) error {
	if c.Request.Body == nil || c.Request.Body == http.NoBody {
		return errNoBody
	}
	if err := c.ShouldBindJSON(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return errNoBody
		}
		return err
	}
	return nil
}

// respondError maps use-case errors to HTTP responses
func (h *Handler) respondError(c *gin.Context, err error) {
	log := logger.FromContext(c.Request.Context())

	switch {
	case errors.Is(err, domain.ErrInvalidRequest):
		c.JSON(http.StatusBadRequest, gin.H{"error": msgNoQuery})
	case errors.Is(err, domain.ErrLanguageModelFailure):
		log.Error("language model failure", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": msgUpstreamFailure})
	default:
		log.Error("request failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": msgInternalError})
	}
}
