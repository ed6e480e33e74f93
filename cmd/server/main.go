package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/kbeaute/backend/config"
	httpDelivery "github.com/kbeaute/backend/internal/delivery/http"
	"github.com/kbeaute/backend/internal/domain"
	"github.com/kbeaute/backend/internal/infrastructure/catalog"
	"github.com/kbeaute/backend/internal/infrastructure/openai"
	logpkg "github.com/kbeaute/backend/internal/logger"
	"github.com/kbeaute/backend/internal/metrics"
	"github.com/kbeaute/backend/internal/usecase"
	"github.com/kbeaute/backend/internal/version"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logger, err := logpkg.NewLogger(cfg.Server.Environment, cfg.Logging.Level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting KBeauté backend",
		zap.String("version", version.Version),
		zap.String("commit", version.Commit),
		zap.String("env", cfg.Server.Environment),
		zap.String("port", cfg.Server.Port),
	)

	// Load the catalog once; it is read-only from here on
	products, err := catalog.Load(cfg.Catalog.Path)
	if err != nil {
		logger.Fatal("Failed to load catalog", zap.String("path", cfg.Catalog.Path), zap.Error(err))
	}
	if products.Len() == 0 {
		logger.Warn("Catalog is empty, every query will return no products", zap.String("path", cfg.Catalog.Path))
	}
	logger.Info("Catalog loaded", zap.String("path", cfg.Catalog.Path), zap.Int("products", products.Len()))

	// Register metrics explicitly (no init())
	metrics.Register()

	// Initialize infrastructure dependencies
	llmClient := openai.NewClient(&openai.Config{
		APIKey:  cfg.LLM.APIKey,
		BaseURL: cfg.LLM.BaseURL,
		Model:   cfg.LLM.Model,
		Logger:  logger,
	})

	// Enable debug mode in development environment
	if cfg.Server.Environment == "development" {
		llmClient.SetDebug(true)
	}

	if cfg.LLM.APIKey == "" {
		logger.Warn("LLM API key not configured, language model calls will fail",
			zap.String("base_url", cfg.LLM.BaseURL))
	} else {
		logger.Info("LLM API configured", zap.String("base_url", cfg.LLM.BaseURL), zap.String("model", cfg.LLM.Model))
	}

	// Initialize usecase layer
	var extractor domain.FilterExtractor
	switch cfg.Matching.Extractor {
	case config.ExtractorLLM:
		extractor = usecase.NewLLMFilterExtractor(llmClient, logger)
	default:
		extractor = usecase.NewQueryPreprocessor(logger, cfg.Matching.Debug)
	}

	recommendationService := usecase.NewRecommendationService(
		products,
		extractor,
		llmClient,
		usecase.RecommendationServiceConfig{
			MaxResults:         cfg.Matching.MaxResults,
			EnableDebugLogging: cfg.Matching.Debug,
			Logger:             logger,
		},
	)

	logger.Info("Matching configured",
		zap.String("extractor", cfg.Matching.Extractor),
		zap.Int("max_results", cfg.Matching.MaxResults),
		zap.Bool("debug", cfg.Matching.Debug),
	)

	// Create HTTP handler with dependencies
	handler := httpDelivery.NewHandler(recommendationService, logger)

	// Setup router
	router := httpDelivery.SetupRouter(cfg, handler)

	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info("Starting HTTP server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	<-quit
	logger.Info("Received shutdown signal")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Error during shutdown", zap.Error(err))
	}

	logger.Info("Server stopped gracefully")
}
