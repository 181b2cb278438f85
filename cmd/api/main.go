package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bynara/MeliProductDetail/internal/auth"
	"github.com/bynara/MeliProductDetail/internal/catalog"
	"github.com/bynara/MeliProductDetail/internal/config"
	"github.com/bynara/MeliProductDetail/internal/database"
	"github.com/bynara/MeliProductDetail/internal/handler"
	"github.com/bynara/MeliProductDetail/internal/model"
	"github.com/bynara/MeliProductDetail/internal/repository"
	"github.com/bynara/MeliProductDetail/internal/router"
	"github.com/bynara/MeliProductDetail/internal/service"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/rs/zerolog"
)

var apiInfo = model.APIInfo{
	Title:       "MeLi Marketplace API",
	Description: "Read-only catalog of products, categories, sellers, payment methods and reviews.",
	Version:     "1.0.0",
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logger := config.NewLogger(cfg.Logger)
	logger.Info().Str("catalog_source", cfg.Catalog.Source).Msg("starting catalog API server")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	source, closeSource, err := newSource(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closeSource()

	// The catalog is loaded once, before the server accepts requests.
	store, err := catalog.Load(ctx, source, logger)
	if err != nil {
		return err
	}

	tokens, err := auth.NewTokenManager(cfg.Auth)
	if err != nil {
		return fmt.Errorf("failed to initialise token manager: %w", err)
	}
	authenticator := auth.NewAuthenticator(cfg.Auth, logger)

	// Initialize services
	ratings := service.NewRatingAggregator(store, logger)
	enricher := service.NewEnricher(store, ratings, logger)
	ranker := service.NewSimilarityRanker(store, logger)

	productService := service.NewProductService(store, enricher, ranker, logger)
	sellerService := service.NewSellerService(store, ratings, logger)
	reviewService := service.NewReviewService(store, logger)
	categoryService := service.NewCategoryService(store, logger)
	paymentMethodService := service.NewPaymentMethodService(store, logger)

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	mux := router.New(router.Handlers{
		Product:       handler.NewProductHandler(productService, cfg.Catalog.SimilarLimit, logger),
		Seller:        handler.NewSellerHandler(sellerService, logger),
		Review:        handler.NewReviewHandler(reviewService, logger),
		Category:      handler.NewCategoryHandler(categoryService, logger),
		PaymentMethod: handler.NewPaymentMethodHandler(paymentMethodService, logger),
		Auth:          handler.NewAuthHandler(authenticator, tokens, logger),
		Info:          apiInfo,
	}, tokens, registry, logger)

	server := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErrors := make(chan error, 1)

	go func() {
		logger.Info().
			Str("address", cfg.Server.Address()).
			Msg("HTTP server started")
		serverErrors <- server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		logger.Info().
			Str("signal", sig.String()).
			Msg("shutdown signal received, starting graceful shutdown")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("failed to shutdown server gracefully")
			if closeErr := server.Close(); closeErr != nil {
				logger.Error().Err(closeErr).Msg("failed to close server")
			}
			return fmt.Errorf("server shutdown failed: %w", err)
		}

		logger.Info().Msg("server shutdown completed")
	}

	return nil
}

// newSource builds the configured catalog source. The returned close
// function releases any connection the source holds.
func newSource(ctx context.Context, cfg *config.Config, logger zerolog.Logger) (catalog.Source, func(), error) {
	noop := func() {}

	switch cfg.Catalog.Source {
	case config.SourcePostgres:
		pool, err := database.NewPool(ctx, cfg.Database, logger)
		if err != nil {
			return nil, noop, fmt.Errorf("failed to initialize database: %w", err)
		}
		return repository.NewCatalogRepository(pool, logger), pool.Close, nil

	case config.SourceS3:
		fileSource := catalog.NewFileSource(cfg.Catalog.DataDir, logger)
		s3Source, err := catalog.NewS3Source(ctx, cfg.S3.Bucket, cfg.S3.Region, cfg.S3.Prefix, logger)
		if err != nil {
			logger.Warn().
				Err(err).
				Msg("failed to initialise S3 source, falling back to local file system only")
			return fileSource, noop, nil
		}
		return catalog.NewFallbackSource(s3Source, fileSource, logger), noop, nil

	default:
		logger.Info().Str("dir", cfg.Catalog.DataDir).Msg("using local file system for catalog data")
		return catalog.NewFileSource(cfg.Catalog.DataDir, logger), noop, nil
	}
}
