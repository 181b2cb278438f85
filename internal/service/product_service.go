package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/bynara/MeliProductDetail/internal/catalog"
	"github.com/bynara/MeliProductDetail/internal/model"

	"github.com/rs/zerolog"
)

// productService implements ProductService.
type productService struct {
	catalog  catalog.Reader
	enricher *Enricher
	ranker   *SimilarityRanker
	logger   zerolog.Logger
}

// NewProductService creates a new product service.
func NewProductService(reader catalog.Reader, enricher *Enricher, ranker *SimilarityRanker, logger zerolog.Logger) ProductService {
	return &productService{
		catalog:  reader,
		enricher: enricher,
		ranker:   ranker,
		logger:   logger.With().Str("service", "product").Logger(),
	}
}

// List returns every product, enriched.
func (s *productService) List(ctx context.Context) ([]model.Product, error) {
	s.logger.Info().Msg("listing products")

	products, err := s.catalog.Products()
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to read products")
		return nil, fmt.Errorf("failed to get products: %w", err)
	}

	enriched, err := s.enricher.EnrichAll(products)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int("count", len(enriched)).Msg("retrieved products")
	return enriched, nil
}

// GetByID returns a single enriched product.
func (s *productService) GetByID(ctx context.Context, id int) (*model.Product, error) {
	s.logger.Info().Int("product_id", id).Msg("getting product")

	product, err := s.catalog.Product(id)
	if err != nil {
		s.logNotFound(err, id)
		return nil, err
	}

	enriched, err := s.enricher.Enrich(product)
	if err != nil {
		return nil, err
	}

	return &enriched, nil
}

// Similar returns the enriched products ranked most similar to id.
func (s *productService) Similar(ctx context.Context, id, limit int) ([]model.Product, error) {
	s.logger.Info().Int("product_id", id).Int("limit", limit).Msg("getting similar products")

	ranked, err := s.ranker.Rank(id, limit)
	if err != nil {
		s.logNotFound(err, id)
		return nil, err
	}

	enriched, err := s.enricher.EnrichAll(ranked)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int("product_id", id).Int("count", len(enriched)).Msg("retrieved similar products")
	return enriched, nil
}

func (s *productService) logNotFound(err error, id int) {
	if errors.Is(err, model.ErrNotFound) {
		s.logger.Warn().Int("product_id", id).Msg("product not found")
		return
	}
	s.logger.Error().Err(err).Int("product_id", id).Msg("failed to get product")
}
