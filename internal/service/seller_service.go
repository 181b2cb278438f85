package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/bynara/MeliProductDetail/internal/catalog"
	"github.com/bynara/MeliProductDetail/internal/model"

	"github.com/rs/zerolog"
)

// sellerService implements SellerService.
type sellerService struct {
	catalog catalog.Reader
	ratings *RatingAggregator
	logger  zerolog.Logger
}

// NewSellerService creates a new seller service.
func NewSellerService(reader catalog.Reader, ratings *RatingAggregator, logger zerolog.Logger) SellerService {
	return &sellerService{
		catalog: reader,
		ratings: ratings,
		logger:  logger.With().Str("service", "seller").Logger(),
	}
}

// List returns every seller.
func (s *sellerService) List(ctx context.Context) ([]model.Seller, error) {
	sellers, err := s.catalog.Sellers()
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list sellers")
		return nil, fmt.Errorf("failed to get sellers: %w", err)
	}

	s.logger.Info().Int("count", len(sellers)).Msg("retrieved sellers")
	return sellers, nil
}

// GetByID returns the seller with its rating summary keyed by seller_id.
func (s *sellerService) GetByID(ctx context.Context, id int) (*model.Seller, error) {
	seller, err := s.catalog.Seller(id)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			s.logger.Warn().Int("seller_id", id).Msg("seller not found")
		} else {
			s.logger.Error().Err(err).Int("seller_id", id).Msg("failed to get seller")
		}
		return nil, err
	}

	rating, err := s.ratings.Summary(ReviewKeySeller, id)
	if err != nil {
		return nil, fmt.Errorf("failed to rate seller %d: %w", id, err)
	}
	seller.RatingInfo = rating

	s.logger.Info().Int("seller_id", id).Int("reviews", rating.ReviewsCount).Msg("retrieved seller")
	return &seller, nil
}
