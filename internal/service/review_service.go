package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/bynara/MeliProductDetail/internal/catalog"
	"github.com/bynara/MeliProductDetail/internal/model"

	"github.com/rs/zerolog"
)

// reviewService implements ReviewService.
type reviewService struct {
	catalog catalog.Reader
	logger  zerolog.Logger
}

// NewReviewService creates a new review service.
func NewReviewService(reader catalog.Reader, logger zerolog.Logger) ReviewService {
	return &reviewService{
		catalog: reader,
		logger:  logger.With().Str("service", "review").Logger(),
	}
}

func (s *reviewService) List(ctx context.Context) ([]model.Review, error) {
	reviews, err := s.catalog.Reviews()
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list reviews")
		return nil, fmt.Errorf("failed to get reviews: %w", err)
	}

	s.logger.Info().Int("count", len(reviews)).Msg("retrieved reviews")
	return reviews, nil
}

func (s *reviewService) GetByID(ctx context.Context, id int) (*model.Review, error) {
	review, err := s.catalog.Review(id)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			s.logger.Warn().Int("review_id", id).Msg("review not found")
		} else {
			s.logger.Error().Err(err).Int("review_id", id).Msg("failed to get review")
		}
		return nil, err
	}
	return &review, nil
}

// ListByProduct filters reviews by product_id. The product itself is not
// looked up, so an unknown id yields an empty list.
func (s *reviewService) ListByProduct(ctx context.Context, productID int) ([]model.Review, error) {
	reviews, err := s.catalog.Reviews()
	if err != nil {
		s.logger.Error().Err(err).Int("product_id", productID).Msg("failed to list product reviews")
		return nil, fmt.Errorf("failed to get reviews: %w", err)
	}

	filtered := ReviewsFor(reviews, ReviewKeyProduct, productID)
	s.logger.Debug().Int("product_id", productID).Int("count", len(filtered)).Msg("retrieved product reviews")
	return filtered, nil
}
