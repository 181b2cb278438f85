package service

import (
	"fmt"
	"math"

	"github.com/bynara/MeliProductDetail/internal/catalog"
	"github.com/bynara/MeliProductDetail/internal/model"

	"github.com/rs/zerolog"
)

// Integer review fields ReviewsFor can filter on.
const (
	ReviewKeyID      = "id"
	ReviewKeyProduct = "product_id"
	ReviewKeySeller  = "seller_id"
	ReviewKeyRating  = "rating"
)

// ReviewsFor returns the reviews whose key field equals value, in source
// order. Keys naming a non-integer field, or no field, match nothing.
func ReviewsFor(reviews []model.Review, key string, value int) []model.Review {
	var field func(model.Review) int
	switch key {
	case ReviewKeyProduct:
		field = func(r model.Review) int { return r.ProductID }
	case ReviewKeySeller:
		field = func(r model.Review) int { return r.SellerID }
	case ReviewKeyID:
		field = func(r model.Review) int { return r.ID }
	case ReviewKeyRating:
		field = func(r model.Review) int { return r.Rating }
	default:
		return []model.Review{}
	}

	filtered := make([]model.Review, 0)
	for _, r := range reviews {
		if field(r) == value {
			filtered = append(filtered, r)
		}
	}
	return filtered
}

// RatingHistogram counts the reviews per star value.
func RatingHistogram(reviews []model.Review) model.RatingHistogram {
	var h model.RatingHistogram
	for _, r := range reviews {
		h.Add(r.Rating)
	}
	return h
}

// AverageRating returns the mean rating rounded to two decimals, or 0 when
// there are no reviews.
func AverageRating(reviews []model.Review) float64 {
	if len(reviews) == 0 {
		return 0
	}

	total := 0
	for _, r := range reviews {
		total += r.Rating
	}
	avg := float64(total) / float64(len(reviews))
	return math.RoundToEven(avg*100) / 100
}

// RatingAggregator builds rating summaries from the review table.
type RatingAggregator struct {
	catalog catalog.Reader
	logger  zerolog.Logger
}

// NewRatingAggregator creates a new rating aggregator.
func NewRatingAggregator(reader catalog.Reader, logger zerolog.Logger) *RatingAggregator {
	return &RatingAggregator{
		catalog: reader,
		logger:  logger.With().Str("component", "rating-aggregator").Logger(),
	}
}

// Summary aggregates every review whose key field equals value.
func (a *RatingAggregator) Summary(key string, value int) (*model.RatingSummary, error) {
	reviews, err := a.catalog.Reviews()
	if err != nil {
		a.logger.Error().Err(err).Str("key", key).Int("value", value).Msg("failed to read reviews")
		return nil, fmt.Errorf("failed to read reviews: %w", err)
	}

	filtered := ReviewsFor(reviews, key, value)
	summary := &model.RatingSummary{
		ReviewsCount:  len(filtered),
		RatingsCount:  RatingHistogram(filtered),
		AverageRating: AverageRating(filtered),
	}

	a.logger.Debug().
		Str("key", key).
		Int("value", value).
		Int("reviews", summary.ReviewsCount).
		Float64("average", summary.AverageRating).
		Msg("generated rating summary")

	return summary, nil
}
