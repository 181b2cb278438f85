package service

import (
	"slices"

	"github.com/bynara/MeliProductDetail/internal/catalog"
	"github.com/bynara/MeliProductDetail/internal/model"

	"github.com/rs/zerolog"
)

// Enricher resolves a product's category and payment method ids and attaches
// its rating summary.
type Enricher struct {
	catalog catalog.Reader
	ratings *RatingAggregator
	logger  zerolog.Logger
}

// NewEnricher creates a new product enricher.
func NewEnricher(reader catalog.Reader, ratings *RatingAggregator, logger zerolog.Logger) *Enricher {
	return &Enricher{
		catalog: reader,
		ratings: ratings,
		logger:  logger.With().Str("component", "enricher").Logger(),
	}
}

// Enrich returns a copy of p with categories, payment methods and rating
// info filled in. Related rows keep their table order. Any failure is
// returned as an *model.EnrichmentError.
func (e *Enricher) Enrich(p model.Product) (model.Product, error) {
	categories, err := e.catalog.Categories()
	if err != nil {
		return model.Product{}, e.fail(p.ID, err)
	}
	methods, err := e.catalog.PaymentMethods()
	if err != nil {
		return model.Product{}, e.fail(p.ID, err)
	}
	rating, err := e.ratings.Summary(ReviewKeyProduct, p.ID)
	if err != nil {
		return model.Product{}, e.fail(p.ID, err)
	}

	p.Categories = make([]model.Category, 0, len(p.CategoryIDs))
	for _, c := range categories {
		if p.HasCategory(c.ID) {
			p.Categories = append(p.Categories, c)
		}
	}

	p.PaymentMethods = make([]model.PaymentMethod, 0, len(p.PaymentMethodIDs))
	for _, m := range methods {
		if slices.Contains(p.PaymentMethodIDs, m.ID) {
			p.PaymentMethods = append(p.PaymentMethods, m)
		}
	}

	p.RatingInfo = rating

	e.logger.Debug().
		Int("product_id", p.ID).
		Int("categories", len(p.Categories)).
		Int("payment_methods", len(p.PaymentMethods)).
		Msg("enriched product")

	return p, nil
}

// EnrichAll enriches products in order and stops at the first failure.
func (e *Enricher) EnrichAll(products []model.Product) ([]model.Product, error) {
	enriched := make([]model.Product, 0, len(products))
	for _, p := range products {
		ep, err := e.Enrich(p)
		if err != nil {
			return nil, err
		}
		enriched = append(enriched, ep)
	}
	return enriched, nil
}

func (e *Enricher) fail(productID int, err error) error {
	e.logger.Error().Err(err).Int("product_id", productID).Msg("failed to enrich product")
	return &model.EnrichmentError{ProductID: productID, Err: err}
}
