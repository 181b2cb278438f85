package service

import (
	"cmp"
	"slices"

	"github.com/bynara/MeliProductDetail/internal/catalog"
	"github.com/bynara/MeliProductDetail/internal/model"

	"github.com/rs/zerolog"
)

// SimilarityRanker ranks products by the number of category ids they share
// with a target product.
type SimilarityRanker struct {
	catalog catalog.Reader
	logger  zerolog.Logger
}

type candidate struct {
	product model.Product
	shared  int
}

// NewSimilarityRanker creates a new similarity ranker.
func NewSimilarityRanker(reader catalog.Reader, logger zerolog.Logger) *SimilarityRanker {
	return &SimilarityRanker{
		catalog: reader,
		logger:  logger.With().Str("component", "similarity-ranker").Logger(),
	}
}

// Rank returns up to limit raw products sharing at least one category with
// the target, ordered by shared count descending then id ascending. The
// target's NotFoundError is returned unwrapped.
func (r *SimilarityRanker) Rank(id, limit int) ([]model.Product, error) {
	target, err := r.catalog.Product(id)
	if err != nil {
		return nil, err
	}
	if len(target.CategoryIDs) == 0 || limit <= 0 {
		return []model.Product{}, nil
	}

	products, err := r.catalog.Products()
	if err != nil {
		return nil, err
	}

	candidates := make([]candidate, 0, len(products))
	for _, p := range products {
		if p.ID == target.ID || len(p.CategoryIDs) == 0 {
			continue
		}
		if shared := sharedCategories(target, p); shared > 0 {
			candidates = append(candidates, candidate{product: p, shared: shared})
		}
	}

	slices.SortStableFunc(candidates, func(a, b candidate) int {
		if c := cmp.Compare(b.shared, a.shared); c != 0 {
			return c
		}
		return cmp.Compare(a.product.ID, b.product.ID)
	})

	if len(candidates) > limit {
		candidates = candidates[:limit]
	}

	ranked := make([]model.Product, len(candidates))
	for i, c := range candidates {
		ranked[i] = c.product
	}

	r.logger.Debug().
		Int("product_id", id).
		Int("limit", limit).
		Int("found", len(ranked)).
		Msg("ranked similar products")

	return ranked, nil
}

// sharedCategories counts the distinct category ids of target also present on p.
func sharedCategories(target, p model.Product) int {
	seen := make(map[int]struct{}, len(target.CategoryIDs))
	shared := 0
	for _, id := range target.CategoryIDs {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		if p.HasCategory(id) {
			shared++
		}
	}
	return shared
}
