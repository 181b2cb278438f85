package service

import (
	"context"

	"github.com/bynara/MeliProductDetail/internal/model"
)

// ProductService exposes enriched products and similarity lookups.
type ProductService interface {
	// List returns every product, enriched, in source order.
	List(ctx context.Context) ([]model.Product, error)

	// GetByID returns the enriched product with the given id.
	GetByID(ctx context.Context, id int) (*model.Product, error)

	// Similar returns up to limit enriched products ranked by shared categories.
	Similar(ctx context.Context, id, limit int) ([]model.Product, error)
}

// SellerService exposes sellers.
type SellerService interface {
	// List returns every seller in source order without rating information.
	List(ctx context.Context) ([]model.Seller, error)

	// GetByID returns the seller with its rating summary attached.
	GetByID(ctx context.Context, id int) (*model.Seller, error)
}

// ReviewService exposes raw reviews.
type ReviewService interface {
	// List returns every review in source order.
	List(ctx context.Context) ([]model.Review, error)

	// GetByID returns a single review.
	GetByID(ctx context.Context, id int) (*model.Review, error)

	// ListByProduct returns the reviews of a product in source order.
	ListByProduct(ctx context.Context, productID int) ([]model.Review, error)
}

// CategoryService exposes categories.
type CategoryService interface {
	List(ctx context.Context) ([]model.Category, error)
	GetByID(ctx context.Context, id int) (*model.Category, error)
}

// PaymentMethodService exposes payment methods.
type PaymentMethodService interface {
	List(ctx context.Context) ([]model.PaymentMethod, error)
	GetByID(ctx context.Context, id int) (*model.PaymentMethod, error)
}
