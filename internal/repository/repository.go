package repository

import (
	"context"

	"github.com/bynara/MeliProductDetail/internal/catalog"
)

// CatalogRepository stores the catalog tables in PostgreSQL and serves them
// back as a catalog.Source.
type CatalogRepository interface {
	catalog.Source

	// EnsureSchema creates the catalog_records table if it does not exist.
	EnsureSchema(ctx context.Context) error

	// ReplaceAll overwrites every stored table with the given rows in a
	// single transaction, preserving row order.
	ReplaceAll(ctx context.Context, tables *catalog.Tables) error
}
