package catalog

import (
	"context"
	"fmt"
	"slices"

	"github.com/bynara/MeliProductDetail/internal/model"

	"github.com/rs/zerolog"
)

// Store is an immutable in-memory snapshot of the catalog. It is safe for
// concurrent use because nothing mutates it after construction.
//
// Table accessors return copies of the row slices. Nested collections such
// as Product.CategoryIDs are still shared with the snapshot and must not be
// modified.
type Store struct {
	tables *Tables
	rows   map[Table][]Record
}

var _ Reader = (*Store)(nil)

// NewStore builds a store over already decoded tables. The store takes
// ownership of t; callers must not modify it afterwards.
func NewStore(t *Tables) *Store {
	if t == nil {
		t = &Tables{}
	}

	return &Store{
		tables: t,
		rows: map[Table][]Record{
			TableProducts:       asRecords(t.Products),
			TableCategories:     asRecords(t.Categories),
			TableSellers:        asRecords(t.Sellers),
			TablePaymentMethods: asRecords(t.PaymentMethods),
			TableReviews:        asRecords(t.Reviews),
		},
	}
}

// Load reads every table from src once and returns the resulting snapshot.
func Load(ctx context.Context, src Source, logger zerolog.Logger) (*Store, error) {
	logger = logger.With().Str("component", "catalog-store").Logger()

	tables, err := src.Load(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("failed to load catalog")
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}

	store := NewStore(tables)
	for _, name := range AllTables {
		logger.Info().
			Str("table", string(name)).
			Int("rows", len(store.rows[name])).
			Msg("catalog table loaded")
	}

	return store, nil
}

// Table returns every row of the named table in source order.
func (s *Store) Table(name Table) ([]Record, error) {
	rows, ok := s.rows[name]
	if !ok {
		return nil, &model.UnknownTableError{Table: string(name)}
	}
	return slices.Clone(rows), nil
}

// GetItemByID returns the row of the named table whose id matches, scanning
// in source order.
func (s *Store) GetItemByID(name Table, id int) (Record, error) {
	rows, ok := s.rows[name]
	if !ok {
		return nil, &model.UnknownTableError{Table: string(name)}
	}

	for _, row := range rows {
		if row.RecordID() == id {
			return row, nil
		}
	}

	return nil, &model.NotFoundError{Table: string(name), ID: id}
}

// Products returns every product in source order.
func (s *Store) Products() ([]model.Product, error) { return slices.Clone(s.tables.Products), nil }

// Categories returns every category in source order.
func (s *Store) Categories() ([]model.Category, error) { return slices.Clone(s.tables.Categories), nil }

// Sellers returns every seller in source order.
func (s *Store) Sellers() ([]model.Seller, error) { return slices.Clone(s.tables.Sellers), nil }

// PaymentMethods returns every payment method in source order.
func (s *Store) PaymentMethods() ([]model.PaymentMethod, error) {
	return slices.Clone(s.tables.PaymentMethods), nil
}

// Reviews returns every review in source order.
func (s *Store) Reviews() ([]model.Review, error) { return slices.Clone(s.tables.Reviews), nil }

// Product returns the product with the given id.
func (s *Store) Product(id int) (model.Product, error) {
	return itemByID[model.Product](s, TableProducts, id)
}

// Category returns the category with the given id.
func (s *Store) Category(id int) (model.Category, error) {
	return itemByID[model.Category](s, TableCategories, id)
}

// Seller returns the seller with the given id.
func (s *Store) Seller(id int) (model.Seller, error) {
	return itemByID[model.Seller](s, TableSellers, id)
}

// PaymentMethod returns the payment method with the given id.
func (s *Store) PaymentMethod(id int) (model.PaymentMethod, error) {
	return itemByID[model.PaymentMethod](s, TablePaymentMethods, id)
}

// Review returns the review with the given id.
func (s *Store) Review(id int) (model.Review, error) {
	return itemByID[model.Review](s, TableReviews, id)
}

func itemByID[T Record](s *Store, name Table, id int) (T, error) {
	var zero T

	row, err := s.GetItemByID(name, id)
	if err != nil {
		return zero, err
	}

	item, ok := row.(T)
	if !ok {
		return zero, fmt.Errorf("table %s holds %T, not %T", name, row, zero)
	}
	return item, nil
}

func asRecords[T Record](items []T) []Record {
	rows := make([]Record, len(items))
	for i, item := range items {
		rows[i] = item
	}
	return rows
}
