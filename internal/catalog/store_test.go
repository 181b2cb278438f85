package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/bynara/MeliProductDetail/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFixtureStore(t *testing.T) *Store {
	t.Helper()

	tables, err := DecodeTables(fixtureRaw())
	require.NoError(t, err)
	return NewStore(tables)
}

func TestStore_Table(t *testing.T) {
	store := newFixtureStore(t)

	tests := []struct {
		name      string
		table     Table
		wantRows  int
		wantError bool
	}{
		{name: "Products", table: TableProducts, wantRows: 3},
		{name: "Categories", table: TableCategories, wantRows: 3},
		{name: "Sellers", table: TableSellers, wantRows: 1},
		{name: "Payment methods", table: TablePaymentMethods, wantRows: 2},
		{name: "Reviews", table: TableReviews, wantRows: 2},
		{name: "Unknown table", table: Table("orders"), wantError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows, err := store.Table(tt.table)

			if tt.wantError {
				require.Error(t, err)
				var unknown *model.UnknownTableError
				assert.True(t, errors.As(err, &unknown))
				assert.Equal(t, "orders", unknown.Table)
				return
			}

			require.NoError(t, err)
			assert.Len(t, rows, tt.wantRows)
		})
	}
}

func TestStore_GetItemByID(t *testing.T) {
	store := newFixtureStore(t)

	row, err := store.GetItemByID(TableProducts, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, row.RecordID())

	_, err = store.GetItemByID(TableProducts, 99)
	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrNotFound)

	var notFound *model.NotFoundError
	require.True(t, errors.As(err, &notFound))
	assert.Equal(t, "products", notFound.Table)
	assert.Equal(t, 99, notFound.ID)

	_, err = store.GetItemByID(Table("orders"), 1)
	var unknown *model.UnknownTableError
	assert.True(t, errors.As(err, &unknown))
}

func TestStore_GetItemByID_EmptyTable(t *testing.T) {
	store := NewStore(&Tables{})

	_, err := store.GetItemByID(TableReviews, 1)

	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestStore_TypedLookups(t *testing.T) {
	store := newFixtureStore(t)

	product, err := store.Product(1)
	require.NoError(t, err)
	assert.Equal(t, "Apple iPhone 14 Pro Max", product.Title)

	category, err := store.Category(3)
	require.NoError(t, err)
	assert.Equal(t, "iOS", category.Name)
	require.NotNil(t, category.Description)

	seller, err := store.Seller(1)
	require.NoError(t, err)
	assert.Equal(t, "Apple Store", seller.Name)

	method, err := store.PaymentMethod(2)
	require.NoError(t, err)
	assert.Equal(t, "Debit Card", method.Name)

	review, err := store.Review(2)
	require.NoError(t, err)
	assert.Nil(t, review.Review)
	assert.Nil(t, review.Date)

	_, err = store.Seller(2)
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestStore_AccessorsReturnCopies(t *testing.T) {
	store := newFixtureStore(t)

	products, err := store.Products()
	require.NoError(t, err)
	products[0].Title = "changed"

	reviews, err := store.Reviews()
	require.NoError(t, err)
	reviews[0].Rating = 1

	rows, err := store.Table(TableSellers)
	require.NoError(t, err)
	rows[0] = nil

	product, err := store.Product(1)
	require.NoError(t, err)
	assert.Equal(t, "Apple iPhone 14 Pro Max", product.Title)

	again, err := store.Reviews()
	require.NoError(t, err)
	assert.Equal(t, 5, again[0].Rating)

	seller, err := store.Seller(1)
	require.NoError(t, err)
	assert.Equal(t, "Apple Store", seller.Name)
}

func TestLoad(t *testing.T) {
	logger := zerolog.Nop()

	source := &mockSource{loadFunc: func(ctx context.Context) (*Tables, error) {
		return DecodeTables(fixtureRaw())
	}}

	store, err := Load(context.Background(), source, logger)
	require.NoError(t, err)

	products, err := store.Products()
	require.NoError(t, err)
	assert.Len(t, products, 3)
	assert.Equal(t, 1, source.calls)
}

func TestLoad_SourceError(t *testing.T) {
	logger := zerolog.Nop()

	source := &mockSource{loadFunc: func(ctx context.Context) (*Tables, error) {
		return nil, errors.New("disk on fire")
	}}

	store, err := Load(context.Background(), source, logger)

	require.Error(t, err)
	assert.Nil(t, store)
	assert.Contains(t, err.Error(), "failed to load catalog")
}

func TestParseTable(t *testing.T) {
	table, err := ParseTable("payment_methods")
	require.NoError(t, err)
	assert.Equal(t, TablePaymentMethods, table)

	_, err = ParseTable("users")
	var unknown *model.UnknownTableError
	assert.True(t, errors.As(err, &unknown))
}
