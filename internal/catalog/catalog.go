package catalog

import (
	"context"

	"github.com/bynara/MeliProductDetail/internal/model"
)

// Table names one of the five catalog tables.
type Table string

// Recognised tables.
const (
	TableProducts       Table = "products"
	TableCategories     Table = "categories"
	TableSellers        Table = "sellers"
	TablePaymentMethods Table = "payment_methods"
	TableReviews        Table = "reviews"
)

// AllTables lists every recognised table in load order.
var AllTables = []Table{
	TableProducts,
	TableCategories,
	TableSellers,
	TablePaymentMethods,
	TableReviews,
}

// ParseTable returns the Table for name or an UnknownTableError.
func ParseTable(name string) (Table, error) {
	for _, t := range AllTables {
		if string(t) == name {
			return t, nil
		}
	}
	return "", &model.UnknownTableError{Table: name}
}

// FileName returns the JSON document name backing the table.
func (t Table) FileName() string {
	return string(t) + ".json"
}

// Record is a catalog row addressable by integer id.
type Record interface {
	RecordID() int
}

// Tables holds the decoded rows of every table in source order.
type Tables struct {
	Products       []model.Product
	Categories     []model.Category
	Sellers        []model.Seller
	PaymentMethods []model.PaymentMethod
	Reviews        []model.Review
}

// Source provides the raw catalog. It is consulted exactly once, before the
// server starts handling requests.
type Source interface {
	// Load reads and validates all five tables.
	Load(ctx context.Context) (*Tables, error)
}

// Reader is the read-only view of the catalog used by the services.
type Reader interface {
	// Products returns every product in source order.
	Products() ([]model.Product, error)

	// Categories returns every category in source order.
	Categories() ([]model.Category, error)

	// Sellers returns every seller in source order.
	Sellers() ([]model.Seller, error)

	// PaymentMethods returns every payment method in source order.
	PaymentMethods() ([]model.PaymentMethod, error)

	// Reviews returns every review in source order.
	Reviews() ([]model.Review, error)

	// Product returns the product with the given id or a NotFoundError.
	Product(id int) (model.Product, error)

	// Category returns the category with the given id or a NotFoundError.
	Category(id int) (model.Category, error)

	// Seller returns the seller with the given id or a NotFoundError.
	Seller(id int) (model.Seller, error)

	// PaymentMethod returns the payment method with the given id or a NotFoundError.
	PaymentMethod(id int) (model.PaymentMethod, error)

	// Review returns the review with the given id or a NotFoundError.
	Review(id int) (model.Review, error)
}
