package service

import (
	"github.com/bynara/MeliProductDetail/internal/catalog"
	"github.com/bynara/MeliProductDetail/internal/model"

	"github.com/stretchr/testify/mock"
)

func strPtr(s string) *string { return &s }

func testProduct(id, sellerID int, categoryIDs ...int) model.Product {
	return model.Product{
		ID:               id,
		Title:            "Product",
		Price:            100,
		Images:           []string{},
		SellerID:         sellerID,
		PaymentMethodIDs: []int{2, 1},
		Stock:            1,
		CategoryIDs:      categoryIDs,
		Features:         map[string]any{},
	}
}

func testTables() *catalog.Tables {
	return &catalog.Tables{
		Products: []model.Product{
			testProduct(1, 1, 1, 3, 4, 6),
			testProduct(2, 2, 1, 2, 4, 6, 7),
			testProduct(3, 3, 1, 2, 5, 6, 7),
			testProduct(4, 3, 1, 2, 5, 6, 7),
			testProduct(5, 2, 1, 2, 4, 6),
			testProduct(6, 1),
		},
		Categories: []model.Category{
			{ID: 1, Name: "Smartphones"},
			{ID: 2, Name: "Android"},
			{ID: 3, Name: "iOS", Description: strPtr("Apple devices")},
			{ID: 4, Name: "Gama Alta"},
			{ID: 5, Name: "Gama Media"},
			{ID: 6, Name: "5G"},
			{ID: 7, Name: "Dual SIM"},
		},
		Sellers: []model.Seller{
			{ID: 1, Name: "Apple Store", Location: "CDMX", Email: "contacto@apple.com", Phone: "555-1234"},
			{ID: 2, Name: "Samsung Shop", Location: "GDL", Email: "ventas@samsung.com", Phone: "555-5678"},
			{ID: 3, Name: "Xiaomi Hub", Location: "MTY", Email: "hola@xiaomi.com", Phone: "555-0000"},
		},
		PaymentMethods: []model.PaymentMethod{
			{ID: 1, Name: "Credit Card", Description: "Visa, Mastercard"},
			{ID: 2, Name: "Debit Card", Description: "Debit"},
			{ID: 3, Name: "Mercado Pago", Description: "Wallet"},
		},
		Reviews: []model.Review{
			{ID: 1, ProductID: 1, SellerID: 1, Buyer: "Ana", Rating: 5, Review: strPtr("Excelente")},
			{ID: 2, ProductID: 2, SellerID: 2, Buyer: "Luis", Rating: 5},
			{ID: 3, ProductID: 1, SellerID: 1, Buyer: "Sofia", Rating: 3, Date: strPtr("2024-02-01")},
			{ID: 4, ProductID: 2, SellerID: 2, Buyer: "Carlos", Rating: 4},
			{ID: 5, ProductID: 2, SellerID: 2, Buyer: "Marta", Rating: 5},
			{ID: 6, ProductID: 2, SellerID: 2, Buyer: "Pedro", Rating: 3},
		},
	}
}

func testStore() *catalog.Store {
	return catalog.NewStore(testTables())
}

// MockReader is a mock implementation of catalog.Reader.
type MockReader struct {
	mock.Mock
}

func (m *MockReader) Products() ([]model.Product, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Product), args.Error(1)
}

func (m *MockReader) Categories() ([]model.Category, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Category), args.Error(1)
}

func (m *MockReader) Sellers() ([]model.Seller, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Seller), args.Error(1)
}

func (m *MockReader) PaymentMethods() ([]model.PaymentMethod, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.PaymentMethod), args.Error(1)
}

func (m *MockReader) Reviews() ([]model.Review, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Review), args.Error(1)
}

func (m *MockReader) Product(id int) (model.Product, error) {
	args := m.Called(id)
	return args.Get(0).(model.Product), args.Error(1)
}

func (m *MockReader) Category(id int) (model.Category, error) {
	args := m.Called(id)
	return args.Get(0).(model.Category), args.Error(1)
}

func (m *MockReader) Seller(id int) (model.Seller, error) {
	args := m.Called(id)
	return args.Get(0).(model.Seller), args.Error(1)
}

func (m *MockReader) PaymentMethod(id int) (model.PaymentMethod, error) {
	args := m.Called(id)
	return args.Get(0).(model.PaymentMethod), args.Error(1)
}

func (m *MockReader) Review(id int) (model.Review, error) {
	args := m.Called(id)
	return args.Get(0).(model.Review), args.Error(1)
}

var _ catalog.Reader = (*MockReader)(nil)
