package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

var fixtureDocuments = map[Table]string{
	TableProducts: `[
		{"id": 1, "title": "Apple iPhone 14 Pro Max", "description": "Smartphone", "price": 1399.99,
		 "images": ["https://example.com/iphone.jpg"], "seller_id": 1, "payment_methods_ids": [1, 2, 3],
		 "stock": 12, "category_ids": [1, 3, 4, 6], "features": {"color": ["Black", "Silver"]}},
		{"id": 2, "title": "Samsung Galaxy S23 Ultra", "description": "Smartphone", "price": 1299.0,
		 "images": [], "seller_id": 2, "payment_methods_ids": [1, 2, 4], "stock": 7, "category_ids": [1, 2, 4, 6, 7]},
		{"id": 3, "title": "Xiaomi Redmi Note 12 Pro", "description": "Smartphone", "price": 399.99,
		 "seller_id": 3, "payment_method_ids": [2, 1], "stock": 3}
	]`,
	TableCategories: `[
		{"id": 1, "name": "Smartphones"},
		{"id": 3, "name": "iOS", "description": "Apple devices"},
		{"id": 4, "name": "Gama Alta"}
	]`,
	TableSellers: `{"id": 1, "name": "Apple Store", "location": "CDMX", "email": "contacto@apple.com", "phone": "555-1234"}`,
	TablePaymentMethods: `[
		{"id": 1, "name": "Credit Card", "description": "Credit card"},
		{"id": 2, "name": "Debit Card", "description": "Debit card"}
	]`,
	TableReviews: `[
		{"id": 1, "product_id": 1, "seller_id": 1, "buyer": "Ana", "review": "Great", "rating": 5, "date": "2024-01-10"},
		{"id": 2, "product_id": 1, "seller_id": 1, "buyer": "Luis", "rating": 3}
	]`,
}

func fixtureRaw() map[Table][]byte {
	raw := make(map[Table][]byte, len(fixtureDocuments))
	for table, doc := range fixtureDocuments {
		raw[table] = []byte(doc)
	}
	return raw
}

// writeFixtureDir writes the fixture documents into a temp directory.
func writeFixtureDir(t *testing.T, docs map[Table]string) string {
	t.Helper()

	dir := t.TempDir()
	for table, doc := range docs {
		err := os.WriteFile(filepath.Join(dir, table.FileName()), []byte(doc), 0o644)
		require.NoError(t, err)
	}
	return dir
}
