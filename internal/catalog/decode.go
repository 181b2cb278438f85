package catalog

import (
	"bytes"
	"fmt"

	"github.com/bynara/MeliProductDetail/internal/model"

	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// DecodeTables decodes and validates the raw JSON document of every table.
// A document may hold an array of rows or a single row. A missing document
// yields an empty table.
func DecodeTables(raw map[Table][]byte) (*Tables, error) {
	t := &Tables{}
	var err error

	if t.Products, err = decodeTable[model.Product](TableProducts, raw[TableProducts]); err != nil {
		return nil, err
	}
	if t.Categories, err = decodeTable[model.Category](TableCategories, raw[TableCategories]); err != nil {
		return nil, err
	}
	if t.Sellers, err = decodeTable[model.Seller](TableSellers, raw[TableSellers]); err != nil {
		return nil, err
	}
	if t.PaymentMethods, err = decodeTable[model.PaymentMethod](TablePaymentMethods, raw[TablePaymentMethods]); err != nil {
		return nil, err
	}
	if t.Reviews, err = decodeTable[model.Review](TableReviews, raw[TableReviews]); err != nil {
		return nil, err
	}

	return t, nil
}

func decodeTable[T Record](name Table, data []byte) ([]T, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return []T{}, nil
	}

	var rows []T
	if data[0] == '[' {
		if err := json.Unmarshal(data, &rows); err != nil {
			return nil, fmt.Errorf("error decoding JSON in %s: %w", name.FileName(), err)
		}
	} else {
		var row T
		if err := json.Unmarshal(data, &row); err != nil {
			return nil, fmt.Errorf("error decoding JSON in %s: %w", name.FileName(), err)
		}
		rows = []T{row}
	}

	seen := make(map[int]struct{}, len(rows))
	for i, row := range rows {
		if err := validate.Struct(row); err != nil {
			return nil, fmt.Errorf("invalid row %d in %s: %w", i, name.FileName(), err)
		}
		id := row.RecordID()
		if _, dup := seen[id]; dup {
			return nil, fmt.Errorf("duplicate id %d in %s", id, name.FileName())
		}
		seen[id] = struct{}{}
	}

	if rows == nil {
		rows = []T{}
	}
	return rows, nil
}
