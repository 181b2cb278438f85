package model

import (
	"github.com/goccy/go-json"
)

// Product is a catalog item as stored in the data source. Categories,
// PaymentMethods and RatingInfo are attached at read time.
type Product struct {
	ID               int            `json:"id" validate:"gt=0"`
	Title            string         `json:"title" validate:"required"`
	Description      string         `json:"description"`
	Price            float64        `json:"price" validate:"gte=0"`
	Images           []string       `json:"images" validate:"dive,required"`
	SellerID         int            `json:"seller_id" validate:"gt=0"`
	PaymentMethodIDs []int          `json:"payment_methods_ids"`
	Stock            int            `json:"stock" validate:"gte=0"`
	CategoryIDs      []int          `json:"category_ids"`
	Features         map[string]any `json:"features"`

	Categories     []Category      `json:"categories"`
	PaymentMethods []PaymentMethod `json:"payment_methods"`
	RatingInfo     *RatingSummary  `json:"rating_info,omitempty"`
}

// RecordID returns the product id.
func (p Product) RecordID() int { return p.ID }

// UnmarshalJSON accepts both payment_methods_ids and payment_method_ids and
// replaces absent collections with empty ones.
func (p *Product) UnmarshalJSON(data []byte) error {
	type plain Product
	var aux struct {
		plain
		PaymentMethodIDsAlt []int `json:"payment_method_ids"`
	}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	*p = Product(aux.plain)

	if len(p.PaymentMethodIDs) == 0 && len(aux.PaymentMethodIDsAlt) > 0 {
		p.PaymentMethodIDs = aux.PaymentMethodIDsAlt
	}
	if p.PaymentMethodIDs == nil {
		p.PaymentMethodIDs = []int{}
	}
	if p.CategoryIDs == nil {
		p.CategoryIDs = []int{}
	}
	if p.Images == nil {
		p.Images = []string{}
	}
	if p.Features == nil {
		p.Features = map[string]any{}
	}
	return nil
}

// HasCategory reports whether the product is tagged with the category id.
func (p Product) HasCategory(id int) bool {
	for _, c := range p.CategoryIDs {
		if c == id {
			return true
		}
	}
	return false
}
