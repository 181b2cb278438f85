package model

// Category is reference data used to tag products.
type Category struct {
	ID          int     `json:"id" validate:"gt=0"`
	Name        string  `json:"name" validate:"required"`
	Description *string `json:"description"`
}

// RecordID returns the category id.
func (c Category) RecordID() int { return c.ID }

// PaymentMethod is reference data describing how a product can be paid.
type PaymentMethod struct {
	ID          int    `json:"id" validate:"gt=0"`
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
}

// RecordID returns the payment method id.
func (m PaymentMethod) RecordID() int { return m.ID }
