package model

// Seller owns products. RatingInfo is aggregated from reviews at read time.
type Seller struct {
	ID         int            `json:"id" validate:"gt=0"`
	Name       string         `json:"name" validate:"required"`
	Location   string         `json:"location"`
	Email      string         `json:"email" validate:"omitempty,email"`
	Phone      string         `json:"phone"`
	RatingInfo *RatingSummary `json:"rating_info,omitempty"`
}

// RecordID returns the seller id.
func (s Seller) RecordID() int { return s.ID }
