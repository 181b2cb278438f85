package model

// Review is a buyer's rating of a product sold by a seller.
type Review struct {
	ID        int     `json:"id" validate:"gt=0"`
	ProductID int     `json:"product_id" validate:"gt=0"`
	SellerID  int     `json:"seller_id" validate:"gt=0"`
	Buyer     string  `json:"buyer"`
	Review    *string `json:"review"`
	Rating    int     `json:"rating" validate:"min=1,max=5"`
	Date      *string `json:"date" validate:"omitempty,datetime=2006-01-02"`
}

// RecordID returns the review id.
func (r Review) RecordID() int { return r.ID }
