package validation

import "pet-boutique/internal/models"

// ListProductsRequest carries the optional catalog filters. Absent
// fields are simply left out of the resulting query; popularity is a
// sort direction ("asc"/"desc", other values ignored).
type ListProductsRequest struct {
	Category   string   `json:"category"`
	MinPrice   *float64 `json:"min_price" validate:"omitempty,gte=0"`
	MaxPrice   *float64 `json:"max_price" validate:"omitempty,gte=0"`
	Popularity string   `json:"popularity"`
	Rating     *float64 `json:"rating" validate:"omitempty,gte=0,lte=5"`
}

// AddReviewRequest is the payload for POST /reviews.
type AddReviewRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Name      string `json:"name" validate:"required"`
	Rating    int    `json:"rating" validate:"required,min=1,max=5"`
	Comment   string `json:"comment" validate:"required"`
}

// CheckoutItemRequest is one line item; quantity defaults to 1 when
// omitted.
type CheckoutItemRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Quantity  int    `json:"quantity" validate:"omitempty,min=1"`
}

// CheckoutRequest is the payload for POST /checkout. Payment and
// customer descriptors are stored on the order verbatim.
type CheckoutRequest struct {
	Items        []CheckoutItemRequest `json:"items" validate:"required,min=1,dive"`
	DiscountCode string                `json:"discount_code"`
	Payment      models.PaymentMethod  `json:"payment"`
	Customer     models.Customer       `json:"customer"`
}
