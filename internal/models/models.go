package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Product is a catalog entry. Price is in whole currency units and is
// never negative.
type Product struct {
	ID         primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Title      string             `json:"title" bson:"title"`
	Price      float64            `json:"price" bson:"price"`
	Category   string             `json:"category" bson:"category"`
	Rating     float64            `json:"rating" bson:"rating"`
	Popularity int                `json:"popularity" bson:"popularity"`
	Image      string             `json:"image" bson:"image"`
	Features   []string           `json:"features" bson:"features"`
	CreatedAt  time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt  time.Time          `json:"updated_at" bson:"updated_at"`
}

// Review references a product by id. The reference is not checked
// against the products collection.
type Review struct {
	ID        primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	ProductID string             `json:"product_id" bson:"product_id"`
	Name      string             `json:"name" bson:"name"`
	Rating    int                `json:"rating" bson:"rating"`
	Comment   string             `json:"comment" bson:"comment"`
	CreatedAt time.Time          `json:"created_at" bson:"created_at"`
}

// CartItem is one checkout line item.
type CartItem struct {
	ProductID string `json:"product_id" bson:"product_id"`
	Quantity  int    `json:"quantity" bson:"quantity"`
}

// PaymentMethod is stored exactly as submitted; it is never validated
// or charged.
type PaymentMethod struct {
	Type     string `json:"type" bson:"type"` // card, upi, netbanking, wallet, cod
	Provider string `json:"provider,omitempty" bson:"provider,omitempty"`
	Last4    string `json:"last4,omitempty" bson:"last4,omitempty"`
	UPIID    string `json:"upi_id,omitempty" bson:"upi_id,omitempty"`
}

type Customer struct {
	Name  string `json:"name" bson:"name"`
	Email string `json:"email" bson:"email"`
	Phone string `json:"phone,omitempty" bson:"phone,omitempty"`
}

// Order statuses.
const StatusConfirmed = "confirmed"

// Order is written once at checkout and never mutated.
// Invariant: Total = max(Subtotal-Discount, 0).
type Order struct {
	ID        primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Items     []CartItem         `json:"items" bson:"items"`
	Subtotal  float64            `json:"subtotal" bson:"subtotal"`
	Discount  float64            `json:"discount" bson:"discount"`
	Total     float64            `json:"total" bson:"total"`
	Payment   PaymentMethod      `json:"payment" bson:"payment"`
	Customer  Customer           `json:"customer" bson:"customer"`
	Status    string             `json:"status" bson:"status"`
	CreatedAt time.Time          `json:"created_at" bson:"created_at"`
}
