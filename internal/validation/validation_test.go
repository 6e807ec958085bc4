package validation

import (
	"testing"

	"pet-boutique/internal/models"
)

func f64ptr(v float64) *float64 { return &v }

func TestListProductsRequest_Valid(t *testing.T) {
	v := New()

	req := ListProductsRequest{
		Category: "Dogs",
		MinPrice: f64ptr(100),
		MaxPrice: f64ptr(900),
		Rating:   f64ptr(4),
	}

	if err := v.Struct(req); err != nil {
		t.Fatalf("expected valid, got error: %v", err)
	}
}

func TestListProductsRequest_EmptyIsValid(t *testing.T) {
	v := New()

	if err := v.Struct(ListProductsRequest{}); err != nil {
		t.Fatalf("expected empty filter to be valid, got error: %v", err)
	}
}

func TestListProductsRequest_InvertedPriceRange(t *testing.T) {
	v := New()

	req := ListProductsRequest{
		MinPrice: f64ptr(900),
		MaxPrice: f64ptr(100),
	}

	if err := v.Struct(req); err == nil {
		t.Fatal("expected validation error for min_price > max_price, got nil")
	}
}

func TestAddReviewRequest(t *testing.T) {
	v := New()

	valid := AddReviewRequest{
		ProductID: "p-1",
		Name:      "Maya",
		Rating:    5,
		Comment:   "Great product",
	}
	if err := v.Struct(valid); err != nil {
		t.Fatalf("expected valid review, got error: %v", err)
	}

	missing := AddReviewRequest{Rating: 3}
	if err := v.Struct(missing); err == nil {
		t.Fatal("expected validation errors for missing fields, got nil")
	}

	outOfRange := valid
	outOfRange.Rating = 9
	if err := v.Struct(outOfRange); err == nil {
		t.Fatal("expected validation error for rating out of range, got nil")
	}
}

func TestCheckoutRequest(t *testing.T) {
	v := New()

	valid := CheckoutRequest{
		Items:        []CheckoutItemRequest{{ProductID: "p-1", Quantity: 2}},
		DiscountCode: "WELCOME10",
		Payment:      models.PaymentMethod{Type: "cod"},
		Customer:     models.Customer{Name: "Asha", Email: "asha@example.com"},
	}
	if err := v.Struct(valid); err != nil {
		t.Fatalf("expected valid checkout, got error: %v", err)
	}

	// quantity may be omitted; it defaults downstream
	noQty := CheckoutRequest{Items: []CheckoutItemRequest{{ProductID: "p-1"}}}
	if err := v.Struct(noQty); err != nil {
		t.Fatalf("expected omitted quantity to be valid, got error: %v", err)
	}

	empty := CheckoutRequest{}
	if err := v.Struct(empty); err == nil {
		t.Fatal("expected validation error for empty items, got nil")
	}

	negative := CheckoutRequest{Items: []CheckoutItemRequest{{ProductID: "p-1", Quantity: -2}}}
	if err := v.Struct(negative); err == nil {
		t.Fatal("expected validation error for negative quantity, got nil")
	}
}
