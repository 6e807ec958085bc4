package services

import (
	"context"
	"strings"

	"pet-boutique/internal/models"
	"pet-boutique/internal/repository"
)

// discountRates maps discount codes (uppercased) to their fractional
// reduction of the subtotal. Unknown codes are silently ignored.
var discountRates = map[string]float64{
	"WELCOME10": 0.10,
	"PETLOVE10": 0.10,
}

// CheckoutItem names a product and a quantity; a quantity below 1 is
// treated as 1.
type CheckoutItem struct {
	ProductID string
	Quantity  int
}

// CheckoutInput is the full checkout request. Payment and Customer are
// stored on the order exactly as given.
type CheckoutInput struct {
	Items        []CheckoutItem
	DiscountCode string
	Payment      models.PaymentMethod
	Customer     models.Customer
}

// CheckoutService computes order totals and records the order.
type CheckoutService struct {
	products repository.ProductRepository
	orders   repository.OrderRepository
}

func NewCheckoutService(products repository.ProductRepository, orders repository.OrderRepository) *CheckoutService {
	return &CheckoutService{products: products, orders: orders}
}

// Checkout resolves every line item against the catalog, computes
// subtotal, discount and total, and persists a confirmed order. If any
// item references an unknown product it fails with InvalidProductError
// before anything is written.
func (s *CheckoutService) Checkout(ctx context.Context, input CheckoutInput) (*models.Order, error) {
	var subtotal float64
	items := make([]models.CartItem, 0, len(input.Items))

	for _, item := range input.Items {
		product, err := s.products.FindByID(ctx, item.ProductID)
		if err != nil {
			return nil, err
		}
		if product == nil {
			return nil, &InvalidProductError{ProductID: item.ProductID}
		}

		qty := item.Quantity
		if qty < 1 {
			qty = 1
		}
		subtotal += product.Price * float64(qty)
		items = append(items, models.CartItem{ProductID: item.ProductID, Quantity: qty})
	}

	discount := 0.0
	if input.DiscountCode != "" {
		if rate, ok := discountRates[strings.ToUpper(input.DiscountCode)]; ok {
			discount = subtotal * rate
		}
	}

	// Floor at zero in case a future code exceeds the subtotal.
	total := subtotal - discount
	if total < 0 {
		total = 0
	}

	order := &models.Order{
		Items:    items,
		Subtotal: subtotal,
		Discount: discount,
		Total:    total,
		Payment:  input.Payment,
		Customer: input.Customer,
		Status:   models.StatusConfirmed,
	}
	if _, err := s.orders.Create(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}
