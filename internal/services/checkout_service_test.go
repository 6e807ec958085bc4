package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"pet-boutique/internal/mocks"
	"pet-boutique/internal/models"
)

func newTestProduct(price float64) *models.Product {
	return &models.Product{
		ID:       primitive.NewObjectID(),
		Title:    "Premium Dog Harness",
		Price:    price,
		Category: "Dogs",
	}
}

func TestCheckout_TotalsAndDiscounts(t *testing.T) {
	p1 := newTestProduct(999)

	tests := []struct {
		name             string
		items            []CheckoutItem
		discountCode     string
		expectedSubtotal float64
		expectedDiscount float64
		expectedTotal    float64
	}{
		{
			name:             "two units with WELCOME10",
			items:            []CheckoutItem{{ProductID: p1.ID.Hex(), Quantity: 2}},
			discountCode:     "WELCOME10",
			expectedSubtotal: 1998,
			expectedDiscount: 199.8,
			expectedTotal:    1798.2,
		},
		{
			name:             "unknown code is silently ignored",
			items:            []CheckoutItem{{ProductID: p1.ID.Hex(), Quantity: 1}},
			discountCode:     "BOGUS",
			expectedSubtotal: 999,
			expectedDiscount: 0,
			expectedTotal:    999,
		},
		{
			name:             "codes are case-insensitive",
			items:            []CheckoutItem{{ProductID: p1.ID.Hex(), Quantity: 1}},
			discountCode:     "petlove10",
			expectedSubtotal: 999,
			expectedDiscount: 99.9,
			expectedTotal:    899.1,
		},
		{
			name:             "no code means no discount",
			items:            []CheckoutItem{{ProductID: p1.ID.Hex(), Quantity: 1}},
			expectedSubtotal: 999,
			expectedDiscount: 0,
			expectedTotal:    999,
		},
		{
			name:             "omitted quantity defaults to one",
			items:            []CheckoutItem{{ProductID: p1.ID.Hex()}},
			expectedSubtotal: 999,
			expectedDiscount: 0,
			expectedTotal:    999,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockProducts := new(mocks.MockProductRepository)
			mockOrders := new(mocks.MockOrderRepository)

			mockProducts.On("FindByID", mock.Anything, p1.ID.Hex()).Return(p1, nil)
			mockOrders.On("Create", mock.Anything, mock.AnythingOfType("*models.Order")).
				Return(primitive.NewObjectID().Hex(), nil).
				Run(func(args mock.Arguments) {
					order := args.Get(1).(*models.Order)
					order.ID = primitive.NewObjectID()
				})

			service := NewCheckoutService(mockProducts, mockOrders)
			order, err := service.Checkout(context.Background(), CheckoutInput{
				Items:        tt.items,
				DiscountCode: tt.discountCode,
			})

			assert.NoError(t, err)
			assert.NotNil(t, order)
			assert.InDelta(t, tt.expectedSubtotal, order.Subtotal, 1e-9)
			assert.InDelta(t, tt.expectedDiscount, order.Discount, 1e-9)
			assert.InDelta(t, tt.expectedTotal, order.Total, 1e-9)
			assert.InDelta(t, order.Subtotal-order.Discount, order.Total, 1e-9)
			assert.Equal(t, models.StatusConfirmed, order.Status)
			assert.False(t, order.ID.IsZero())

			mockProducts.AssertExpectations(t)
			mockOrders.AssertExpectations(t)
		})
	}
}

func TestCheckout_MultipleItems(t *testing.T) {
	p1 := newTestProduct(999)
	p2 := newTestProduct(349)

	mockProducts := new(mocks.MockProductRepository)
	mockOrders := new(mocks.MockOrderRepository)

	mockProducts.On("FindByID", mock.Anything, p1.ID.Hex()).Return(p1, nil)
	mockProducts.On("FindByID", mock.Anything, p2.ID.Hex()).Return(p2, nil)
	mockOrders.On("Create", mock.Anything, mock.AnythingOfType("*models.Order")).
		Return(primitive.NewObjectID().Hex(), nil)

	service := NewCheckoutService(mockProducts, mockOrders)
	order, err := service.Checkout(context.Background(), CheckoutInput{
		Items: []CheckoutItem{
			{ProductID: p1.ID.Hex(), Quantity: 2},
			{ProductID: p2.ID.Hex(), Quantity: 3},
		},
	})

	assert.NoError(t, err)
	assert.InDelta(t, 2*999+3*349.0, order.Subtotal, 1e-9)
	assert.Equal(t, []models.CartItem{
		{ProductID: p1.ID.Hex(), Quantity: 2},
		{ProductID: p2.ID.Hex(), Quantity: 3},
	}, order.Items)

	mockProducts.AssertExpectations(t)
	mockOrders.AssertExpectations(t)
}

func TestCheckout_InvalidProductNoOrderPersisted(t *testing.T) {
	mockProducts := new(mocks.MockProductRepository)
	mockOrders := new(mocks.MockOrderRepository)

	mockProducts.On("FindByID", mock.Anything, "missing").Return(nil, nil)

	service := NewCheckoutService(mockProducts, mockOrders)
	order, err := service.Checkout(context.Background(), CheckoutInput{
		Items: []CheckoutItem{{ProductID: "missing"}},
	})

	assert.Nil(t, order)
	var invalid *InvalidProductError
	assert.ErrorAs(t, err, &invalid)
	assert.Equal(t, "missing", invalid.ProductID)
	assert.Equal(t, "invalid product missing", err.Error())

	mockOrders.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCheckout_FirstInvalidItemSurfaces(t *testing.T) {
	p1 := newTestProduct(999)

	mockProducts := new(mocks.MockProductRepository)
	mockOrders := new(mocks.MockOrderRepository)

	// The first lookup fails; the second item must never be resolved
	// and no order written.
	mockProducts.On("FindByID", mock.Anything, "gone").Return(nil, nil).Once()

	service := NewCheckoutService(mockProducts, mockOrders)
	_, err := service.Checkout(context.Background(), CheckoutInput{
		Items: []CheckoutItem{
			{ProductID: "gone"},
			{ProductID: p1.ID.Hex()},
		},
	})

	var invalid *InvalidProductError
	assert.ErrorAs(t, err, &invalid)
	assert.Equal(t, "gone", invalid.ProductID)

	mockProducts.AssertNumberOfCalls(t, "FindByID", 1)
	mockOrders.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCheckout_StoreErrorPropagates(t *testing.T) {
	p1 := newTestProduct(999)

	mockProducts := new(mocks.MockProductRepository)
	mockOrders := new(mocks.MockOrderRepository)

	mockProducts.On("FindByID", mock.Anything, p1.ID.Hex()).Return(p1, nil)
	mockOrders.On("Create", mock.Anything, mock.AnythingOfType("*models.Order")).
		Return("", errors.New("write failed"))

	service := NewCheckoutService(mockProducts, mockOrders)
	order, err := service.Checkout(context.Background(), CheckoutInput{
		Items: []CheckoutItem{{ProductID: p1.ID.Hex()}},
	})

	assert.Nil(t, order)
	assert.EqualError(t, err, "write failed")
}

func TestCheckout_PaymentAndCustomerStoredVerbatim(t *testing.T) {
	p1 := newTestProduct(499)

	mockProducts := new(mocks.MockProductRepository)
	mockOrders := new(mocks.MockOrderRepository)

	mockProducts.On("FindByID", mock.Anything, p1.ID.Hex()).Return(p1, nil)
	mockOrders.On("Create", mock.Anything, mock.AnythingOfType("*models.Order")).
		Return(primitive.NewObjectID().Hex(), nil)

	payment := models.PaymentMethod{Type: "upi", UPIID: "pets@upi"}
	customer := models.Customer{Name: "Asha", Email: "asha@example.com", Phone: "555-0101"}

	service := NewCheckoutService(mockProducts, mockOrders)
	order, err := service.Checkout(context.Background(), CheckoutInput{
		Items:    []CheckoutItem{{ProductID: p1.ID.Hex()}},
		Payment:  payment,
		Customer: customer,
	})

	assert.NoError(t, err)
	assert.Equal(t, payment, order.Payment)
	assert.Equal(t, customer, order.Customer)
}
