package repository

import (
	"context"

	"pet-boutique/internal/models"
	"pet-boutique/internal/store"
)

// Collection names.
const (
	ProductsCollection = "products"
	ReviewsCollection  = "reviews"
	OrdersCollection   = "orders"
)

// ProductRepository reads and seeds the product catalog. Lookups return
// (nil, nil) when the product does not exist; callers decide whether
// that is a NotFound or an invalid line item.
type ProductRepository interface {
	Create(ctx context.Context, product *models.Product) (string, error)
	FindByID(ctx context.Context, id string) (*models.Product, error)
	Find(ctx context.Context, query store.Query) ([]models.Product, error)
	Count(ctx context.Context) (int64, error)
}

type ReviewRepository interface {
	Create(ctx context.Context, review *models.Review) (string, error)
	FindByProduct(ctx context.Context, productID string, limit int64) ([]models.Review, error)
}

type OrderRepository interface {
	Create(ctx context.Context, order *models.Order) (string, error)
}
