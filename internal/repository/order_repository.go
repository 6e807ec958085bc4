package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"pet-boutique/internal/models"
	"pet-boutique/internal/store"
)

type orderRepository struct {
	store   store.Store
	nowFunc func() time.Time
}

func NewOrderRepository(s store.Store) OrderRepository {
	return &orderRepository{store: s, nowFunc: time.Now}
}

// Create persists the order as a single document. Orders are immutable
// after this write.
func (r *orderRepository) Create(ctx context.Context, order *models.Order) (string, error) {
	order.ID = primitive.NewObjectID()
	order.CreatedAt = r.nowFunc()

	return r.store.InsertOne(ctx, OrdersCollection, order)
}
