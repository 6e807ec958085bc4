package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"pet-boutique/internal/models"
	"pet-boutique/internal/store"
)

type productRepository struct {
	store   store.Store
	nowFunc func() time.Time
}

func NewProductRepository(s store.Store) ProductRepository {
	return &productRepository{store: s, nowFunc: time.Now}
}

func (r *productRepository) Create(ctx context.Context, product *models.Product) (string, error) {
	now := r.nowFunc()
	product.ID = primitive.NewObjectID()
	product.CreatedAt = now
	product.UpdatedAt = now

	return r.store.InsertOne(ctx, ProductsCollection, product)
}

// FindByID returns (nil, nil) when id is unknown. An id that is not a
// valid ObjectID hex cannot match any document, so it is treated the
// same as an unknown id rather than as a malformed request.
func (r *productRepository) FindByID(ctx context.Context, id string) (*models.Product, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}

	var product models.Product
	err = r.store.FindOne(ctx, ProductsCollection, store.Filter{}.Eq("_id", objID), &product)
	if errors.Is(err, store.ErrNoDocument) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *productRepository) Find(ctx context.Context, query store.Query) ([]models.Product, error) {
	products := make([]models.Product, 0)
	if err := r.store.Find(ctx, ProductsCollection, query, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (r *productRepository) Count(ctx context.Context) (int64, error) {
	return r.store.Count(ctx, ProductsCollection, store.Filter{})
}
