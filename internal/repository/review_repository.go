package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"pet-boutique/internal/models"
	"pet-boutique/internal/store"
)

type reviewRepository struct {
	store   store.Store
	nowFunc func() time.Time
}

func NewReviewRepository(s store.Store) ReviewRepository {
	return &reviewRepository{store: s, nowFunc: time.Now}
}

func (r *reviewRepository) Create(ctx context.Context, review *models.Review) (string, error) {
	review.ID = primitive.NewObjectID()
	review.CreatedAt = r.nowFunc()

	return r.store.InsertOne(ctx, ReviewsCollection, review)
}

func (r *reviewRepository) FindByProduct(ctx context.Context, productID string, limit int64) ([]models.Review, error) {
	reviews := make([]models.Review, 0)
	query := store.Query{
		Filter: store.Filter{}.Eq("product_id", productID),
		Limit:  limit,
	}
	if err := r.store.Find(ctx, ReviewsCollection, query, &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}
