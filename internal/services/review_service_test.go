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

func TestReviewAdd(t *testing.T) {
	mockReviews := new(mocks.MockReviewRepository)

	var stored *models.Review
	mockReviews.On("Create", mock.Anything, mock.AnythingOfType("*models.Review")).
		Return(primitive.NewObjectID().Hex(), nil).
		Run(func(args mock.Arguments) {
			stored = args.Get(1).(*models.Review)
		})

	service := NewReviewService(mockReviews)
	review, err := service.Add(context.Background(), "p-123", "Maya", 4, "Sturdy harness")

	assert.NoError(t, err)
	assert.Equal(t, stored, review)
	assert.Equal(t, "p-123", review.ProductID)
	assert.Equal(t, "Maya", review.Name)
	assert.Equal(t, 4, review.Rating)
	assert.Equal(t, "Sturdy harness", review.Comment)
	mockReviews.AssertExpectations(t)
}

// Reviews are accepted even when the product id matches nothing; only
// the store can fail the operation.
func TestReviewAdd_StoreError(t *testing.T) {
	mockReviews := new(mocks.MockReviewRepository)
	mockReviews.On("Create", mock.Anything, mock.AnythingOfType("*models.Review")).
		Return("", errors.New("insert failed"))

	service := NewReviewService(mockReviews)
	review, err := service.Add(context.Background(), "p-123", "Maya", 4, "Sturdy harness")

	assert.Nil(t, review)
	assert.EqualError(t, err, "insert failed")
}
