package services

import (
	"context"

	"pet-boutique/internal/models"
	"pet-boutique/internal/repository"
)

// ReviewService records product reviews. The referenced product id is
// deliberately not checked against the catalog; reviews are accepted
// as-is and only storage faults can fail.
type ReviewService struct {
	reviews repository.ReviewRepository
}

func NewReviewService(reviews repository.ReviewRepository) *ReviewService {
	return &ReviewService{reviews: reviews}
}

func (s *ReviewService) Add(ctx context.Context, productID, name string, rating int, comment string) (*models.Review, error) {
	review := &models.Review{
		ProductID: productID,
		Name:      name,
		Rating:    rating,
		Comment:   comment,
	}
	if _, err := s.reviews.Create(ctx, review); err != nil {
		return nil, err
	}
	return review, nil
}
