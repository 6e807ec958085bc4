package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	validatorv10 "github.com/go-playground/validator/v10"

	"pet-boutique/internal/cache"
	"pet-boutique/internal/services"
	"pet-boutique/internal/validation"
)

type ReviewHandler struct {
	reviews  *services.ReviewService
	cache    *cache.Cache
	validate *validatorv10.Validate
}

func NewReviewHandler(reviews *services.ReviewService, cache *cache.Cache, v *validatorv10.Validate) *ReviewHandler {
	return &ReviewHandler{reviews: reviews, cache: cache, validate: v}
}

// POST /reviews
func (h *ReviewHandler) AddReview(c *gin.Context) {
	var req validation.AddReviewRequest
	if err := validation.BindAndValidate(c, &req, h.validate); err != nil {
		return
	}

	if _, err := h.reviews.Add(c.Request.Context(), req.ProductID, req.Name, req.Rating, req.Comment); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to add review"})
		return
	}

	// New review changes the product's detail aggregate.
	h.cache.Delete(fmt.Sprintf(detailCacheKey, req.ProductID))

	c.JSON(http.StatusCreated, gin.H{"message": "Review added"})
}
