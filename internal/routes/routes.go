package routes

import (
	"time"

	"github.com/gin-gonic/gin"

	"pet-boutique/internal/cache"
	"pet-boutique/internal/handlers"
	"pet-boutique/internal/repository"
	"pet-boutique/internal/services"
	"pet-boutique/internal/store"
	"pet-boutique/internal/validation"
)

const cacheTTL = 5 * time.Minute

// RegisterRoutes wires repositories, services and handlers onto the
// router.
func RegisterRoutes(router *gin.Engine, s store.Store) {
	v := validation.New()
	readCache := cache.New(cacheTTL)

	products := repository.NewProductRepository(s)
	reviews := repository.NewReviewRepository(s)
	orders := repository.NewOrderRepository(s)

	catalog := services.NewCatalogService(products, reviews)
	checkout := services.NewCheckoutService(products, orders)
	reviewSvc := services.NewReviewService(reviews)

	health := handlers.NewHealthHandler(s)
	catalogHandler := handlers.NewCatalogHandler(catalog, readCache, v)
	reviewHandler := handlers.NewReviewHandler(reviewSvc, readCache, v)
	checkoutHandler := handlers.NewCheckoutHandler(checkout, v)

	router.GET("/test", health.Status)
	router.POST("/seed", catalogHandler.Seed)
	router.POST("/products", catalogHandler.ListProducts)
	router.GET("/products/:id", catalogHandler.GetProductDetail)
	router.POST("/reviews", reviewHandler.AddReview)
	router.POST("/checkout", checkoutHandler.Checkout)
}
