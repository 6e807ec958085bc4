package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	validatorv10 "github.com/go-playground/validator/v10"

	"pet-boutique/internal/cache"
	"pet-boutique/internal/services"
	"pet-boutique/internal/validation"
)

const (
	listCachePrefix = "products:list:"
	detailCacheKey  = "product:%s"
	listCacheTTL    = 2 * time.Minute
	detailCacheTTL  = 5 * time.Minute
)

// CatalogHandler serves listing, detail and the one-time seed.
type CatalogHandler struct {
	catalog  *services.CatalogService
	cache    *cache.Cache
	validate *validatorv10.Validate
}

func NewCatalogHandler(catalog *services.CatalogService, cache *cache.Cache, v *validatorv10.Validate) *CatalogHandler {
	return &CatalogHandler{catalog: catalog, cache: cache, validate: v}
}

// POST /seed
func (h *CatalogHandler) Seed(c *gin.Context) {
	seeded, err := h.catalog.Seed(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to seed products"})
		return
	}
	if !seeded {
		c.JSON(http.StatusOK, gin.H{"message": "Already seeded"})
		return
	}

	h.cache.DeleteByPrefix(listCachePrefix)
	c.JSON(http.StatusOK, gin.H{"message": "Seeded 12 products"})
}

// POST /products
func (h *CatalogHandler) ListProducts(c *gin.Context) {
	var req validation.ListProductsRequest
	if err := validation.BindAndValidate(c, &req, h.validate); err != nil {
		return
	}

	key := listCacheKey(req)
	if cached, found := h.cache.GetValue(key); found {
		c.JSON(http.StatusOK, cached)
		return
	}

	products, err := h.catalog.List(c.Request.Context(), services.ListFilters{
		Category:   req.Category,
		MinPrice:   req.MinPrice,
		MaxPrice:   req.MaxPrice,
		Rating:     req.Rating,
		Popularity: req.Popularity,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list products"})
		return
	}

	h.cache.Set(key, products, listCacheTTL)
	c.JSON(http.StatusOK, products)
}

// GET /products/:id
func (h *CatalogHandler) GetProductDetail(c *gin.Context) {
	productID := c.Param("id")
	key := fmt.Sprintf(detailCacheKey, productID)

	if cached, found := h.cache.GetValue(key); found {
		c.JSON(http.StatusOK, cached)
		return
	}

	detail, err := h.catalog.Detail(c.Request.Context(), productID)
	if err != nil {
		if errors.Is(err, services.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch product"})
		return
	}

	h.cache.Set(key, detail, detailCacheTTL)
	c.JSON(http.StatusOK, detail)
}

func listCacheKey(req validation.ListProductsRequest) string {
	return fmt.Sprintf("%scat:%s_min:%s_max:%s_rating:%s_pop:%s",
		listCachePrefix, req.Category,
		f64(req.MinPrice), f64(req.MaxPrice), f64(req.Rating),
		req.Popularity)
}

func f64(p *float64) string {
	if p == nil {
		return "-"
	}
	return fmt.Sprintf("%g", *p)
}
