package services

import (
	"context"

	"pet-boutique/internal/models"
	"pet-boutique/internal/repository"
	"pet-boutique/internal/store"
)

const (
	listLimit        = 100
	reviewLimit      = 20
	recommendedLimit = 6
)

// ListFilters are the optional catalog filters. Nil/empty fields are
// omitted from the query; price bounds and the rating floor are
// inclusive.
type ListFilters struct {
	Category   string
	MinPrice   *float64
	MaxPrice   *float64
	Rating     *float64
	Popularity string // "asc" or "desc"; anything else is ignored
}

// ProductDetail is the aggregate returned for a single product page.
type ProductDetail struct {
	Product     models.Product   `json:"product"`
	Reviews     []models.Review  `json:"reviews"`
	Recommended []models.Product `json:"recommended"`
}

// CatalogService serves product listing, detail aggregation and the
// one-time catalog seed.
type CatalogService struct {
	products repository.ProductRepository
	reviews  repository.ReviewRepository
}

func NewCatalogService(products repository.ProductRepository, reviews repository.ReviewRepository) *CatalogService {
	return &CatalogService{products: products, reviews: reviews}
}

// buildQuery translates the filters into a store query. Every supplied
// predicate is ANDed; the result set is always capped at listLimit.
func buildQuery(f ListFilters) store.Query {
	filter := store.Filter{}
	if f.Category != "" {
		filter = filter.Eq("category", f.Category)
	}
	if f.MinPrice != nil {
		filter = filter.Gte("price", *f.MinPrice)
	}
	if f.MaxPrice != nil {
		filter = filter.Lte("price", *f.MaxPrice)
	}
	if f.Rating != nil {
		filter = filter.Gte("rating", *f.Rating)
	}

	query := store.Query{Filter: filter, Limit: listLimit}
	switch f.Popularity {
	case "asc":
		query.SortField = "popularity"
		query.SortOrder = store.SortAsc
	case "desc":
		query.SortField = "popularity"
		query.SortOrder = store.SortDesc
	}
	return query
}

// List returns the products matching the supplied filters, at most 100.
func (s *CatalogService) List(ctx context.Context, filters ListFilters) ([]models.Product, error) {
	return s.products.Find(ctx, buildQuery(filters))
}

// Detail returns the product together with up to 20 of its reviews and
// up to 6 other products from the same category.
func (s *CatalogService) Detail(ctx context.Context, productID string) (*ProductDetail, error) {
	product, err := s.products.FindByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}

	reviews, err := s.reviews.FindByProduct(ctx, productID, reviewLimit)
	if err != nil {
		return nil, err
	}

	// Same-category picks, excluding the product being viewed.
	recQuery := store.Query{
		Filter: store.Filter{}.Eq("category", product.Category).Ne("_id", product.ID),
		Limit:  recommendedLimit,
	}
	recommended, err := s.products.Find(ctx, recQuery)
	if err != nil {
		return nil, err
	}

	return &ProductDetail{
		Product:     *product,
		Reviews:     reviews,
		Recommended: recommended,
	}, nil
}

// Seed inserts the fixed catalog unless any product already exists.
// Returns true when products were inserted.
func (s *CatalogService) Seed(ctx context.Context) (bool, error) {
	count, err := s.products.Count(ctx)
	if err != nil {
		return false, err
	}
	if count > 0 {
		return false, nil
	}

	for _, p := range seedProducts() {
		if _, err := s.products.Create(ctx, &p); err != nil {
			return false, err
		}
	}
	return true, nil
}
