package validation

import (
	validatorv10 "github.com/go-playground/validator/v10"
)

// New returns a configured validator with struct-level validation
// registered for the request types that need it.
func New() *validatorv10.Validate {
	v := validatorv10.New()

	// min_price must not exceed max_price when both bounds are given.
	v.RegisterStructValidation(listProductsStructValidation, ListProductsRequest{})

	return v
}

func listProductsStructValidation(sl validatorv10.StructLevel) {
	req := sl.Current().Interface().(ListProductsRequest)

	if req.MinPrice != nil && req.MaxPrice != nil && *req.MinPrice > *req.MaxPrice {
		sl.ReportError(req.MinPrice, "min_price", "MinPrice", "price_range", "")
	}
}
