package services

import (
	"errors"
	"fmt"
)

// ErrProductNotFound is returned when a requested product id does not
// exist in the catalog.
var ErrProductNotFound = errors.New("product not found")

// InvalidProductError reports a checkout line item referencing a
// product that does not exist. It names the offending id so the caller
// can surface it.
type InvalidProductError struct {
	ProductID string
}

func (e *InvalidProductError) Error() string {
	return fmt.Sprintf("invalid product %s", e.ProductID)
}
