package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	validatorv10 "github.com/go-playground/validator/v10"

	"pet-boutique/internal/services"
	"pet-boutique/internal/validation"
)

type CheckoutHandler struct {
	checkout *services.CheckoutService
	validate *validatorv10.Validate
}

func NewCheckoutHandler(checkout *services.CheckoutService, v *validatorv10.Validate) *CheckoutHandler {
	return &CheckoutHandler{checkout: checkout, validate: v}
}

// POST /checkout
func (h *CheckoutHandler) Checkout(c *gin.Context) {
	var req validation.CheckoutRequest
	if err := validation.BindAndValidate(c, &req, h.validate); err != nil {
		return
	}

	input := services.CheckoutInput{
		DiscountCode: req.DiscountCode,
		Payment:      req.Payment,
		Customer:     req.Customer,
	}
	for _, item := range req.Items {
		input.Items = append(input.Items, services.CheckoutItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		})
	}

	order, err := h.checkout.Checkout(c.Request.Context(), input)
	if err != nil {
		var invalid *services.InvalidProductError
		if errors.As(err, &invalid) {
			c.JSON(http.StatusBadRequest, gin.H{"error": invalid.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to process checkout"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":  "Order confirmed",
		"order_id": order.ID.Hex(),
		"total":    order.Total,
	})
}
