package controllers

import (
	"errors"
	"fmt"

	"ice-cream-shop/models"
	"ice-cream-shop/services"

	"github.com/gin-gonic/gin"
)

type CheckoutController struct {
	checkout *services.CheckoutService
}

func NewCheckoutController(checkout *services.CheckoutService) *CheckoutController {
	return &CheckoutController{checkout: checkout}
}

// @Summary Order summary
// @Description Subtotal, tax and final total for the current cart
// @Tags Checkout
// @Produce json
// @Param order_type query string false "pickup or delivery" Enums(pickup, delivery)
// @Success 200 {object} models.Response{data=models.OrderSummary}
// @Failure 400 {object} models.ErrorResponse
// @Router /checkout/summary [get]
func (ctrl *CheckoutController) GetSummary(c *gin.Context) {
	summary, err := ctrl.checkout.Summary(c.Query("order_type"))
	if err != nil {
		respondError(c, 400, "Invalid order type", err, nil)
		return
	}
	respondOK(c, "Order summary calculated", summary, nil)
}

// @Summary Place order
// @Description Mock checkout: confirms the order and clears the cart shortly after. No order is stored
// @Tags Checkout
// @Accept json
// @Produce json
// @Param request body models.CheckoutRequest true "Customer details"
// @Success 200 {object} models.Response{data=models.OrderConfirmation}
// @Failure 400 {object} models.ErrorResponse
// @Router /checkout [post]
func (ctrl *CheckoutController) PlaceOrder(c *gin.Context) {
	var req models.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, 400, "Invalid request", err, nil)
		return
	}

	confirmation, err := ctrl.checkout.PlaceOrder(req)
	switch {
	case errors.Is(err, services.ErrEmptyCart):
		respondError(c, 400, "Cart is empty", err, warn(
			"Cart is Empty",
			"Add some items to your cart before checking out.",
		))
		return
	case errors.Is(err, services.ErrMissingContact):
		respondError(c, 400, "Missing information", err, warn(
			"Missing Information",
			"Please fill in your name and phone number.",
		))
		return
	case err != nil:
		respondError(c, 400, "Failed to place order", err, nil)
		return
	}

	respondOK(c, "Order placed", confirmation, notify(
		"Order Placed Successfully! 🎉",
		fmt.Sprintf("Your order for $%s has been placed. We'll call you at %s when it's ready!",
			confirmation.Total.StringFixed(services.CentPlaces), confirmation.Phone),
	))
}
