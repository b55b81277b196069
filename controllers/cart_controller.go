package controllers

import (
	"errors"
	"fmt"

	"ice-cream-shop/models"
	"ice-cream-shop/repositories"
	"ice-cream-shop/services"

	"github.com/gin-gonic/gin"
)

type CartController struct {
	cart *services.CartStore
	menu Menu
}

func NewCartController(cart *services.CartStore, menu Menu) *CartController {
	return &CartController{cart: cart, menu: menu}
}

// @Summary Get cart
// @Description Get cart lines, total and item count
// @Tags Cart
// @Produce json
// @Success 200 {object} models.Response{data=models.CartResponse}
// @Router /cart [get]
func (ctrl *CartController) GetCart(c *gin.Context) {
	respondOK(c, "Cart retrieved", models.NewCartResponse(ctrl.cart.Cart()), nil)
}

// @Summary Get cart item count
// @Description Sum of quantities across all cart lines
// @Tags Cart
// @Produce json
// @Success 200 {object} models.Response
// @Router /cart/count [get]
func (ctrl *CartController) GetItemCount(c *gin.Context) {
	respondOK(c, "Item count retrieved", gin.H{"item_count": ctrl.cart.ItemCount()}, nil)
}

// @Summary Add to cart
// @Description Price a flavor configuration and add it; identical configurations merge
// @Tags Cart
// @Accept json
// @Produce json
// @Param request body models.AddToCartRequest true "Flavor configuration"
// @Success 200 {object} models.Response{data=models.CartResponse}
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /cart/items [post]
func (ctrl *CartController) AddItem(c *gin.Context) {
	var req models.AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, 400, "Invalid request", err, nil)
		return
	}
	if req.Quantity < 0 {
		respondError(c, 400, "Quantity must be at least 1", services.ErrInvalidQuantity, nil)
		return
	}

	candidate, err := ctrl.menu.Quote(req.FlavorID, req.Size, req.Container, req.Quantity)
	if err != nil {
		respondQuoteError(c, err)
		return
	}

	cart, err := ctrl.cart.Add(candidate)
	if err != nil {
		respondError(c, 400, "Failed to add item", err, nil)
		return
	}

	respondOK(c, "Item added to cart", models.NewCartResponse(cart), notify(
		"Added to Cart!",
		fmt.Sprintf("%dx %s (%s) added to your cart.", candidate.Quantity, candidate.Name, candidate.SizeName),
	))
}

// @Summary Update line quantity
// @Description Set a line's quantity (at most 99); zero or less removes the line. Unknown lines are ignored
// @Tags Cart
// @Accept json
// @Produce json
// @Param cartId path string true "Cart line ID"
// @Param request body models.UpdateQuantityRequest true "New quantity"
// @Success 200 {object} models.Response{data=models.CartResponse}
// @Failure 400 {object} models.ErrorResponse
// @Router /cart/items/{cartId} [patch]
func (ctrl *CartController) UpdateQuantity(c *gin.Context) {
	var req models.UpdateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, 400, "Invalid request", err, nil)
		return
	}

	cartID := c.Param("cartId")
	_, existed := ctrl.cart.Line(cartID)
	cart, err := ctrl.cart.UpdateQuantity(cartID, *req.Quantity)
	if err != nil {
		respondError(c, 400, "Failed to update quantity", err, nil)
		return
	}

	if *req.Quantity <= 0 {
		var note *models.Notification
		if existed {
			note = notify("Item Removed", "Item has been removed from your cart.")
		}
		respondOK(c, "Item removed from cart", models.NewCartResponse(cart), note)
		return
	}

	respondOK(c, "Quantity updated", models.NewCartResponse(cart), nil)
}

// @Summary Remove line
// @Description Remove a cart line; unknown lines are ignored
// @Tags Cart
// @Produce json
// @Param cartId path string true "Cart line ID"
// @Success 200 {object} models.Response{data=models.CartResponse}
// @Router /cart/items/{cartId} [delete]
func (ctrl *CartController) RemoveItem(c *gin.Context) {
	cartID := c.Param("cartId")
	line, existed := ctrl.cart.Line(cartID)
	cart := ctrl.cart.Remove(cartID)

	var note *models.Notification
	if existed {
		note = notify("Item Removed", fmt.Sprintf("%s has been removed from your cart.", line.Name))
	}
	respondOK(c, "Item removed from cart", models.NewCartResponse(cart), note)
}

// @Summary Clear cart
// @Description Remove every line
// @Tags Cart
// @Produce json
// @Success 200 {object} models.Response{data=models.CartResponse}
// @Router /cart [delete]
func (ctrl *CartController) ClearCart(c *gin.Context) {
	cart := ctrl.cart.Clear()
	respondOK(c, "Cart cleared", models.NewCartResponse(cart), notify(
		"Cart Cleared",
		"All items have been removed from your cart.",
	))
}

func respondQuoteError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, repositories.ErrNotFound):
		respondError(c, 404, "Flavor not found", err, nil)
	case errors.Is(err, services.ErrUnavailable):
		respondError(c, 400, "Flavor is not available", err, nil)
	case errors.Is(err, services.ErrUnknownSize), errors.Is(err, services.ErrUnknownContainer):
		respondError(c, 400, "Invalid size or container", err, nil)
	default:
		respondError(c, 400, "Invalid configuration", err, nil)
	}
}
