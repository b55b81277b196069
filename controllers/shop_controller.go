package controllers

import (
	"ice-cream-shop/repositories"

	"github.com/gin-gonic/gin"
)

type ShopController struct{}

// @Summary Get shop info
// @Description Name, address, opening hours and social links
// @Tags Shop
// @Produce json
// @Success 200 {object} models.Response{data=models.ShopInfo}
// @Router /shop [get]
func (ctrl *ShopController) GetShopInfo(c *gin.Context) {
	respondOK(c, "Shop info retrieved", repositories.ShopInfo(), nil)
}
