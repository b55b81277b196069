package controllers

import (
	"encoding/json"
	"errors"
	"strconv"

	"ice-cream-shop/cache"
	"ice-cream-shop/models"
	"ice-cream-shop/repositories"
	"ice-cream-shop/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Menu is the read side of the menu the controllers serve.
type Menu interface {
	Flavors(category, search string) []models.CatalogItem
	Flavor(id int) (models.CatalogItem, error)
	Categories() []string
	Options() models.Options
	Quote(flavorID int, sizeID, containerID string, quantity int) (models.LineCandidate, error)
}

type MenuController struct {
	menu   Menu
	cache  *cache.MenuCache
	logger *zap.Logger
}

func NewMenuController(menu Menu, menuCache *cache.MenuCache, logger *zap.Logger) *MenuController {
	return &MenuController{menu: menu, cache: menuCache, logger: logger}
}

// @Summary List flavors
// @Description List available flavors, filtered by category and search term
// @Tags Menu
// @Produce json
// @Param category query string false "Category, All for every category"
// @Param search query string false "Search in name and description"
// @Success 200 {object} models.Response{data=[]models.CatalogItem}
// @Router /menu/flavors [get]
func (ctrl *MenuController) GetFlavors(c *gin.Context) {
	category := c.DefaultQuery("category", services.AllCategories)
	search := c.Query("search")
	key := cache.FlavorsKey(category, search)
	ctx := c.Request.Context()

	cached, err := ctrl.cache.Get(ctx, key)
	if err == nil {
		c.Data(200, "application/json; charset=utf-8", cached)
		return
	}
	if !errors.Is(err, cache.ErrCacheMiss) {
		ctrl.logger.Warn("menu cache get error", zap.Error(err))
	}

	response := models.Response{
		Success: true,
		Message: "Flavors retrieved",
		Data:    ctrl.menu.Flavors(category, search),
	}

	if ctrl.cache.Enabled() {
		jsonData, err := json.Marshal(response)
		if err == nil {
			if err := ctrl.cache.Set(ctx, key, jsonData); err != nil {
				ctrl.logger.Warn("menu cache set error", zap.Error(err))
			}
		}
	}

	c.JSON(200, response)
}

// @Summary Get flavor
// @Description Get a flavor by id
// @Tags Menu
// @Produce json
// @Param id path int true "Flavor ID"
// @Success 200 {object} models.Response{data=models.CatalogItem}
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /menu/flavors/{id} [get]
func (ctrl *MenuController) GetFlavor(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		respondError(c, 400, "Invalid flavor ID", err, nil)
		return
	}

	flavor, err := ctrl.menu.Flavor(id)
	switch {
	case errors.Is(err, repositories.ErrNotFound):
		respondError(c, 404, "Flavor not found", err, nil)
		return
	case err != nil:
		respondError(c, 500, "Failed to get flavor", err, nil)
		return
	}
	respondOK(c, "Flavor retrieved", flavor, nil)
}

// @Summary List categories
// @Description All followed by every category on the menu
// @Tags Menu
// @Produce json
// @Success 200 {object} models.Response{data=[]string}
// @Router /menu/categories [get]
func (ctrl *MenuController) GetCategories(c *gin.Context) {
	respondOK(c, "Categories retrieved", ctrl.menu.Categories(), nil)
}

// @Summary List options
// @Description Size and container options
// @Tags Menu
// @Produce json
// @Success 200 {object} models.Response{data=models.Options}
// @Router /menu/options [get]
func (ctrl *MenuController) GetOptions(c *gin.Context) {
	respondOK(c, "Options retrieved", ctrl.menu.Options(), nil)
}

// @Summary Quote a configuration
// @Description Price a flavor configuration without adding it to the cart
// @Tags Menu
// @Accept json
// @Produce json
// @Param request body models.QuoteRequest true "Flavor configuration"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /menu/quote [post]
func (ctrl *MenuController) Quote(c *gin.Context) {
	var req models.QuoteRequest
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

	respondOK(c, "Quote calculated", gin.H{
		"line":       candidate,
		"unit_price": candidate.UnitPrice,
		"line_total": services.LineTotal(candidate.UnitPrice, candidate.Quantity),
	}, nil)
}

// @Summary List special offers
// @Tags Menu
// @Produce json
// @Success 200 {object} models.Response{data=[]models.SpecialOffer}
// @Router /menu/offers [get]
func (ctrl *MenuController) GetOffers(c *gin.Context) {
	respondOK(c, "Offers retrieved", repositories.SpecialOffers(), nil)
}

// @Summary List customer reviews
// @Tags Menu
// @Produce json
// @Success 200 {object} models.Response{data=[]models.Review}
// @Router /menu/reviews [get]
func (ctrl *MenuController) GetReviews(c *gin.Context) {
	respondOK(c, "Reviews retrieved", repositories.CustomerReviews(), nil)
}
