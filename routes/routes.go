package routes

import (
	"ice-cream-shop/controllers"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type Controllers struct {
	Shop     *controllers.ShopController
	Menu     *controllers.MenuController
	Cart     *controllers.CartController
	Checkout *controllers.CheckoutController
	Contact  *controllers.ContactController
}

func SetupRoutes(router *gin.Engine, ctrl Controllers) {
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"status": "ok"}) })

	router.GET("/shop", ctrl.Shop.GetShopInfo)

	menu := router.Group("/menu")
	{
		menu.GET("/flavors", ctrl.Menu.GetFlavors)
		menu.GET("/flavors/:id", ctrl.Menu.GetFlavor)
		menu.GET("/categories", ctrl.Menu.GetCategories)
		menu.GET("/options", ctrl.Menu.GetOptions)
		menu.GET("/offers", ctrl.Menu.GetOffers)
		menu.GET("/reviews", ctrl.Menu.GetReviews)
		menu.POST("/quote", ctrl.Menu.Quote)
	}

	cart := router.Group("/cart")
	{
		cart.GET("", ctrl.Cart.GetCart)
		cart.DELETE("", ctrl.Cart.ClearCart)
		cart.GET("/count", ctrl.Cart.GetItemCount)
		cart.POST("/items", ctrl.Cart.AddItem)
		cart.PATCH("/items/:cartId", ctrl.Cart.UpdateQuantity)
		cart.DELETE("/items/:cartId", ctrl.Cart.RemoveItem)
	}

	router.GET("/checkout/summary", ctrl.Checkout.GetSummary)
	router.POST("/checkout", ctrl.Checkout.PlaceOrder)
	router.POST("/contact", ctrl.Contact.Submit)
}
