package routes

import (
	"booze/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathProducts = "/products"
	PathCart     = "/cart"
	PathAddress  = "/address"
	PathCheckout = "/checkout"
	PathOrders   = "/orders"
	PathSession  = "/session"
)

type storeHandlers struct {
	products *handlers.ProductHandler
	cart     *handlers.CartHandler
	address  *handlers.AddressHandler
	checkout *handlers.CheckoutHandler
	orders   *handlers.OrderHandler
	session  *handlers.SessionHandler
}

func addCatalogRoutes(rg *gin.RouterGroup, h storeHandlers) {
	products := rg.Group(PathProducts)
	{
		products.GET("", h.products.ListProducts)
		products.GET("/:id", h.products.GetProduct)
	}
}

// addSessionRoutes registers everything scoped to a shopper session.
func addSessionRoutes(rg *gin.RouterGroup, h storeHandlers) {
	shop := rg.Group("", handlers.SessionMiddleware())

	cart := shop.Group(PathCart)
	{
		cart.GET("", h.cart.GetCart)
		cart.DELETE("", h.cart.ClearCart)
		cart.POST("/items", h.cart.AddItem)
		cart.POST("/items/:product_id/decrement", h.cart.DecrementItem)
		cart.DELETE("/items/:product_id", h.cart.RemoveItem)
	}

	address := shop.Group(PathAddress)
	{
		address.GET("", h.address.GetAddress)
		address.PUT("", h.address.ConfirmAddress)
		address.DELETE("", h.address.ClearAddress)
	}

	shop.POST(PathCheckout, h.checkout.Checkout)
	shop.GET(PathOrders, h.orders.ListOrders)
	shop.DELETE(PathSession, h.session.EndSession)
}
