package httpserver

import (
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// buildRouter wires routes for the API.
func buildRouter(logger *log.Logger, deps Deps, corsOrigins []string) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.LoggerWithWriter(logger.Writer()), gin.Recovery())
	router.Use(corsMiddleware(corsOrigins))

	router.GET("/healthz", healthHandler)

	router.GET("/menu", listMenuHandler(deps.Catalog))
	router.GET("/menu/:id", getMenuItemHandler(deps.Catalog))

	router.GET("/cart", getCartHandler(deps.Cart))
	router.POST("/cart/items", addCartItemHandler(deps.Cart, deps.Catalog))
	router.DELETE("/cart/items/:id", removeCartItemHandler(deps.Cart))
	router.POST("/cart/items/:id/increment", incrementCartItemHandler(deps.Cart))
	router.POST("/cart/items/:id/decrement", decrementCartItemHandler(deps.Cart))
	router.DELETE("/cart", clearCartHandler(deps.Cart))

	router.GET("/addresses", listAddressesHandler(deps.Addresses))
	router.POST("/addresses", addAddressHandler(deps.Addresses))
	router.PATCH("/addresses/:id", updateAddressHandler(deps.Addresses))
	router.DELETE("/addresses/:id", removeAddressHandler(deps.Addresses))
	router.POST("/addresses/:id/default", setDefaultAddressHandler(deps.Addresses))

	router.GET("/payment-methods", listPaymentMethodsHandler(deps.Payments))
	router.POST("/payment-methods", addPaymentMethodHandler(deps.Payments))
	router.PATCH("/payment-methods/:id", updatePaymentMethodHandler(deps.Payments))
	router.DELETE("/payment-methods/:id", removePaymentMethodHandler(deps.Payments))
	router.POST("/payment-methods/:id/default", setDefaultPaymentMethodHandler(deps.Payments))

	router.GET("/orders", listOrdersHandler(deps.Orders))
	router.GET("/orders/:id", getOrderHandler(deps.Orders))
	router.POST("/orders/:id/status", updateOrderStatusHandler(deps.Orders))
	router.POST("/orders/:id/cancel", cancelOrderHandler(deps.Orders))
	router.POST("/orders/:id/reorder", reorderHandler(deps.Orders))

	router.POST("/checkout", checkoutHandler(deps.Checkout))

	return router
}

func corsMiddleware(origins []string) gin.HandlerFunc {
	cfg := cors.DefaultConfig()
	if len(origins) == 1 && origins[0] == "*" {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	cfg.AllowMethods = []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"}
	return cors.New(cfg)
}
