package httpserver

import (
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"burgerhouse/internal/cep"
	"burgerhouse/internal/kv"
	"burgerhouse/internal/metrics"
	menurepo "burgerhouse/internal/repository/menu"
	cartsvc "burgerhouse/internal/service/cart"
	checkoutsvc "burgerhouse/internal/service/checkout"
	ordersvc "burgerhouse/internal/service/order"
)

// Deps carries the wired services the handlers need.
type Deps struct {
	Menu     menurepo.Repository
	Carts    *cartsvc.Manager
	Checkout *checkoutsvc.Service
	Orders   *ordersvc.Service
	CEP      *cep.Client
	KV       kv.Store
	Hours    ordersvc.Hours
	Now      func() time.Time
}

// buildRouter wires routes for the storefront API.
func buildRouter(logger *log.Logger, deps Deps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.LoggerWithWriter(logger.Writer()), gin.Recovery())
	router.Use(cors.Default())

	if deps.Now == nil {
		deps.Now = time.Now
	}

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(deps.KV))
	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	h := &handlers{deps: deps}
	api := router.Group("/api")
	{
		api.GET("/menu", h.listMenu)
		api.GET("/store/status", h.storeStatus)
		api.GET("/address/:cep", h.lookupAddress)

		api.POST("/carts", h.createCart)
		api.GET("/carts/:cartID", h.getCart)
		api.POST("/carts/:cartID/items", h.addCartItem)
		api.PATCH("/carts/:cartID/items/:productID", h.updateCartItem)
		api.DELETE("/carts/:cartID/items/:productID", h.removeCartItem)
		api.POST("/carts/:cartID/checkout", h.checkout)

		// Admin and tracker views. Left unauthenticated like the original
		// storefront; gate at the proxy if exposure matters.
		api.GET("/orders", h.listOrders)
		api.GET("/orders/:orderID", h.getOrder)
		api.PATCH("/orders/:orderID/status", h.updateOrderStatus)
	}

	return router
}
