package routes

import (
	"github.com/localshop/localshop/app/controllers"
	"github.com/localshop/localshop/app/services"
	"github.com/localshop/localshop/pkg/router"
)

// RegisterAPI mounts the shop API on r.
func RegisterAPI(r *router.Router, service *services.ShopService) {
	shop := controllers.NewShopController(service)

	api := r.Group("/api")
	api.Get("/products", "products.index", shop.ListProducts)
	api.Get("/products/{id}", "products.show", shop.ShowProduct)
	api.Post("/checkout", "checkout", shop.Checkout)
	api.Get("/ping", "ping", shop.Ping)
}
