package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/localshop/localshop/app/models"
	"github.com/localshop/localshop/app/services"
	"github.com/localshop/localshop/pkg/bind"
	"github.com/localshop/localshop/pkg/logger"
	"github.com/localshop/localshop/pkg/response"
)

// ShopController exposes the shop API over HTTP. It owns no state beyond the
// service; the wire contract lives here and nowhere else.
type ShopController struct {
	service *services.ShopService
}

func NewShopController(service *services.ShopService) *ShopController {
	return &ShopController{service: service}
}

// ListProducts handles GET /api/products. Never errors: an unreadable
// catalogue is an empty array.
func (c *ShopController) ListProducts(w http.ResponseWriter, r *http.Request) {
	products := c.service.AllProducts()
	if products == nil {
		products = []models.Product{}
	}
	response.OK(w, products)
}

// ShowProduct handles GET /api/products/{id}. A non-numeric id can match no
// product, so it falls through to the same 404 as an unknown id.
func (c *ShopController) ShowProduct(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		response.Error(w, http.StatusNotFound, "Product not found")
		return
	}

	product, err := c.service.ProductByID(id)
	if err != nil {
		response.Error(w, http.StatusNotFound, "Product not found")
		return
	}

	response.OK(w, product)
}

// Checkout handles POST /api/checkout.
func (c *ShopController) Checkout(w http.ResponseWriter, r *http.Request) {
	var req models.CheckoutRequest
	if err := bind.JSON(r, &req); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	orderID, err := c.service.SubmitOrder(r.Context(), req)
	switch {
	case errors.Is(err, services.ErrOrderWithoutItems):
		response.Error(w, http.StatusBadRequest, "Order must include items")
	case err != nil:
		// Underlying cause was already logged by the service.
		response.Error(w, http.StatusInternalServerError, "Failed to save order")
	default:
		logger.WithCtx(r.Context()).Info("order placed", "order_id", orderID)
		response.OK(w, map[string]interface{}{
			"success": true,
			"orderId": orderID,
		})
	}
}

// Ping handles GET /api/ping: liveness plus the server clock.
func (c *ShopController) Ping(w http.ResponseWriter, r *http.Request) {
	response.OK(w, map[string]interface{}{
		"ok":   true,
		"time": c.service.Ping().Format(time.RFC3339),
	})
}
