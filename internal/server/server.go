// Package server boots the LocalShop backend: config, storage, cache,
// the middleware stack, and the shop API routes.
package server

import (
	"net/http"
	"time"

	"github.com/localshop/localshop/app/models"
	"github.com/localshop/localshop/app/routes"
	"github.com/localshop/localshop/app/services"
	"github.com/localshop/localshop/config"
	"github.com/localshop/localshop/internal/store"
	"github.com/localshop/localshop/pkg/cache"
	"github.com/localshop/localshop/pkg/event"
	"github.com/localshop/localshop/pkg/logger"
	"github.com/localshop/localshop/pkg/metrics"
	"github.com/localshop/localshop/pkg/middleware"
	"github.com/localshop/localshop/pkg/reqid"
	"github.com/localshop/localshop/pkg/router"
	"github.com/localshop/localshop/pkg/storage"
)

// NewRouter builds the full HTTP surface: global middleware, the /metrics
// endpoint, and the shop API.
//
// Middleware order (outermost → innermost):
//  1. Prometheus metrics — outermost for accurate total latency
//  2. Recovery           — catches panics before they kill the goroutine
//  3. Request ID         — inject unique ID before anything logs
//  4. Logger             — logs request_id from context
//  5. CORS               — the storefront is served from another origin
//  6. Rate limiter       — reject abusers early
func NewRouter(service *services.ShopService) *router.Router {
	r := router.New()

	r.Use(metrics.Middleware())
	r.Use(middleware.Recovery)
	r.Use(reqid.Middleware())
	r.Use(middleware.Logger)
	r.Use(middleware.CORS(middleware.DefaultCORSOptions()))
	r.Use(middleware.RateLimit(200, time.Minute))

	// Prometheus endpoint — outside /api, no rate limit exemption needed
	// at this traffic level.
	r.HandleFunc("/metrics", metrics.Handler())

	routes.RegisterAPI(r, service)
	return r
}

// NewService wires the store onto the configured storage disk.
func NewService() *services.ShopService {
	st := store.New(storage.Use(config.StorageDefault()), config.DataDir())
	return services.NewShopService(st)
}

// Start boots every subsystem and serves HTTP until the listener fails.
func Start() error {
	if err := config.Load(); err != nil {
		return err
	}

	storage.Connect()

	if err := cache.Connect(); err != nil {
		logger.Warn("cache unavailable, catalogue reads go to disk", "error", err)
	}

	registerListeners()

	service := NewService()
	r := NewRouter(service)

	addr := ":" + config.AppPort()
	logger.Info("localshop backend running", "addr", addr)
	return http.ListenAndServe(addr, r.Handler())
}

// registerListeners wires the order.created side effects: one structured log
// line and the order metrics. Kept out of the service so persistence logic
// stays free of observability concerns.
func registerListeners() {
	event.Listen(services.OrderCreated, func(payload interface{}) {
		order, ok := payload.(models.Order)
		if !ok {
			return
		}
		logger.Info("order created",
			"order_id", order.ID,
			"items", len(order.Items),
			"total", order.Total,
		)
		metrics.RecordOrder(order.Total)
	})
}
