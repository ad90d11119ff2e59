package services

import (
	"context"
	"errors"
	"time"

	"github.com/localshop/localshop/app/models"
	"github.com/localshop/localshop/config"
	"github.com/localshop/localshop/internal/store"
	"github.com/localshop/localshop/pkg/cache"
	"github.com/localshop/localshop/pkg/collection"
	"github.com/localshop/localshop/pkg/event"
	"github.com/localshop/localshop/pkg/logger"
)

var (
	// ErrProductNotFound means no catalogue entry has the requested id.
	ErrProductNotFound = errors.New("product not found")

	// ErrOrderWithoutItems means the checkout request carried no items.
	ErrOrderWithoutItems = errors.New("order must include items")

	// ErrSaveOrder means the order collection could not be written.
	ErrSaveOrder = errors.New("failed to save order")
)

// OrderCreated is the event name fired after an order is persisted.
const OrderCreated = "order.created"

const catalogCacheKey = "localshop:products"

// ShopService implements the product query and checkout operations on top of
// the flat-file store.
type ShopService struct {
	store    *store.Store
	cacheTTL time.Duration
	now      func() time.Time
}

func NewShopService(st *store.Store) *ShopService {
	return &ShopService{
		store:    st,
		cacheTTL: config.CatalogCacheTTL(),
		now:      time.Now,
	}
}

// AllProducts returns the full catalogue as currently stored. An unreadable
// or absent catalogue yields an empty slice, never an error.
func (s *ShopService) AllProducts() []models.Product {
	if s.cacheTTL > 0 {
		var cached []models.Product
		if cache.Get(catalogCacheKey, &cached) {
			return cached
		}
	}

	products := s.store.Products()

	if s.cacheTTL > 0 && len(products) > 0 {
		if err := cache.Set(catalogCacheKey, products, s.cacheTTL); err != nil {
			logger.Warn("catalogue cache write failed", "error", err)
		}
	}

	return products
}

// ProductByID returns the matching product or ErrProductNotFound, including
// when the catalogue is empty or unreadable.
func (s *ShopService) ProductByID(id int64) (models.Product, error) {
	p, ok := collection.First(s.AllProducts(), func(p models.Product) bool {
		return p.ID == id
	})
	if !ok {
		return models.Product{}, ErrProductNotFound
	}
	return p, nil
}

// AllOrders returns every persisted order, oldest first. Diagnostic use.
func (s *ShopService) AllOrders() []models.Order {
	return s.store.Orders()
}

// SubmitOrder validates the request, assigns the next order id, stamps the
// creation time, computes the total, and appends the order to the store.
//
// The id read and the save are two independent whole-file operations; two
// concurrent submissions can race. That is an accepted property of the
// whole-file read-modify-write design, kept as-is.
func (s *ShopService) SubmitOrder(ctx context.Context, req models.CheckoutRequest) (int64, error) {
	if len(req.Items) == 0 {
		return 0, ErrOrderWithoutItems
	}

	orders := s.store.Orders()

	total := req.Total
	if total == 0 {
		total = collection.SumInt64(req.Items, models.OrderItem.Subtotal)
	}

	order := models.Order{
		ID:        collection.MaxInt64(orders, func(o models.Order) int64 { return o.ID }) + 1,
		CreatedAt: s.now().UTC().Truncate(time.Second),
		Items:     req.Items,
		Total:     total,
		Customer:  req.Customer,
	}

	if err := s.store.SaveOrders(append(orders, order)); err != nil {
		logger.WithCtx(ctx).Error("order save failed", "order_id", order.ID, "error", err)
		return 0, ErrSaveOrder
	}

	event.Fire(OrderCreated, order)
	return order.ID, nil
}

// Ping returns the server's current instant. Pure diagnostic.
func (s *ShopService) Ping() time.Time {
	return s.now().UTC()
}
