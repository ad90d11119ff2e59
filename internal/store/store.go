// Package store persists the two LocalShop collections — products and
// orders — as JSON files on a storage disk.
//
// There is no indexing and no incremental update: every read loads the whole
// file and every write rewrites it. Reads never fail from the caller's point
// of view; a missing or corrupt file is indistinguishable from an empty
// collection.
package store

import (
	"encoding/json"
	"fmt"
	"path"

	"github.com/localshop/localshop/app/models"
	"github.com/localshop/localshop/pkg/logger"
	"github.com/localshop/localshop/pkg/metrics"
	"github.com/localshop/localshop/pkg/storage"
)

const (
	productsFile = "products.json"
	ordersFile   = "orders.json"
)

// Store reads and writes the product and order collections.
type Store struct {
	disk storage.Disk
	dir  string
}

// New returns a Store keeping its files under dir on disk.
func New(disk storage.Disk, dir string) *Store {
	return &Store{disk: disk, dir: dir}
}

// Products loads the full catalogue. A nil slice is returned on any read or
// parse failure; the cause is logged at debug level only, since an absent
// catalogue is a normal state for a fresh install.
func (s *Store) Products() []models.Product {
	return loadCollection[models.Product](s, productsFile)
}

// Orders loads every persisted order, oldest first.
func (s *Store) Orders() []models.Order {
	return loadCollection[models.Order](s, ordersFile)
}

// SaveOrders serializes the whole order collection pretty-printed and
// overwrites the orders file. There is no file locking and no partial-write
// guarantee; callers own any serialization of concurrent writers.
func (s *Store) SaveOrders(orders []models.Order) error {
	data, err := json.MarshalIndent(orders, "", "  ")
	if err != nil {
		return fmt.Errorf("store: encode orders: %w", err)
	}

	if err := s.disk.Put(s.path(ordersFile), data); err != nil {
		metrics.StoreWrites.WithLabelValues("orders", "error").Inc()
		return fmt.Errorf("store: write orders: %w", err)
	}

	metrics.StoreWrites.WithLabelValues("orders", "ok").Inc()
	return nil
}

func (s *Store) path(name string) string {
	return path.Join(s.dir, name)
}

func loadCollection[T any](s *Store, name string) []T {
	data, err := s.disk.Get(s.path(name))
	if err != nil {
		metrics.StoreReads.WithLabelValues(name, "miss").Inc()
		logger.Debug("store: read failed, treating as empty", "file", name, "error", err)
		return nil
	}

	var out []T
	if err := json.Unmarshal(data, &out); err != nil {
		metrics.StoreReads.WithLabelValues(name, "corrupt").Inc()
		logger.Debug("store: parse failed, treating as empty", "file", name, "error", err)
		return nil
	}

	metrics.StoreReads.WithLabelValues(name, "ok").Inc()
	return out
}
