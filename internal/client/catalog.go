package client

import (
	"context"
	"strings"
	"time"

	"github.com/localshop/localshop/app/models"
	"github.com/localshop/localshop/pkg/collection"
	"github.com/localshop/localshop/pkg/http"
	"github.com/localshop/localshop/pkg/logger"
)

// sampleCatalog is the degraded-mode listing used when the backend cannot be
// reached. The user keeps a browsable (if tiny) shop instead of an error page.
var sampleCatalog = []models.Product{
	{ID: 1, Name: "Demo Product", Description: "Demo item", Price: 300, Category: "Misc", Image: "https://picsum.photos/seed/demo/800/600"},
}

// FetchProducts loads the catalogue from the backend. Any failure — network,
// bad status, undecodable body — falls back to the built-in sample listing
// with a diagnostic, never an error: browsing must survive a dead backend.
// The filtered view is reset to the full catalogue; filter criteria are kept.
func (c *Controller) FetchProducts(ctx context.Context) {
	var products []models.Product

	resp, err := http.Get(c.base + "/products").
		WithContext(ctx).
		Timeout(10 * time.Second).
		Send()
	if err == nil {
		err = resp.JSON(&products)
	}

	if err != nil {
		logger.Warn("failed to fetch products from backend, falling back to demo listing", "error", err)
		products = sampleCatalog
	}

	c.products = products
	c.filtered = append([]models.Product(nil), products...)
}

// FilterUpdate carries optional new criteria for ApplyFilters. A nil field
// keeps the criterion currently in effect.
type FilterUpdate struct {
	Category *string
	Query    *string
}

// ApplyFilters recomputes the filtered view from scratch: category "All"
// passes everything, and a non-empty query must appear (case-insensitively)
// in the product name or description. Updated criteria are remembered for
// the next recompute.
func (c *Controller) ApplyFilters(update FilterUpdate) {
	if update.Category != nil {
		c.activeCategory = *update.Category
	}
	if update.Query != nil {
		c.searchQuery = strings.TrimSpace(*update.Query)
	}

	q := strings.ToLower(c.searchQuery)
	c.filtered = collection.Filter(c.products, func(p models.Product) bool {
		inCat := c.activeCategory == "All" || p.Category == c.activeCategory
		inSearch := q == "" ||
			strings.Contains(strings.ToLower(p.Name), q) ||
			strings.Contains(strings.ToLower(p.Description), q)
		return inCat && inSearch
	})
}

// SetCategory switches the active category and recomputes the view.
func (c *Controller) SetCategory(category string) {
	c.ApplyFilters(FilterUpdate{Category: &category})
}

// SetSearch updates the search text and recomputes the view.
func (c *Controller) SetSearch(query string) {
	c.ApplyFilters(FilterUpdate{Query: &query})
}
