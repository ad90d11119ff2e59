// Package client implements the shop client: catalogue fetching and
// filtering, the persisted cart, and the checkout flow against the backend.
//
// All state lives on the Controller and is mutated from a single goroutine;
// the only blocking points are the two network calls and the checkout
// prompts.
package client

import (
	"github.com/localshop/localshop/app/models"
)

// CartLine is one product-quantity entry in the cart. Name, price and image
// are snapshots taken when the line was added, so catalogue edits after the
// fact never change what the cart says.
type CartLine struct {
	ProductID int64  `json:"id"`
	Name      string `json:"name"`
	Price     int64  `json:"price"`
	Image     string `json:"img"`
	Quantity  int    `json:"quantity"`
}

// Controller owns the client-side state. Views read from it; nothing reads
// ambient globals.
type Controller struct {
	base  string // API base URL, e.g. http://localhost:4000/api
	store *LocalStore
	ui    UI

	products []models.Product
	filtered []models.Product
	cart     []CartLine

	activeCategory string
	searchQuery    string
}

// New builds a Controller and restores the persisted cart.
// base must include the /api prefix.
func New(base string, store *LocalStore, ui UI) *Controller {
	c := &Controller{
		base:           base,
		store:          store,
		ui:             ui,
		activeCategory: "All",
	}
	store.Get(CartKey, &c.cart)
	return c
}

// Products returns the fetched catalogue.
func (c *Controller) Products() []models.Product { return c.products }

// Filtered returns the current filtered view of the catalogue.
func (c *Controller) Filtered() []models.Product { return c.filtered }

// Lines returns the cart contents.
func (c *Controller) Lines() []CartLine { return c.cart }

// ActiveCategory returns the category filter currently in effect.
func (c *Controller) ActiveCategory() string { return c.activeCategory }

// SearchQuery returns the search text currently in effect.
func (c *Controller) SearchQuery() string { return c.searchQuery }
