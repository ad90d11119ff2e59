package client

import (
	"github.com/localshop/localshop/app/models"
	"github.com/localshop/localshop/pkg/collection"
)

// AddToCart puts qty units of a catalogue product in the cart. An unknown
// product id is a user notice, not an error. If the product already has a
// cart line its quantity grows; otherwise a new line snapshots the product's
// current name, price and image.
func (c *Controller) AddToCart(productID int64, qty int) {
	if qty < 1 {
		qty = 1
	}

	p, ok := collection.First(c.products, func(p models.Product) bool { return p.ID == productID })
	if !ok {
		c.ui.Notify("Product not found")
		return
	}

	if i := c.lineIndex(productID); i >= 0 {
		c.cart[i].Quantity += qty
	} else {
		c.cart = append(c.cart, CartLine{
			ProductID: p.ID,
			Name:      p.Name,
			Price:     p.Price,
			Image:     p.Image,
			Quantity:  qty,
		})
	}

	c.saveCart()
}

// SetQuantity sets a cart line's quantity, clamped to a minimum of 1.
// Removing a line is RemoveFromCart's job, never a zero quantity.
func (c *Controller) SetQuantity(productID int64, qty int) {
	if qty < 1 {
		qty = 1
	}

	if i := c.lineIndex(productID); i >= 0 {
		c.cart[i].Quantity = qty
		c.saveCart()
	}
}

// RemoveFromCart drops every line for productID (there is at most one).
func (c *Controller) RemoveFromCart(productID int64) {
	c.cart = collection.Reject(c.cart, func(l CartLine) bool {
		return l.ProductID == productID
	})
	c.saveCart()
}

// TotalCount is the number of units in the cart, derived fresh on each call.
func (c *Controller) TotalCount() int {
	return int(collection.SumInt64(c.cart, func(l CartLine) int64 {
		return int64(l.Quantity)
	}))
}

// TotalPrice is the cart total in minor currency units, derived fresh.
func (c *Controller) TotalPrice() int64 {
	return collection.SumInt64(c.cart, func(l CartLine) int64 {
		return l.Price * int64(l.Quantity)
	})
}

func (c *Controller) lineIndex(productID int64) int {
	for i := range c.cart {
		if c.cart[i].ProductID == productID {
			return i
		}
	}
	return -1
}

// saveCart writes the whole cart through to local storage. Every mutation
// ends here; aggregates are never persisted.
func (c *Controller) saveCart() {
	c.store.Set(CartKey, c.cart)
}
