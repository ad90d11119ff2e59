package client

import (
	"context"
	"fmt"
	"time"

	"github.com/localshop/localshop/app/models"
	"github.com/localshop/localshop/pkg/collection"
	"github.com/localshop/localshop/pkg/http"
	"github.com/localshop/localshop/pkg/logger"
)

// checkoutReply is the server's answer to POST /checkout, success or not.
type checkoutReply struct {
	Success bool   `json:"success"`
	OrderID int64  `json:"orderId"`
	Error   string `json:"error"`
}

// Checkout runs the full flow: refuse an empty cart, collect customer
// details, submit, and settle the cart. A cancelled prompt aborts with no
// state change. On success the cart is cleared everywhere; on a server-side
// rejection the cart is left untouched; when the server is unreachable the
// payload is stashed under the pending-order key for manual recovery and
// nothing is retried.
func (c *Controller) Checkout(ctx context.Context) {
	if len(c.cart) == 0 {
		c.ui.Notify("Cart is empty.")
		return
	}

	name, ok := c.ui.Prompt("Enter your name for order")
	if !ok {
		return
	}
	phone, ok := c.ui.Prompt("Enter your phone number")
	if !ok {
		return
	}

	order := models.CheckoutRequest{
		Items:    c.orderItems(),
		Total:    c.TotalPrice(),
		Customer: models.Customer{Name: name, Phone: phone},
	}

	resp, err := http.Post(c.base+"/checkout").
		WithContext(ctx).
		Timeout(15 * time.Second).
		Body(order).
		Send()
	if err != nil {
		logger.Warn("checkout could not reach server", "error", err)
		c.ui.Notify("Could not reach server. Your order was saved locally for retry.")
		c.store.Set(PendingOrderKey, order)
		return
	}

	var reply checkoutReply
	if decodeErr := resp.JSON(&reply); decodeErr != nil {
		logger.Warn("checkout reply unreadable", "status", resp.StatusCode, "error", decodeErr)
	}

	if !resp.OK() {
		msg := reply.Error
		if msg == "" {
			msg = "unknown"
		}
		c.ui.Notify("Checkout failed: " + msg)
		return
	}

	c.ui.Notify(fmt.Sprintf("Order placed! Order ID: %d", reply.OrderID))
	c.cart = nil
	c.saveCart()
}

// PendingOrder returns the payload stashed by a failed checkout, if any.
func (c *Controller) PendingOrder() (models.CheckoutRequest, bool) {
	var order models.CheckoutRequest
	ok := c.store.Get(PendingOrderKey, &order)
	return order, ok
}

// ClearPendingOrder drops the stashed payload.
func (c *Controller) ClearPendingOrder() {
	c.store.Delete(PendingOrderKey)
}

// RetryPending resubmits the stashed payload once. On acceptance the stash
// is cleared; any failure leaves it in place for another manual attempt.
func (c *Controller) RetryPending(ctx context.Context) {
	order, ok := c.PendingOrder()
	if !ok {
		c.ui.Notify("No pending order.")
		return
	}

	resp, err := http.Post(c.base+"/checkout").
		WithContext(ctx).
		Timeout(15 * time.Second).
		Body(order).
		Send()
	if err != nil {
		c.ui.Notify("Could not reach server. Pending order kept.")
		return
	}

	var reply checkoutReply
	_ = resp.JSON(&reply)

	if !resp.OK() {
		msg := reply.Error
		if msg == "" {
			msg = "unknown"
		}
		c.ui.Notify("Checkout failed: " + msg)
		return
	}

	c.ui.Notify(fmt.Sprintf("Order placed! Order ID: %d", reply.OrderID))
	c.ClearPendingOrder()
}

func (c *Controller) orderItems() []models.OrderItem {
	return collection.Map(c.cart, func(l CartLine) models.OrderItem {
		return models.OrderItem{
			ProductID: l.ProductID,
			Name:      l.Name,
			Price:     l.Price,
			Image:     l.Image,
			Quantity:  l.Quantity,
		}
	})
}
