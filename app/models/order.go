package models

import "time"

// OrderItem is a purchased line. Name, price and image are copied from the
// product at the time it was added to the cart, so later catalogue edits
// never change what a past order says was bought.
type OrderItem struct {
	ProductID int64  `json:"id"`
	Name      string `json:"name"`
	Price     int64  `json:"price"`
	Image     string `json:"img,omitempty"`
	Quantity  int    `json:"quantity"`
}

// Subtotal is the line contribution to the order total.
func (i OrderItem) Subtotal() int64 {
	return i.Price * int64(i.Quantity)
}

// Customer is the free-form contact record collected at checkout.
type Customer struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// Order is an accepted checkout. Orders are append-only: once written to the
// orders file they are never mutated or deleted by the service.
type Order struct {
	ID        int64       `json:"id"`
	CreatedAt time.Time   `json:"createdAt"`
	Items     []OrderItem `json:"items"`
	Total     int64       `json:"total"`
	Customer  Customer    `json:"customer"`
}

// CheckoutRequest is the POST /api/checkout body. Total and Customer are
// optional; item fields beyond the list itself are deliberately not
// validated.
type CheckoutRequest struct {
	Items    []OrderItem `json:"items"`
	Total    int64       `json:"total,omitempty"`
	Customer Customer    `json:"customer"`
}
