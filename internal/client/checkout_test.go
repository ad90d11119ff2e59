package client

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/localshop/localshop/pkg/http"
	"github.com/localshop/localshop/pkg/testkit"
)

func TestCheckout_EmptyCartMakesNoCall(t *testing.T) {
	mt := testkit.NewMockTransport()
	http.DefaultClient.Transport = mt
	defer http.ResetTransport()

	c, ui := newTestController(t)
	c.Checkout(context.Background())

	assert.Equal(t, []string{"Cart is empty."}, ui.notices)
	assert.Equal(t, 0, mt.TotalCalls())
}

func TestCheckout_CancelledPromptAborts(t *testing.T) {
	mt := testkit.NewMockTransport()
	http.DefaultClient.Transport = mt
	defer http.ResetTransport()

	c, ui := newTestController(t)
	c.AddToCart(1, 1)
	ui.cancel = true

	c.Checkout(context.Background())

	assert.Equal(t, 0, mt.TotalCalls())
	require.Len(t, c.Lines(), 1)
	_, pending := c.PendingOrder()
	assert.False(t, pending)
}

func TestCheckout_SuccessClearsCart(t *testing.T) {
	mt := testkit.NewMockTransport(&testkit.MockStep{
		MatchURL: "/checkout",
		Status:   200,
		Body:     `{"success":true,"orderId":42}`,
	})
	http.DefaultClient.Transport = mt
	defer http.ResetTransport()

	dir := t.TempDir()
	ui := &fakeUI{answers: []string{"Ayesha", "0300-0000000"}}
	c := New("http://localhost:4000/api", OpenLocalStore(dir), ui)
	c.products = testCatalogue
	c.AddToCart(1, 2)

	c.Checkout(context.Background())

	assert.Equal(t, []string{"Order placed! Order ID: 42"}, ui.notices)
	assert.Empty(t, c.Lines())

	// The cleared cart is persisted too.
	reopened := New(c.base, OpenLocalStore(dir), &fakeUI{})
	assert.Empty(t, reopened.Lines())
}

func TestCheckout_ServerRejectionKeepsCart(t *testing.T) {
	mt := testkit.NewMockTransport(&testkit.MockStep{
		MatchURL: "/checkout",
		Status:   400,
		Body:     `{"error":"Order must include items"}`,
	})
	http.DefaultClient.Transport = mt
	defer http.ResetTransport()

	c, ui := newTestController(t)
	c.AddToCart(1, 1)
	ui.answers = []string{"Ayesha", "0300-0000000"}

	c.Checkout(context.Background())

	assert.Equal(t, []string{"Checkout failed: Order must include items"}, ui.notices)
	require.Len(t, c.Lines(), 1)
	_, pending := c.PendingOrder()
	assert.False(t, pending)
}

func TestCheckout_UnreachableServerStashesOrder(t *testing.T) {
	mt := testkit.NewMockTransport(&testkit.MockStep{
		MatchURL: "/checkout",
		Err:      assert.AnError,
	})
	http.DefaultClient.Transport = mt
	defer http.ResetTransport()

	c, ui := newTestController(t)
	c.AddToCart(1, 2)
	ui.answers = []string{"Ayesha", "0300-0000000"}

	c.Checkout(context.Background())

	assert.Equal(t, []string{"Could not reach server. Your order was saved locally for retry."}, ui.notices)
	require.Len(t, c.Lines(), 1, "cart survives a failed submission")

	order, ok := c.PendingOrder()
	require.True(t, ok)
	require.Len(t, order.Items, 1)
	assert.Equal(t, int64(1), order.Items[0].ProductID)
	assert.Equal(t, int64(900), order.Total)
	assert.Equal(t, "Ayesha", order.Customer.Name)
}

func TestRetryPending_NoStash(t *testing.T) {
	mt := testkit.NewMockTransport()
	http.DefaultClient.Transport = mt
	defer http.ResetTransport()

	c, ui := newTestController(t)
	c.RetryPending(context.Background())

	assert.Equal(t, []string{"No pending order."}, ui.notices)
	assert.Equal(t, 0, mt.TotalCalls())
}

func TestRetryPending_SuccessClearsStash(t *testing.T) {
	mt := testkit.NewMockTransport(
		&testkit.MockStep{MatchURL: "/checkout", Err: assert.AnError},
	)
	http.DefaultClient.Transport = mt

	c, ui := newTestController(t)
	c.AddToCart(1, 1)
	ui.answers = []string{"Ayesha", "0300-0000000"}
	c.Checkout(context.Background())

	_, ok := c.PendingOrder()
	require.True(t, ok)

	http.DefaultClient.Transport = testkit.NewMockTransport(&testkit.MockStep{
		MatchURL: "/checkout",
		Status:   200,
		Body:     `{"success":true,"orderId":7}`,
	})
	defer http.ResetTransport()

	c.RetryPending(context.Background())

	assert.Contains(t, ui.notices, "Order placed! Order ID: 7")
	_, ok = c.PendingOrder()
	assert.False(t, ok)
}

func TestRetryPending_FailureKeepsStash(t *testing.T) {
	mt := testkit.NewMockTransport(&testkit.MockStep{
		MatchURL: "/checkout",
		Err:      assert.AnError,
	})
	http.DefaultClient.Transport = mt
	defer http.ResetTransport()

	c, ui := newTestController(t)
	c.AddToCart(1, 1)
	ui.answers = []string{"Ayesha", "0300-0000000"}
	c.Checkout(context.Background())
	c.RetryPending(context.Background())

	assert.Contains(t, ui.notices, "Could not reach server. Pending order kept.")
	_, ok := c.PendingOrder()
	assert.True(t, ok)
}
