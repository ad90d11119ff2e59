package client

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/localshop/localshop/app/models"
)

// fakeUI scripts prompt answers and records notices.
type fakeUI struct {
	answers []string
	cancel  bool
	notices []string
}

func (u *fakeUI) Prompt(label string) (string, bool) {
	if u.cancel || len(u.answers) == 0 {
		return "", false
	}
	answer := u.answers[0]
	u.answers = u.answers[1:]
	return answer, true
}

func (u *fakeUI) Notify(message string) {
	u.notices = append(u.notices, message)
}

var testCatalogue = []models.Product{
	{ID: 1, Name: "Red Mug", Description: "Glazed ceramic mug", Price: 450, Category: "Kitchen", Image: "mug.jpg"},
	{ID: 3, Name: "Blue Pen", Description: "Ballpoint pen", Price: 60, Category: "Stationery", Image: "pen.jpg"},
	{ID: 5, Name: "Desk Lamp", Description: "LED desk lamp", Price: 3800, Category: "Electronics", Image: "lamp.jpg"},
}

func newTestController(t *testing.T) (*Controller, *fakeUI) {
	t.Helper()
	ui := &fakeUI{}
	c := New("http://localhost:4000/api", OpenLocalStore(t.TempDir()), ui)
	c.products = testCatalogue
	c.filtered = append([]models.Product(nil), testCatalogue...)
	return c, ui
}

func TestAddToCart_SnapshotsProduct(t *testing.T) {
	c, _ := newTestController(t)

	c.AddToCart(1, 2)

	require.Len(t, c.Lines(), 1)
	line := c.Lines()[0]
	assert.Equal(t, int64(1), line.ProductID)
	assert.Equal(t, "Red Mug", line.Name)
	assert.Equal(t, int64(450), line.Price)
	assert.Equal(t, "mug.jpg", line.Image)
	assert.Equal(t, 2, line.Quantity)
}

func TestAddToCart_MergesExistingLine(t *testing.T) {
	c, _ := newTestController(t)

	c.AddToCart(1, 2)
	c.AddToCart(1, 3)

	require.Len(t, c.Lines(), 1)
	assert.Equal(t, 5, c.Lines()[0].Quantity)
}

func TestAddToCart_UnknownProductNotifies(t *testing.T) {
	c, ui := newTestController(t)

	c.AddToCart(999, 1)

	assert.Empty(t, c.Lines())
	assert.Equal(t, []string{"Product not found"}, ui.notices)
}

func TestAddToCart_QuantityFloorIsOne(t *testing.T) {
	c, _ := newTestController(t)

	c.AddToCart(1, 0)
	c.AddToCart(3, -4)

	require.Len(t, c.Lines(), 2)
	assert.Equal(t, 1, c.Lines()[0].Quantity)
	assert.Equal(t, 1, c.Lines()[1].Quantity)
}

func TestSetQuantity(t *testing.T) {
	c, _ := newTestController(t)
	c.AddToCart(1, 2)

	c.SetQuantity(1, 7)
	assert.Equal(t, 7, c.Lines()[0].Quantity)

	// Zero and negative clamp to 1; removal is a separate operation.
	c.SetQuantity(1, 0)
	assert.Equal(t, 1, c.Lines()[0].Quantity)

	// Unknown id is a no-op.
	c.SetQuantity(999, 5)
	require.Len(t, c.Lines(), 1)
}

func TestRemoveFromCart(t *testing.T) {
	c, _ := newTestController(t)
	c.AddToCart(1, 1)
	c.AddToCart(3, 1)

	c.RemoveFromCart(1)

	require.Len(t, c.Lines(), 1)
	assert.Equal(t, int64(3), c.Lines()[0].ProductID)

	c.RemoveFromCart(3)
	assert.Empty(t, c.Lines())
}

func TestCartTotals(t *testing.T) {
	c, _ := newTestController(t)
	c.AddToCart(1, 2) // 2 x 450
	c.AddToCart(3, 3) // 3 x 60

	assert.Equal(t, 5, c.TotalCount())
	assert.Equal(t, int64(1080), c.TotalPrice())
}

func TestCart_PersistsAcrossReopen(t *testing.T) {
	dir := t.TempDir()
	ui := &fakeUI{}

	c := New("http://localhost:4000/api", OpenLocalStore(dir), ui)
	c.products = testCatalogue
	c.AddToCart(1, 2)
	c.AddToCart(3, 1)

	reopened := New("http://localhost:4000/api", OpenLocalStore(dir), ui)

	require.Len(t, reopened.Lines(), 2)
	assert.Equal(t, "Red Mug", reopened.Lines()[0].Name)
	assert.Equal(t, 2, reopened.Lines()[0].Quantity)
	assert.Equal(t, int64(960), reopened.TotalPrice())
}
