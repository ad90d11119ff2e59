package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/localshop/localshop/app/models"
	"github.com/localshop/localshop/internal/store"
	"github.com/localshop/localshop/pkg/storage"
)

func newTestService(t *testing.T) *ShopService {
	t.Helper()
	st := store.New(storage.NewLocalDisk(t.TempDir(), ""), "data")
	svc := NewShopService(st)
	svc.cacheTTL = 0
	svc.now = func() time.Time {
		return time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)
	}
	return svc
}

func seedCatalogue(t *testing.T, svc *ShopService) {
	t.Helper()
	require.NoError(t, svc.store.SeedProducts(true))
}

func TestAllProducts_EmptyStore(t *testing.T) {
	svc := newTestService(t)
	assert.Empty(t, svc.AllProducts())
}

func TestProductByID(t *testing.T) {
	svc := newTestService(t)
	seedCatalogue(t, svc)

	p, err := svc.ProductByID(3)
	require.NoError(t, err)
	assert.Equal(t, "Blue Pen", p.Name)

	_, err = svc.ProductByID(999)
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestProductByID_EmptyCatalogue(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.ProductByID(1)
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestSubmitOrder_RejectsEmptyItems(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.SubmitOrder(context.Background(), models.CheckoutRequest{})
	assert.ErrorIs(t, err, ErrOrderWithoutItems)

	_, err = svc.SubmitOrder(context.Background(), models.CheckoutRequest{
		Items: []models.OrderItem{},
		Total: 500,
	})
	assert.ErrorIs(t, err, ErrOrderWithoutItems)
}

func TestSubmitOrder_AssignsSequentialIDs(t *testing.T) {
	svc := newTestService(t)

	req := models.CheckoutRequest{
		Items: []models.OrderItem{{ProductID: 1, Name: "Red Mug", Price: 450, Quantity: 1}},
	}

	id, err := svc.SubmitOrder(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)

	id, err = svc.SubmitOrder(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, int64(2), id)
}

func TestSubmitOrder_IDIsMaxPlusOne(t *testing.T) {
	svc := newTestService(t)

	require.NoError(t, svc.store.SaveOrders([]models.Order{{ID: 41}, {ID: 7}}))

	id, err := svc.SubmitOrder(context.Background(), models.CheckoutRequest{
		Items: []models.OrderItem{{ProductID: 1, Price: 100, Quantity: 1}},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)
}

func TestSubmitOrder_ComputesTotalFromItems(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.SubmitOrder(context.Background(), models.CheckoutRequest{
		Items: []models.OrderItem{
			{ProductID: 1, Price: 100, Quantity: 2},
			{ProductID: 3, Price: 50, Quantity: 1},
		},
	})
	require.NoError(t, err)

	orders := svc.AllOrders()
	require.Len(t, orders, 1)
	assert.Equal(t, int64(250), orders[0].Total)
}

func TestSubmitOrder_KeepsClientTotal(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.SubmitOrder(context.Background(), models.CheckoutRequest{
		Items: []models.OrderItem{{ProductID: 1, Price: 100, Quantity: 2}},
		Total: 999,
	})
	require.NoError(t, err)

	orders := svc.AllOrders()
	require.Len(t, orders, 1)
	assert.Equal(t, int64(999), orders[0].Total)
}

func TestSubmitOrder_StampsCreationTime(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.SubmitOrder(context.Background(), models.CheckoutRequest{
		Items:    []models.OrderItem{{ProductID: 1, Price: 100, Quantity: 1}},
		Customer: models.Customer{Name: "Ayesha", Phone: "0300-0000000"},
	})
	require.NoError(t, err)

	orders := svc.AllOrders()
	require.Len(t, orders, 1)
	assert.Equal(t, time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC), orders[0].CreatedAt)
	assert.Equal(t, "Ayesha", orders[0].Customer.Name)
}

type brokenDisk struct{}

func (brokenDisk) Put(string, []byte) error  { return errors.New("disk full") }
func (brokenDisk) Get(string) ([]byte, error) { return nil, errors.New("disk gone") }
func (brokenDisk) Exists(string) bool         { return false }
func (brokenDisk) Delete(string) error        { return nil }
func (brokenDisk) URL(string) string          { return "" }

func TestSubmitOrder_SaveFailure(t *testing.T) {
	svc := newTestService(t)
	svc.store = store.New(brokenDisk{}, "data")

	_, err := svc.SubmitOrder(context.Background(), models.CheckoutRequest{
		Items: []models.OrderItem{{ProductID: 1, Price: 100, Quantity: 1}},
	})
	assert.ErrorIs(t, err, ErrSaveOrder)
}

func TestPing(t *testing.T) {
	svc := newTestService(t)
	assert.Equal(t, time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC), svc.Ping())
}
