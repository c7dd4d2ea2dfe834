package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lumiere_back_end/internal/mockdata"
	"lumiere_back_end/internal/models"
)

func newTestAPI() *API {
	return New(mockdata.NewDataset(), WithLatencyUnit(0))
}

func TestGetProductBySlug(t *testing.T) {
	api := newTestAPI()
	ctx := context.Background()

	ref := api.ListProducts(ctx, 1, 1, nil).Data[0]

	found := api.GetProductBySlug(ctx, ref.Slug)
	require.NotNil(t, found)
	assert.Equal(t, ref.ID, found.ID)

	assert.Nil(t, api.GetProductBySlug(ctx, "slug-inconnu"))
	assert.Nil(t, api.GetProductByID(ctx, "prod-inconnu"))
}

func TestGetRelatedProducts(t *testing.T) {
	api := newTestAPI()
	ctx := context.Background()

	ref := api.ListProducts(ctx, 1, 1, nil).Data[0]
	related := api.GetRelatedProducts(ctx, ref.ID, 4)

	require.NotEmpty(t, related)
	assert.LessOrEqual(t, len(related), 4)
	for _, p := range related {
		assert.NotEqual(t, ref.ID, p.ID)
		assert.Equal(t, ref.Category.Slug, p.Category.Slug)
	}

	assert.Nil(t, api.GetRelatedProducts(ctx, "prod-inconnu", 4))
}

func TestSearchProducts(t *testing.T) {
	api := newTestAPI()
	ctx := context.Background()

	ref := api.ListProducts(ctx, 1, 1, nil).Data[0]
	results := api.SearchProducts(ctx, ref.Name)
	require.NotEmpty(t, results)

	assert.Empty(t, api.SearchProducts(ctx, "zzz-introuvable"))
}

func TestCreateAndUpdateProduct(t *testing.T) {
	api := newTestAPI()
	ctx := context.Background()

	created := api.CreateProduct(ctx, models.Product{
		Name:  "Huile de Nuit",
		Slug:  "huile-de-nuit",
		Price: 320,
	})
	require.NotEmpty(t, created.ID)
	assert.Contains(t, created.ID, "prod-")

	// Mise à jour partielle : seul le nom change
	name := "Huile de Nuit Régénérante"
	updated := api.UpdateProduct(ctx, created.ID, ProductUpdate{Name: &name})
	require.NotNil(t, updated)
	assert.Equal(t, name, updated.Name)
	assert.InDelta(t, 320, updated.Price, 1e-9)

	require.True(t, api.DeleteProduct(ctx, created.ID))
	assert.Nil(t, api.GetProductByID(ctx, created.ID))
	assert.False(t, api.DeleteProduct(ctx, created.ID))
}

func TestCreateOrderAssignsNumberAndPrepends(t *testing.T) {
	api := newTestAPI()
	ctx := context.Background()

	before := api.ListOrders(ctx, 1, 100)
	year := time.Now().Year()

	order := api.CreateOrder(ctx, models.Order{Subtotal: 500, Total: 600})
	assert.Equal(t, fmt.Sprintf("LB-%d-%04d", year, before.Total+1), order.OrderNumber)
	assert.Equal(t, models.OrderPending, order.Status)

	// La nouvelle commande passe en tête de liste
	after := api.ListOrders(ctx, 1, 100)
	require.Equal(t, before.Total+1, after.Total)
	assert.Equal(t, order.ID, after.Data[0].ID)

	found := api.GetOrderByNumber(ctx, order.OrderNumber)
	require.NotNil(t, found)
	assert.Equal(t, order.ID, found.ID)
}

func TestUpdateOrderStatusAndTracking(t *testing.T) {
	api := newTestAPI()
	ctx := context.Background()

	order := api.CreateOrder(ctx, models.Order{Total: 149})

	updated := api.UpdateOrderStatus(ctx, order.ID, models.OrderShipped)
	require.NotNil(t, updated)
	assert.Equal(t, models.OrderShipped, updated.Status)

	tracked := api.AddTracking(ctx, order.ID, "TRK-12345")
	require.NotNil(t, tracked)
	assert.Equal(t, "TRK-12345", tracked.TrackingNumber)

	assert.Nil(t, api.UpdateOrderStatus(ctx, "ord-inconnu", models.OrderShipped))
}

func TestUsers(t *testing.T) {
	api := newTestAPI()
	ctx := context.Background()

	users := api.ListUsers(ctx, 1, 100)
	require.NotEmpty(t, users.Data)

	ref := users.Data[0]
	phone := "+212 6 00 00 00 00"
	updated := api.UpdateUser(ctx, ref.ID, UserUpdate{Phone: &phone})
	require.NotNil(t, updated)
	assert.Equal(t, phone, updated.Phone)

	require.True(t, api.DeleteUser(ctx, ref.ID))
	assert.Nil(t, api.GetUserByID(ctx, ref.ID))
}

func TestDashboardStats(t *testing.T) {
	api := newTestAPI()
	stats := api.GetDashboardStats(context.Background())

	assert.Equal(t, 24, stats.TotalProducts)
	assert.Positive(t, stats.TotalOrders)
	assert.Positive(t, stats.TotalRevenue)
	assert.NotEmpty(t, stats.RecentOrders)
	assert.LessOrEqual(t, len(stats.RecentOrders), 5)
	assert.NotEmpty(t, stats.TopProducts)
}

func TestLatencyIsSimulated(t *testing.T) {
	api := New(mockdata.NewDataset(), WithLatencyUnit(time.Millisecond))

	start := time.Now()
	api.GetProductBySlug(context.Background(), "slug-inconnu")
	assert.GreaterOrEqual(t, time.Since(start), 3*time.Millisecond)
}

func TestLatencyHonorsContext(t *testing.T) {
	api := New(mockdata.NewDataset(), WithLatencyUnit(time.Hour))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	start := time.Now()
	api.GetProductBySlug(ctx, "slug-inconnu")
	assert.Less(t, time.Since(start), time.Second)
}
