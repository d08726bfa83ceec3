package services

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"customers/db"
	"customers/models"
	"customers/repository"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	name := strings.ReplaceAll(t.Name(), "/", "_")
	database, err := db.Init(fmt.Sprintf("file:%s?mode=memory&cache=shared", name))
	require.NoError(t, err)
	return database
}

func d(v string) decimal.Decimal {
	return decimal.RequireFromString(v)
}

func TestOrderTotal(t *testing.T) {
	tests := []struct {
		name  string
		items []models.OrderItem
		want  decimal.Decimal
	}{
		{
			name: "no items",
			want: decimal.Zero,
		},
		{
			name: "single line",
			items: []models.OrderItem{
				{Quantity: 3, UnitPrice: d("19.99")},
			},
			want: d("59.97"),
		},
		{
			name: "multiple lines",
			items: []models.OrderItem{
				{Quantity: 2, UnitPrice: d("10.50")},
				{Quantity: 1, UnitPrice: d("0.01")},
			},
			want: d("21.01"),
		},
		{
			name: "exact decimal sum, no float drift",
			items: []models.OrderItem{
				{Quantity: 1, UnitPrice: d("0.10")},
				{Quantity: 1, UnitPrice: d("0.10")},
				{Quantity: 1, UnitPrice: d("0.10")},
			},
			want: d("0.30"),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := OrderTotal(tt.items)
			assert.True(t, tt.want.Equal(got), "want %s, got %s", tt.want, got)
			// Recomputation is idempotent.
			assert.True(t, got.Equal(OrderTotal(tt.items)))
		})
	}
}

func TestOrderServiceCreateComputesTotalAndDate(t *testing.T) {
	database := newTestDB(t)
	ctx := context.Background()
	orders := repository.NewGormOrderRepository(database)
	svc := NewOrderService(orders)

	order := &models.Order{
		CustomerID: 1,
		// TotalAmount deliberately wrong: it must be recomputed, not trusted.
		TotalAmount: d("999.99"),
		OrderItems: []models.OrderItem{
			{ProductID: 1, Quantity: 2, UnitPrice: d("19.99")},
			{ProductID: 2, Quantity: 1, UnitPrice: d("5.00")},
		},
	}
	require.NoError(t, svc.Create(ctx, order))
	assert.False(t, order.OrderDate.IsZero())
	assert.True(t, order.TotalAmount.Equal(d("44.98")), "got %s", order.TotalAmount)

	got, err := orders.FindByID(ctx, order.ID)
	require.NoError(t, err)
	assert.True(t, got.TotalAmount.Equal(d("44.98")), "got %s", got.TotalAmount)
}

func TestOrderServiceUpdateRecomputesTotal(t *testing.T) {
	database := newTestDB(t)
	ctx := context.Background()
	orders := repository.NewGormOrderRepository(database)
	svc := NewOrderService(orders)

	order := &models.Order{
		CustomerID: 1,
		OrderItems: []models.OrderItem{
			{ProductID: 1, Quantity: 1, UnitPrice: d("10.00")},
		},
	}
	require.NoError(t, svc.Create(ctx, order))

	updated := &models.Order{
		CustomerID: 1,
		OrderItems: []models.OrderItem{
			{ProductID: 1, Quantity: 3, UnitPrice: d("7.25")},
		},
	}
	require.NoError(t, svc.Update(ctx, order.ID, updated))

	got, err := orders.FindByID(ctx, order.ID)
	require.NoError(t, err)
	assert.True(t, got.TotalAmount.Equal(d("21.75")), "got %s", got.TotalAmount)
	require.Len(t, got.OrderItems, 1)
	assert.Equal(t, 3, got.OrderItems[0].Quantity)
}

func TestLatestPerCustomer(t *testing.T) {
	database := newTestDB(t)
	ctx := context.Background()
	orders := repository.NewGormOrderRepository(database)
	svc := NewOrderService(orders)

	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	seed := []models.Order{
		{CustomerID: 1, OrderDate: base},
		{CustomerID: 1, OrderDate: base.Add(48 * time.Hour)},
		{CustomerID: 1, OrderDate: base.Add(24 * time.Hour)},
		{CustomerID: 2, OrderDate: base},
	}
	for i := range seed {
		require.NoError(t, orders.Create(ctx, &seed[i]))
	}

	latest, err := svc.LatestPerCustomer(ctx)
	require.NoError(t, err)
	require.Len(t, latest, 2)

	byCustomer := make(map[uint]models.Order, len(latest))
	for _, order := range latest {
		_, dup := byCustomer[order.CustomerID]
		require.False(t, dup, "more than one row for customer %d", order.CustomerID)
		byCustomer[order.CustomerID] = order
	}
	assert.WithinDuration(t, base.Add(48*time.Hour), byCustomer[1].OrderDate, time.Second)
	assert.WithinDuration(t, base, byCustomer[2].OrderDate, time.Second)
}

func TestLatestPerCustomerEmpty(t *testing.T) {
	database := newTestDB(t)
	orders := repository.NewGormOrderRepository(database)
	svc := NewOrderService(orders)

	latest, err := svc.LatestPerCustomer(context.Background())
	require.NoError(t, err)
	assert.Empty(t, latest)
}
