package repository

import (
	"context"
	"testing"
	"time"

	"customers/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestOrderUpdateReplacesItems(t *testing.T) {
	database := newTestDB(t)
	ctx := context.Background()
	orders := NewGormOrderRepository(database)

	order := &models.Order{
		CustomerID:  1,
		OrderDate:   time.Now(),
		TotalAmount: d("30.00"),
		OrderItems: []models.OrderItem{
			{ProductID: 1, Quantity: 2, UnitPrice: d("10.00")},
			{ProductID: 2, Quantity: 1, UnitPrice: d("10.00")},
		},
	}
	require.NoError(t, orders.Create(ctx, order))
	require.NotZero(t, order.ID)

	updated := &models.Order{
		CustomerID:  1,
		OrderDate:   order.OrderDate,
		TotalAmount: d("5.00"),
		OrderItems: []models.OrderItem{
			{ProductID: 3, Quantity: 5, UnitPrice: d("1.00")},
		},
	}
	require.NoError(t, orders.Update(ctx, order.ID, updated))

	got, err := orders.FindByID(ctx, order.ID)
	require.NoError(t, err)
	require.Len(t, got.OrderItems, 1)
	assert.Equal(t, uint(3), got.OrderItems[0].ProductID)
	assert.Equal(t, 5, got.OrderItems[0].Quantity)
	assert.True(t, got.TotalAmount.Equal(d("5.00")), "got %s", got.TotalAmount)

	// The old items are gone, not orphaned.
	var count int64
	require.NoError(t, database.Model(&models.OrderItem{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestOrderUpdateMissing(t *testing.T) {
	database := newTestDB(t)
	orders := NewGormOrderRepository(database)

	err := orders.Update(context.Background(), 999, &models.Order{CustomerID: 1})
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestOrderDeleteCascadesItems(t *testing.T) {
	database := newTestDB(t)
	ctx := context.Background()
	orders := NewGormOrderRepository(database)

	order := &models.Order{
		CustomerID:  1,
		OrderDate:   time.Now(),
		TotalAmount: d("20.00"),
		OrderItems: []models.OrderItem{
			{ProductID: 1, Quantity: 2, UnitPrice: d("10.00")},
		},
	}
	require.NoError(t, orders.Create(ctx, order))
	require.NoError(t, orders.Delete(ctx, order.ID))

	for i := 0; i < 2; i++ {
		_, err := orders.FindByID(ctx, order.ID)
		require.ErrorIs(t, err, gorm.ErrRecordNotFound)
	}

	var count int64
	require.NoError(t, database.Model(&models.OrderItem{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestCustomerUpdateIsFullReplace(t *testing.T) {
	database := newTestDB(t)
	ctx := context.Background()
	customers := NewGormCustomerRepository(database)

	customer := &models.Customer{Name: "Alice", Email: "alice@example.com", Phone: "111"}
	require.NoError(t, customers.Create(ctx, customer))

	// Omitted fields overwrite with their zero value, no merging.
	require.NoError(t, customers.Update(ctx, customer.ID, &models.Customer{Name: "Alice Smith"}))

	got, err := customers.FindByID(ctx, customer.ID)
	require.NoError(t, err)
	assert.Equal(t, "Alice Smith", got.Name)
	assert.Empty(t, got.Email)
	assert.Empty(t, got.Phone)
}
