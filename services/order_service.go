package services

import (
	"context"
	"time"

	"customers/models"
	"customers/repository"

	"github.com/shopspring/decimal"
)

// OrderTotal returns the exact decimal sum of quantity × unitPrice over the
// given items. It is recomputed in full on every create and update, never
// incrementally.
func OrderTotal(items []models.OrderItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return total
}

// OrderService wraps the order gateway with the domain rules: totals are
// always derived from the item collection, and orderDate defaults to the
// time of the request when the payload omits it.
type OrderService struct {
	orders repository.OrderRepository
}

func NewOrderService(orders repository.OrderRepository) *OrderService {
	return &OrderService{orders: orders}
}

func (s *OrderService) Create(ctx context.Context, order *models.Order) error {
	if order.OrderDate.IsZero() {
		order.OrderDate = time.Now()
	}
	order.TotalAmount = OrderTotal(order.OrderItems)
	return s.orders.Create(ctx, order)
}

func (s *OrderService) Update(ctx context.Context, id uint, order *models.Order) error {
	if order.OrderDate.IsZero() {
		order.OrderDate = time.Now()
	}
	order.TotalAmount = OrderTotal(order.OrderItems)
	return s.orders.Update(ctx, id, order)
}

// LatestPerCustomer returns one order per customer that has at least one
// order: the one with the maximum orderDate. The whole order set is grouped
// in memory; ties keep the first order encountered, so callers must not
// assume a deterministic tie-break or result ordering.
func (s *OrderService) LatestPerCustomer(ctx context.Context) ([]models.Order, error) {
	orders, err := s.orders.FindAll(ctx, false)
	if err != nil {
		return nil, err
	}

	latest := make(map[uint]models.Order, len(orders))
	for _, order := range orders {
		current, ok := latest[order.CustomerID]
		if !ok || order.OrderDate.After(current.OrderDate) {
			latest[order.CustomerID] = order
		}
	}

	result := make([]models.Order, 0, len(latest))
	for _, order := range latest {
		result = append(result, order)
	}
	return result, nil
}
