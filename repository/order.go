package repository

import (
	"context"

	"customers/models"

	"gorm.io/gorm"
)

// OrderRepository defines the interface for order data access. Orders own
// their items: items are written and removed together with the order in one
// unit of work.
type OrderRepository interface {
	FindAll(ctx context.Context, includeRelations bool) ([]models.Order, error)
	FindByID(ctx context.Context, id uint) (*models.Order, error)
	Create(ctx context.Context, order *models.Order) error
	Update(ctx context.Context, id uint, updated *models.Order) error
	Delete(ctx context.Context, id uint) error
}

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db *gorm.DB
}

func NewGormOrderRepository(db *gorm.DB) OrderRepository {
	return &GormOrderRepository{db: db}
}

func (r *GormOrderRepository) FindAll(ctx context.Context, includeRelations bool) ([]models.Order, error) {
	orders := make([]models.Order, 0)
	query := r.db.WithContext(ctx)
	if includeRelations {
		query = query.Preload("Customer").Preload("OrderItems.Product")
	}
	if err := query.Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *GormOrderRepository) FindByID(ctx context.Context, id uint) (*models.Order, error) {
	var order models.Order
	if err := r.db.WithContext(ctx).
		Preload("Customer").
		Preload("OrderItems.Product").
		First(&order, id).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *GormOrderRepository) Create(ctx context.Context, order *models.Order) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		items := order.OrderItems
		order.OrderItems = nil
		if err := tx.Create(order).Error; err != nil {
			return err
		}
		for i := range items {
			items[i].ID = 0
			items[i].OrderID = order.ID
			items[i].Product = nil
			if err := tx.Create(&items[i]).Error; err != nil {
				return err
			}
		}
		order.OrderItems = items
		return nil
	})
}

// Update overwrites the order fields and replaces the item collection
// wholesale before the caller-recomputed total is persisted.
func (r *GormOrderRepository) Update(ctx context.Context, id uint, updated *models.Order) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing models.Order
		if err := tx.First(&existing, id).Error; err != nil {
			return err
		}
		existing.CustomerID = updated.CustomerID
		existing.OrderDate = updated.OrderDate
		existing.TotalAmount = updated.TotalAmount
		if err := tx.Save(&existing).Error; err != nil {
			return err
		}

		if err := tx.Where("order_id = ?", id).
			Delete(&models.OrderItem{}).Error; err != nil {
			return err
		}
		for i := range updated.OrderItems {
			item := updated.OrderItems[i]
			item.ID = 0
			item.OrderID = id
			item.Product = nil
			if err := tx.Create(&item).Error; err != nil {
				return err
			}
			updated.OrderItems[i] = item
		}
		return nil
	})
}

func (r *GormOrderRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var order models.Order
		if err := tx.First(&order, id).Error; err != nil {
			return err
		}
		if err := tx.Where("order_id = ?", id).
			Delete(&models.OrderItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&order).Error
	})
}
