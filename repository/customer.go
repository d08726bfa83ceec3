package repository

import (
	"context"

	"customers/models"

	"gorm.io/gorm"
)

// CustomerRepository defines the interface for customer data access.
type CustomerRepository interface {
	FindAll(ctx context.Context) ([]models.Customer, error)
	FindByID(ctx context.Context, id uint) (*models.Customer, error)
	Create(ctx context.Context, customer *models.Customer) error
	Update(ctx context.Context, id uint, updated *models.Customer) error
	Delete(ctx context.Context, id uint) error
}

// GormCustomerRepository implements CustomerRepository using GORM.
type GormCustomerRepository struct {
	db *gorm.DB
}

func NewGormCustomerRepository(db *gorm.DB) CustomerRepository {
	return &GormCustomerRepository{db: db}
}

func (r *GormCustomerRepository) FindAll(ctx context.Context) ([]models.Customer, error) {
	customers := make([]models.Customer, 0)
	if err := r.db.WithContext(ctx).Find(&customers).Error; err != nil {
		return nil, err
	}
	return customers, nil
}

func (r *GormCustomerRepository) FindByID(ctx context.Context, id uint) (*models.Customer, error) {
	var customer models.Customer
	if err := r.db.WithContext(ctx).First(&customer, id).Error; err != nil {
		return nil, err
	}
	return &customer, nil
}

func (r *GormCustomerRepository) Create(ctx context.Context, customer *models.Customer) error {
	return r.db.WithContext(ctx).Create(customer).Error
}

// Update overwrites every mutable field (full replace, not merge).
func (r *GormCustomerRepository) Update(ctx context.Context, id uint, updated *models.Customer) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing models.Customer
		if err := tx.First(&existing, id).Error; err != nil {
			return err
		}
		existing.Name = updated.Name
		existing.Email = updated.Email
		existing.Phone = updated.Phone
		return tx.Save(&existing).Error
	})
}

func (r *GormCustomerRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var customer models.Customer
		if err := tx.First(&customer, id).Error; err != nil {
			return err
		}
		return tx.Delete(&customer).Error
	})
}
