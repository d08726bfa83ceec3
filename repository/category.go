package repository

import (
	"context"

	"customers/models"

	"gorm.io/gorm"
)

// CategoryRepository defines the interface for product category data access.
type CategoryRepository interface {
	FindAll(ctx context.Context) ([]models.ProductCategory, error)
	FindByID(ctx context.Context, id uint) (*models.ProductCategory, error)
	Create(ctx context.Context, category *models.ProductCategory) error
	Update(ctx context.Context, id uint, updated *models.ProductCategory) error
	Delete(ctx context.Context, id uint) error
}

// GormCategoryRepository implements CategoryRepository using GORM.
type GormCategoryRepository struct {
	db *gorm.DB
}

func NewGormCategoryRepository(db *gorm.DB) CategoryRepository {
	return &GormCategoryRepository{db: db}
}

func (r *GormCategoryRepository) FindAll(ctx context.Context) ([]models.ProductCategory, error) {
	categories := make([]models.ProductCategory, 0)
	if err := r.db.WithContext(ctx).Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *GormCategoryRepository) FindByID(ctx context.Context, id uint) (*models.ProductCategory, error) {
	var category models.ProductCategory
	if err := r.db.WithContext(ctx).First(&category, id).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *GormCategoryRepository) Create(ctx context.Context, category *models.ProductCategory) error {
	return r.db.WithContext(ctx).Create(category).Error
}

func (r *GormCategoryRepository) Update(ctx context.Context, id uint, updated *models.ProductCategory) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing models.ProductCategory
		if err := tx.First(&existing, id).Error; err != nil {
			return err
		}
		existing.Name = updated.Name
		return tx.Save(&existing).Error
	})
}

// Delete removes the category together with its mapping rows. The mapped
// products themselves are left untouched.
func (r *GormCategoryRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var category models.ProductCategory
		if err := tx.First(&category, id).Error; err != nil {
			return err
		}
		if err := tx.Where("product_category_id = ?", id).
			Delete(&models.ProductCategoryMap{}).Error; err != nil {
			return err
		}
		return tx.Delete(&category).Error
	})
}
