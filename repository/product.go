package repository

import (
	"context"
	"errors"

	"customers/models"

	"gorm.io/gorm"
)

// ProductRepository defines the interface for product data access, including
// the category mapping synchronization that rides along with every create
// and update.
type ProductRepository interface {
	FindAll(ctx context.Context) ([]models.Product, error)
	FindByID(ctx context.Context, id uint) (*models.Product, error)
	FindPaged(ctx context.Context, page, pageSize int, search string) ([]models.Product, int64, error)
	Create(ctx context.Context, product *models.Product) error
	Update(ctx context.Context, id uint, updated *models.Product) error
	Delete(ctx context.Context, id uint) error
}

// GormProductRepository implements ProductRepository using GORM.
type GormProductRepository struct {
	db *gorm.DB
}

func NewGormProductRepository(db *gorm.DB) ProductRepository {
	return &GormProductRepository{db: db}
}

func (r *GormProductRepository) FindAll(ctx context.Context) ([]models.Product, error) {
	products := make([]models.Product, 0)
	if err := r.db.WithContext(ctx).
		Preload("CategoryMappings.ProductCategory").
		Find(&products).Error; err != nil {
		return nil, err
	}
	for i := range products {
		products[i].PopulateCategories()
	}
	return products, nil
}

func (r *GormProductRepository) FindByID(ctx context.Context, id uint) (*models.Product, error) {
	var product models.Product
	if err := r.db.WithContext(ctx).
		Preload("CategoryMappings.ProductCategory").
		First(&product, id).Error; err != nil {
		return nil, err
	}
	product.PopulateCategories()
	return &product, nil
}

// FindPaged applies the name filter, counts the matches, then skips
// (page-1)*pageSize rows and takes pageSize of them with categories loaded.
func (r *GormProductRepository) FindPaged(ctx context.Context, page, pageSize int, search string) ([]models.Product, int64, error) {
	var total int64

	counted := r.db.WithContext(ctx).Model(&models.Product{})
	if search != "" {
		counted = counted.Where("name LIKE ?", "%"+search+"%")
	}
	if err := counted.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	products := make([]models.Product, 0)
	query := r.db.WithContext(ctx).Preload("CategoryMappings.ProductCategory")
	if search != "" {
		query = query.Where("name LIKE ?", "%"+search+"%")
	}
	if err := query.
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&products).Error; err != nil {
		return nil, 0, err
	}
	for i := range products {
		products[i].PopulateCategories()
	}
	return products, total, nil
}

func (r *GormProductRepository) Create(ctx context.Context, product *models.Product) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(product).Error; err != nil {
			return err
		}
		return createMappings(tx, product.ID, product.CategoryIDs)
	})
	if err != nil {
		return err
	}
	return r.reloadCategories(ctx, product)
}

// Update overwrites the product fields and fully replaces the category
// mappings: every existing row is deleted and one row per requested id is
// recreated, regardless of overlap with the old set.
func (r *GormProductRepository) Update(ctx context.Context, id uint, updated *models.Product) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing models.Product
		if err := tx.First(&existing, id).Error; err != nil {
			return err
		}
		existing.Name = updated.Name
		existing.Description = updated.Description
		existing.Price = updated.Price
		existing.StockQuantity = updated.StockQuantity
		if err := tx.Save(&existing).Error; err != nil {
			return err
		}

		if err := tx.Where("product_id = ?", id).
			Delete(&models.ProductCategoryMap{}).Error; err != nil {
			return err
		}
		return createMappings(tx, id, updated.CategoryIDs)
	})
}

// Delete removes the product and its mapping rows. The categories on the
// other side of the mappings are left untouched.
func (r *GormProductRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var product models.Product
		if err := tx.First(&product, id).Error; err != nil {
			return err
		}
		if err := tx.Where("product_id = ?", id).
			Delete(&models.ProductCategoryMap{}).Error; err != nil {
			return err
		}
		return tx.Delete(&product).Error
	})
}

func createMappings(tx *gorm.DB, productID uint, categoryIDs []uint) error {
	for _, catID := range categoryIDs {
		var category models.ProductCategory
		if err := tx.First(&category, catID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrCategoryNotFound
			}
			return err
		}
		mapping := models.ProductCategoryMap{
			ProductID:         productID,
			ProductCategoryID: catID,
		}
		if err := tx.Create(&mapping).Error; err != nil {
			return err
		}
	}
	return nil
}

// reloadCategories refreshes the derived categories list after a create so
// the response body carries the mapped categories.
func (r *GormProductRepository) reloadCategories(ctx context.Context, product *models.Product) error {
	mappings := make([]models.ProductCategoryMap, 0)
	if err := r.db.WithContext(ctx).
		Preload("ProductCategory").
		Where("product_id = ?", product.ID).
		Find(&mappings).Error; err != nil {
		return err
	}
	product.CategoryMappings = mappings
	product.PopulateCategories()
	return nil
}
