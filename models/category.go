package models

type ProductCategory struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `json:"name" validate:"required"`

	ProductMappings []ProductCategoryMap `gorm:"foreignKey:ProductCategoryID" json:"-"`
}

func (ProductCategory) TableName() string {
	return "product_categories"
}

// ProductCategoryMap is the explicit join row between a product and a
// category. Both sides share the row; neither owns the other entity.
type ProductCategoryMap struct {
	ProductID         uint `gorm:"primaryKey;autoIncrement:false" json:"productId"`
	ProductCategoryID uint `gorm:"primaryKey;autoIncrement:false" json:"productCategoryId"`

	Product         *Product         `gorm:"foreignKey:ProductID" json:"-"`
	ProductCategory *ProductCategory `gorm:"foreignKey:ProductCategoryID" json:"productCategory,omitempty"`
}

func (ProductCategoryMap) TableName() string {
	return "product_category_maps"
}
