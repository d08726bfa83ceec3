package models

import "github.com/shopspring/decimal"

type Product struct {
	ID            uint            `gorm:"primaryKey" json:"id"`
	Name          string          `json:"name" validate:"required"`
	Description   string          `json:"description"`
	Price         decimal.Decimal `gorm:"type:decimal(12,2)" json:"price"`
	StockQuantity int             `json:"stockQuantity"`

	CategoryMappings []ProductCategoryMap `gorm:"foreignKey:ProductID" json:"-"`
	OrderItems       []OrderItem          `gorm:"foreignKey:ProductID" json:"-"`

	// CategoryIDs is accepted on create/update requests and never persisted;
	// the mapping rows are the source of truth.
	CategoryIDs []uint `gorm:"-" json:"categoryIds,omitempty"`
	// Categories is filled from the mapping rows on read paths.
	Categories []ProductCategory `gorm:"-" json:"categories"`
}

// PopulateCategories flattens the eager-loaded mapping rows into the
// categories list the API exposes.
func (p *Product) PopulateCategories() {
	p.Categories = make([]ProductCategory, 0, len(p.CategoryMappings))
	for _, m := range p.CategoryMappings {
		if m.ProductCategory != nil {
			p.Categories = append(p.Categories, *m.ProductCategory)
		}
	}
}
