package models

import (
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// The frontend expects plain JSON numbers for money fields.
	decimal.MarshalJSONWithoutQuotes = true
}

type Order struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	CustomerID  uint            `json:"customerId"`
	OrderDate   time.Time       `json:"orderDate"`
	TotalAmount decimal.Decimal `gorm:"type:decimal(12,2)" json:"totalAmount"`

	Customer   *Customer   `gorm:"foreignKey:CustomerID" json:"customer,omitempty" validate:"-"`
	OrderItems []OrderItem `gorm:"foreignKey:OrderID" json:"orderItems" validate:"dive"`
}

type OrderItem struct {
	ID        uint            `gorm:"primaryKey" json:"id"`
	OrderID   uint            `json:"orderId"`
	ProductID uint            `json:"productId"`
	Quantity  int             `json:"quantity" validate:"required,min=1"`
	UnitPrice decimal.Decimal `gorm:"type:decimal(12,2)" json:"unitPrice"`
	Product   *Product        `gorm:"foreignKey:ProductID" json:"product,omitempty" validate:"-"`
}
