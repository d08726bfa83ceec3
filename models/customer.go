package models

type Customer struct {
	ID     uint    `gorm:"primaryKey" json:"id"`
	Name   string  `json:"name" validate:"required"`
	Email  string  `json:"email"`
	Phone  string  `json:"phone"`
	Orders []Order `gorm:"foreignKey:CustomerID" json:"orders,omitempty"`
}
