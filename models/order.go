package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order is a customer purchase. TotalAmount is derived from the line
// snapshots when the order is created and never recomputed afterwards.
type Order struct {
	ID           uint             `gorm:"primaryKey" json:"id"`
	CustomerName string           `gorm:"size:256;not null" json:"customer_name"`
	PhoneNumber  string           `gorm:"size:32;not null" json:"phone_number"`
	IsDelivery   bool             `json:"is_delivery"`
	Address      string           `json:"address"`
	TotalAmount  decimal.Decimal  `gorm:"type:decimal(10,2);not null" json:"total_amount"`
	CreatedAt    time.Time        `json:"created_at"`
	OrderedItems []OrderedProduct `gorm:"foreignKey:OrderID" json:"ordered_items"`
}

func (o *Order) TableName() string {
	return "orders"
}

// OrderedProduct is a point-in-time line snapshot. PriceAtTimeOfOrder is
// written once and does not follow later catalog price changes.
type OrderedProduct struct {
	ID                 uint            `gorm:"primaryKey" json:"id"`
	OrderID            uint            `gorm:"index;not null" json:"order_id"`
	ProductName        string          `gorm:"size:256;not null" json:"product_name"`
	Quantity           int             `gorm:"not null" json:"quantity"`
	PriceAtTimeOfOrder decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price_at_time_of_order"`
}

func (p *OrderedProduct) TableName() string {
	return "ordered_products"
}
