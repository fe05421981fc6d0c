package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"   // placed, awaiting payment
	OrderStatusPaid      OrderStatus = "paid"      // payment recorded
	OrderStatusShipped   OrderStatus = "shipped"   // out for delivery
	OrderStatusCompleted OrderStatus = "completed" // received by the buyer
	OrderStatusCancelled OrderStatus = "cancelled" // cancelled before shipping
)

type Order struct {
	ID              uint            `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderNo         string          `gorm:"uniqueIndex;not null" json:"order_no"`
	UserID          uint            `gorm:"index;not null" json:"user_id"`
	User            User            `gorm:"foreignKey:UserID" json:"user"`
	Items           []OrderItem     `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	TotalAmount     decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"total_amount"`
	Status          OrderStatus     `gorm:"type:VARCHAR(20);default:'pending'" json:"status"`
	ShippingAddress string          `json:"shipping_address"`
	RecipientName   string          `json:"recipient_name"`
	RecipientPhone  string          `json:"recipient_phone"`
	Notes           string          `json:"notes"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// OrderItem snapshots product name and price at purchase time; later catalog
// edits never touch committed orders.
type OrderItem struct {
	ID          uint            `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID     uint            `gorm:"index;not null" json:"order_id"`
	ProductID   uint            `gorm:"not null" json:"product_id"`
	ProductName string          `gorm:"not null" json:"product_name"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	Quantity    int             `gorm:"not null" json:"quantity"`
	Subtotal    decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"subtotal"`
}
