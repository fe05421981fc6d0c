package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type ProductStatus string

const (
	ProductStatusActive   ProductStatus = "active"
	ProductStatusInactive ProductStatus = "inactive"
)

type Product struct {
	ID          uint            `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string          `gorm:"not null" json:"name"`
	Category    string          `gorm:"index" json:"category"`
	Description string          `json:"description"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	Stock       int             `gorm:"default:0" json:"stock"`
	Sales       int             `gorm:"default:0" json:"sales"`
	Rating      float64         `gorm:"default:0" json:"rating"`
	Images      PhotoList       `gorm:"type:text" json:"images"`
	Tags        string          `json:"tags"`
	Status      ProductStatus   `gorm:"type:VARCHAR(20);default:'active'" json:"status"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// CartItem is unique per (user, product); re-adding the same product
// increments quantity instead of duplicating the row.
type CartItem struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    uint      `gorm:"uniqueIndex:idx_cart_user_product;not null" json:"user_id"`
	ProductID uint      `gorm:"uniqueIndex:idx_cart_user_product;not null" json:"product_id"`
	Quantity  int       `gorm:"not null" json:"quantity"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
