package shopControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/syxhsssss/pet-management-system/middleware"
	"github.com/syxhsssss/pet-management-system/models"
)

type AddToCartRequest struct {
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  int  `json:"quantity"`
}

type UpdateCartItemRequest struct {
	Quantity int `json:"quantity" binding:"required,min=1"`
}

// CartEntry is a cart row joined with the live product fields the
// storefront renders next to it.
type CartEntry struct {
	models.CartItem
	Name   string           `json:"name"`
	Price  decimal.Decimal  `json:"price"`
	Stock  int              `json:"stock"`
	Images models.PhotoList `json:"images"`
}

// GET /api/shop/cart
func GetCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, _ := middleware.CurrentUserID(c)

		var entries []CartEntry
		if err := db.Model(&models.CartItem{}).
			Select("cart_items.*, products.name, products.price, products.stock, products.images").
			Joins("LEFT JOIN products ON products.id = cart_items.product_id").
			Where("cart_items.user_id = ?", userID).
			Scan(&entries).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch cart"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "data": entries})
	}
}

// POST /api/shop/cart
//
// Re-adding a product the user already has increments its quantity instead
// of creating a second row.
func AddToCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, _ := middleware.CurrentUserID(c)

		var req AddToCartRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid input", "error": err.Error()})
			return
		}
		if req.Quantity == 0 {
			req.Quantity = 1
		}
		if req.Quantity < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Quantity must be at least 1"})
			return
		}

		var product models.Product
		err := db.Where("id = ? AND status = ?", req.ProductID, models.ProductStatusActive).First(&product).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Product not found"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to add to cart"})
			return
		}
		if product.Stock < req.Quantity {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Insufficient stock"})
			return
		}

		var item models.CartItem
		err = db.Where("user_id = ? AND product_id = ?", userID, req.ProductID).First(&item).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			item = models.CartItem{UserID: userID, ProductID: req.ProductID, Quantity: req.Quantity}
			if err := db.Create(&item).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to add to cart"})
				return
			}
			c.JSON(http.StatusOK, gin.H{"success": true, "message": "Added to cart"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to add to cart"})
			return
		}

		if err := db.Model(&item).UpdateColumn("quantity", gorm.Expr("quantity + ?", req.Quantity)).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to update cart"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Added to cart"})
	}
}

// PUT /api/shop/cart/:id
func UpdateCartItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, _ := middleware.CurrentUserID(c)

		var req UpdateCartItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Quantity must be at least 1"})
			return
		}

		result := db.Model(&models.CartItem{}).
			Where("id = ? AND user_id = ?", c.Param("id"), userID).
			Update("quantity", req.Quantity)
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to update cart"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Cart item not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Cart updated"})
	}
}

// DELETE /api/shop/cart/:id
func RemoveFromCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, _ := middleware.CurrentUserID(c)

		result := db.Where("id = ? AND user_id = ?", c.Param("id"), userID).Delete(&models.CartItem{})
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to remove cart item"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Cart item not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Cart item removed"})
	}
}
