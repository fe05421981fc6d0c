package shopControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/syxhsssss/pet-management-system/models"
)

type ProductInput struct {
	Name        string          `json:"name" binding:"required"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price" binding:"required"`
	Stock       int             `json:"stock"`
	Images      interface{}     `json:"images"`
	Tags        string          `json:"tags"`
	Status      string          `json:"status"`
}

// GET /api/shop/products
func GetAllProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := db.Where("status = ?", models.ProductStatusActive)

		if category := c.Query("category"); category != "" {
			query = query.Where("category = ?", category)
		}
		if search := c.Query("search"); search != "" {
			like := "%" + search + "%"
			query = query.Where("name LIKE ? OR description LIKE ? OR tags LIKE ?", like, like, like)
		}

		switch c.DefaultQuery("sort", "sales") {
		case "price_asc":
			query = query.Order("price ASC")
		case "price_desc":
			query = query.Order("price DESC")
		case "rating":
			query = query.Order("rating DESC")
		default:
			query = query.Order("sales DESC")
		}

		var products []models.Product
		if err := query.Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch products"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "data": products})
	}
}

// GET /api/shop/products/:id
func GetProductByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var product models.Product
		if err := db.First(&product, "id = ?", c.Param("id")).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Product not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch product"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "data": product})
	}
}

// POST /api/admin/products
func CreateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input ProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid input", "error": err.Error()})
			return
		}
		if input.Price.IsNegative() {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Price cannot be negative"})
			return
		}
		if input.Stock < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Stock cannot be negative"})
			return
		}

		images, err := models.NormalizePhotos(input.Images)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid images field", "error": err.Error()})
			return
		}

		product := models.Product{
			Name:        input.Name,
			Category:    input.Category,
			Description: input.Description,
			Price:       input.Price,
			Stock:       input.Stock,
			Images:      images,
			Tags:        input.Tags,
			Status:      models.ProductStatusActive,
		}
		if err := db.Create(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to create product"})
			return
		}
		c.JSON(http.StatusCreated, gin.H{"success": true, "message": "Product created", "data": gin.H{"id": product.ID}})
	}
}

// PUT /api/admin/products/:id
func UpdateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var product models.Product
		if err := db.First(&product, "id = ?", c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Product not found"})
			return
		}

		var input ProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid input", "error": err.Error()})
			return
		}
		if input.Price.IsNegative() || input.Stock < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Price and stock cannot be negative"})
			return
		}

		images, err := models.NormalizePhotos(input.Images)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid images field", "error": err.Error()})
			return
		}

		product.Name = input.Name
		product.Category = input.Category
		product.Description = input.Description
		product.Price = input.Price
		product.Stock = input.Stock
		product.Images = images
		product.Tags = input.Tags
		if input.Status != "" {
			status := models.ProductStatus(input.Status)
			if !validProductStatus(status) {
				c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid status value"})
				return
			}
			product.Status = status
		}

		if err := db.Save(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to update product"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Product updated"})
	}
}

// DELETE /api/admin/products/:id
//
// Soft delete: committed orders keep referencing the row, so the product is
// only flagged inactive.
func DeleteProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		result := db.Model(&models.Product{}).
			Where("id = ?", c.Param("id")).
			Update("status", models.ProductStatusInactive)
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to delete product"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Product not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Product deleted"})
	}
}

func validProductStatus(s models.ProductStatus) bool {
	switch s {
	case models.ProductStatusActive, models.ProductStatusInactive:
		return true
	}
	return false
}
