package shopControllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/syxhsssss/pet-management-system/middleware"
	"github.com/syxhsssss/pet-management-system/models"
)

var (
	ErrEmptyOrder      = errors.New("order has no items")
	ErrInvalidQuantity = errors.New("quantity must be at least 1")
	ErrProductNotFound = errors.New("product not found")
	ErrOutOfStock      = errors.New("insufficient stock")
)

type OrderLine struct {
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  int  `json:"quantity" binding:"required"`
}

type PlaceOrderRequest struct {
	Items           []OrderLine `json:"items"`
	ShippingAddress string      `json:"shipping_address" binding:"required"`
	RecipientName   string      `json:"recipient_name" binding:"required"`
	RecipientPhone  string      `json:"recipient_phone" binding:"required"`
	Notes           string      `json:"notes"`
}

// generateOrderNo builds a globally unique, roughly time-sorted order number:
// PET + unix milliseconds + 6 hex chars.
func generateOrderNo() string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:6])
	return "PET" + strconv.FormatInt(time.Now().UnixMilli(), 10) + suffix
}

// PlaceOrder converts a list of (product, quantity) lines into a durable
// order. Everything runs in one transaction: per-line price/name snapshot,
// stock decrement, sales increment, order header, order items, and cart
// cleanup either all commit or none do.
//
// The stock check and decrement are a single conditional UPDATE guarded by
// `stock >= quantity` with a RowsAffected check, so two concurrent orders
// can never both drain the same last units. A product id appearing twice in
// the request is two independent lines; each applies its own guarded
// decrement, which still checks the combined quantity against stock.
func PlaceOrder(db *gorm.DB, userID uint, req PlaceOrderRequest) (*models.Order, error) {
	if len(req.Items) == 0 {
		return nil, ErrEmptyOrder
	}
	for _, line := range req.Items {
		if line.Quantity < 1 {
			return nil, fmt.Errorf("%w: product %d", ErrInvalidQuantity, line.ProductID)
		}
	}

	var order models.Order
	err := db.Transaction(func(tx *gorm.DB) error {
		total := decimal.Zero
		items := make([]models.OrderItem, 0, len(req.Items))
		productIDs := make([]uint, 0, len(req.Items))

		for _, line := range req.Items {
			// Snapshot name and price at this instant; later catalog edits
			// must not alter this order.
			var product models.Product
			err := tx.Where("id = ? AND status = ?", line.ProductID, models.ProductStatusActive).
				First(&product).Error
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: product %d", ErrProductNotFound, line.ProductID)
			}
			if err != nil {
				return err
			}

			result := tx.Model(&models.Product{}).
				Where("id = ? AND stock >= ?", product.ID, line.Quantity).
				Updates(map[string]interface{}{
					"stock": gorm.Expr("stock - ?", line.Quantity),
					"sales": gorm.Expr("sales + ?", line.Quantity),
				})
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				return fmt.Errorf("%w: %s", ErrOutOfStock, product.Name)
			}

			subtotal := product.Price.Mul(decimal.NewFromInt(int64(line.Quantity)))
			total = total.Add(subtotal)
			items = append(items, models.OrderItem{
				ProductID:   product.ID,
				ProductName: product.Name,
				Price:       product.Price,
				Quantity:    line.Quantity,
				Subtotal:    subtotal,
			})
			productIDs = append(productIDs, product.ID)
		}

		order = models.Order{
			OrderNo:         generateOrderNo(),
			UserID:          userID,
			Items:           items,
			TotalAmount:     total,
			Status:          models.OrderStatusPending,
			ShippingAddress: req.ShippingAddress,
			RecipientName:   req.RecipientName,
			RecipientPhone:  req.RecipientPhone,
			Notes:           req.Notes,
		}
		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		// Remove the purchased products from this user's cart. Scoped to the
		// transaction, so a re-add committing afterwards is never touched.
		if err := tx.Where("user_id = ? AND product_id IN ?", userID, productIDs).
			Delete(&models.CartItem{}).Error; err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// POST /api/shop/orders
func CreateOrder(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, _ := middleware.CurrentUserID(c)

		var req PlaceOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid input", "error": err.Error()})
			return
		}

		order, err := PlaceOrder(db, userID, req)
		if err != nil {
			status := http.StatusInternalServerError
			switch {
			case errors.Is(err, ErrEmptyOrder), errors.Is(err, ErrInvalidQuantity):
				status = http.StatusBadRequest
			case errors.Is(err, ErrProductNotFound):
				status = http.StatusNotFound
			case errors.Is(err, ErrOutOfStock):
				status = http.StatusConflict
			}
			c.JSON(status, gin.H{"success": false, "message": "Failed to create order", "error": err.Error()})
			return
		}

		BroadcastNewOrder(*order)

		c.JSON(http.StatusCreated, gin.H{
			"success": true,
			"message": "Order created",
			"data":    gin.H{"order_no": order.OrderNo, "order_id": order.ID},
		})
	}
}

// GET /api/shop/orders
func GetMyOrders(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, _ := middleware.CurrentUserID(c)

		var orders []models.Order
		if err := db.Preload("Items").
			Where("user_id = ?", userID).
			Order("created_at DESC").
			Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch orders"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "data": orders})
	}
}
