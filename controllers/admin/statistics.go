package adminControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/syxhsssss/pet-management-system/models"
)

type userStats struct {
	TotalUsers  int64 `json:"total_users"`
	AdminCount  int64 `json:"admin_count"`
	ActiveUsers int64 `json:"active_users"`
}

type adoptionStats struct {
	TotalAdoptions int64 `json:"total_adoptions"`
	AvailableCount int64 `json:"available_count"`
	AdoptedCount   int64 `json:"adopted_count"`
}

type productStats struct {
	TotalProducts int64 `json:"total_products"`
	TotalStock    int64 `json:"total_stock"`
	TotalSales    int64 `json:"total_sales"`
}

type orderStats struct {
	TotalOrders     int64           `json:"total_orders"`
	TotalRevenue    decimal.Decimal `json:"total_revenue"`
	CompletedOrders int64           `json:"completed_orders"`
}

// GET /api/admin/statistics
func GetStatistics(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var users userStats
		db.Model(&models.User{}).Count(&users.TotalUsers)
		db.Model(&models.User{}).Where("role = ?", models.RoleAdmin).Count(&users.AdminCount)
		db.Model(&models.User{}).Where("status = ?", models.UserStatusActive).Count(&users.ActiveUsers)

		var totalPets int64
		db.Model(&models.Pet{}).Count(&totalPets)

		var totalPosts int64
		db.Model(&models.Post{}).Count(&totalPosts)

		var adoptions adoptionStats
		db.Model(&models.Adoption{}).Count(&adoptions.TotalAdoptions)
		db.Model(&models.Adoption{}).Where("status = ?", models.AdoptionStatusAvailable).Count(&adoptions.AvailableCount)
		db.Model(&models.Adoption{}).Where("status = ?", models.AdoptionStatusAdopted).Count(&adoptions.AdoptedCount)

		var products productStats
		db.Model(&models.Product{}).Count(&products.TotalProducts)
		db.Model(&models.Product{}).Select("COALESCE(SUM(stock), 0)").Scan(&products.TotalStock)
		db.Model(&models.Product{}).Select("COALESCE(SUM(sales), 0)").Scan(&products.TotalSales)

		// Revenue excludes cancelled orders.
		var orders orderStats
		db.Model(&models.Order{}).Count(&orders.TotalOrders)
		db.Model(&models.Order{}).Where("status = ?", models.OrderStatusCompleted).Count(&orders.CompletedOrders)
		var revenue decimal.NullDecimal
		db.Model(&models.Order{}).
			Where("status <> ?", models.OrderStatusCancelled).
			Select("SUM(total_amount)").Scan(&revenue)
		if revenue.Valid {
			orders.TotalRevenue = revenue.Decimal
		}

		var popularTags []models.Tag
		db.Order("use_count DESC").Limit(10).Find(&popularTags)

		c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{
			"users":       users,
			"pets":        gin.H{"total_pets": totalPets},
			"posts":       gin.H{"total_posts": totalPosts},
			"adoptions":   adoptions,
			"products":    products,
			"orders":      orders,
			"popularTags": popularTags,
		}})
	}
}
