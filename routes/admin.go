package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/syxhsssss/pet-management-system/config"
	adminControllers "github.com/syxhsssss/pet-management-system/controllers/admin"
	adoptionControllers "github.com/syxhsssss/pet-management-system/controllers/adoption"
	petControllers "github.com/syxhsssss/pet-management-system/controllers/pet"
	shopControllers "github.com/syxhsssss/pet-management-system/controllers/shop"
	"github.com/syxhsssss/pet-management-system/middleware"
)

// SetupAdminRoutes registers all "/api/admin/*" endpoints. Requires a valid
// token carrying the admin role.
func SetupAdminRoutes(api *gin.RouterGroup, db *gorm.DB, cfg *config.Config) {
	admin := api.Group("/admin")
	admin.Use(middleware.ValidateToken(cfg.JWTSecret), middleware.RequireAdmin)
	{
		admin.GET("/statistics", adminControllers.GetStatistics(db))

		users := admin.Group("/users")
		{
			users.GET("", adminControllers.GetAllUsers(db))
			users.PUT("/:id/status", adminControllers.UpdateUserStatus(db))
			users.PUT("/:id/role", adminControllers.UpdateUserRole(db))
			users.DELETE("/:id", adminControllers.DeleteUser(db))
		}

		admin.GET("/pets", petControllers.GetAllPets(db))
		admin.DELETE("/pets/:id", petControllers.DeletePet(db))

		admin.GET("/posts", adminControllers.GetAllPosts(db))
		admin.DELETE("/posts/:id", adminControllers.DeletePost(db))

		admin.GET("/adoptions", adminControllers.GetAllAdoptions(db))
		admin.DELETE("/adoptions/:id", adoptionControllers.DeleteAdoption(db))
		admin.GET("/applications", adminControllers.GetAllApplications(db))
		admin.PUT("/applications/:id/review", adminControllers.ReviewApplication(db))

		products := admin.Group("/products")
		{
			products.POST("", shopControllers.CreateProduct(db))
			products.PUT("/:id", shopControllers.UpdateProduct(db))
			products.DELETE("/:id", shopControllers.DeleteProduct(db))
		}

		orders := admin.Group("/orders")
		{
			orders.GET("", adminControllers.GetAllOrders(db))
			orders.PUT("/:id/status", adminControllers.UpdateOrderStatus(db))
			orders.GET("/export", adminControllers.ExportOrdersToExcel(db))
			orders.GET("/ws", shopControllers.OrderWebSocketHandler)
		}
	}
}
