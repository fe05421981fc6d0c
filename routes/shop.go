package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/syxhsssss/pet-management-system/config"
	shopControllers "github.com/syxhsssss/pet-management-system/controllers/shop"
	"github.com/syxhsssss/pet-management-system/middleware"
)

// SetupShopRoutes registers all "/api/shop/*" endpoints.
func SetupShopRoutes(api *gin.RouterGroup, db *gorm.DB, cfg *config.Config) {
	shop := api.Group("/shop")
	{
		shop.GET("/products", shopControllers.GetAllProducts(db))
		shop.GET("/products/:id", shopControllers.GetProductByID(db))

		protected := shop.Group("")
		protected.Use(middleware.ValidateToken(cfg.JWTSecret))
		{
			protected.GET("/cart", shopControllers.GetCart(db))
			protected.POST("/cart", shopControllers.AddToCart(db))
			protected.PUT("/cart/:id", shopControllers.UpdateCartItem(db))
			protected.DELETE("/cart/:id", shopControllers.RemoveFromCart(db))

			protected.POST("/orders", shopControllers.CreateOrder(db))
			protected.GET("/orders", shopControllers.GetMyOrders(db))
		}
	}
}
