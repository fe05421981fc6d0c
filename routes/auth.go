package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/syxhsssss/pet-management-system/config"
	authControllers "github.com/syxhsssss/pet-management-system/controllers/auth"
	"github.com/syxhsssss/pet-management-system/middleware"
)

// SetupAuthRoutes registers all "/api/auth/*" endpoints.
func SetupAuthRoutes(api *gin.RouterGroup, db *gorm.DB, cfg *config.Config) {
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", authControllers.Register(db, cfg.JWTSecret, cfg.JWTExpiresIn))
		authGroup.POST("/login", authControllers.Login(db, cfg.JWTSecret, cfg.JWTExpiresIn))

		protected := authGroup.Group("")
		protected.Use(middleware.ValidateToken(cfg.JWTSecret))
		{
			protected.GET("/me", authControllers.GetCurrentUser(db))
			protected.PUT("/profile", authControllers.UpdateProfile(db))
			protected.PUT("/password", authControllers.ChangePassword(db))
		}
	}
}
