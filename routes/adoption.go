package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/syxhsssss/pet-management-system/config"
	adoptionControllers "github.com/syxhsssss/pet-management-system/controllers/adoption"
	"github.com/syxhsssss/pet-management-system/middleware"
)

// SetupAdoptionRoutes registers all "/api/adoptions/*" endpoints.
func SetupAdoptionRoutes(api *gin.RouterGroup, db *gorm.DB, cfg *config.Config) {
	adoptions := api.Group("/adoptions")
	{
		adoptions.GET("", adoptionControllers.GetAllAdoptions(db))
		adoptions.GET("/:id", adoptionControllers.GetAdoptionByID(db))

		protected := adoptions.Group("")
		protected.Use(middleware.ValidateToken(cfg.JWTSecret))
		{
			protected.POST("", adoptionControllers.CreateAdoption(db))
			protected.POST("/:id/apply", adoptionControllers.ApplyForAdoption(db))
			protected.GET("/applications/my", adoptionControllers.GetMyApplications(db))
		}
	}
}
