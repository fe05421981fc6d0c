package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/syxhsssss/pet-management-system/config"
)

// SetupRoutes is the single entry-point that wires up every route group.
func SetupRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {
	api := r.Group("/api")

	SetupAuthRoutes(api, db, cfg)
	SetupPetRoutes(api, db)
	SetupSocialRoutes(api, db, cfg)
	SetupAdoptionRoutes(api, db, cfg)
	SetupShopRoutes(api, db, cfg)
	SetupAdminRoutes(api, db, cfg)
	SetupUploadRoutes(api, cfg)
}
