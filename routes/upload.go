package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/syxhsssss/pet-management-system/config"
	uploadControllers "github.com/syxhsssss/pet-management-system/controllers/upload"
	"github.com/syxhsssss/pet-management-system/middleware"
)

// SetupUploadRoutes registers the image upload endpoint.
func SetupUploadRoutes(api *gin.RouterGroup, cfg *config.Config) {
	upload := api.Group("/upload")
	upload.Use(middleware.ValidateToken(cfg.JWTSecret))
	{
		upload.POST("/image", uploadControllers.UploadImage(cfg.UploadsDir))
	}
}
