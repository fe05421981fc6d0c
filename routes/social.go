package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/syxhsssss/pet-management-system/config"
	socialControllers "github.com/syxhsssss/pet-management-system/controllers/social"
	"github.com/syxhsssss/pet-management-system/middleware"
)

// SetupSocialRoutes registers all "/api/social/*" endpoints.
func SetupSocialRoutes(api *gin.RouterGroup, db *gorm.DB, cfg *config.Config) {
	social := api.Group("/social")
	{
		social.GET("/posts", socialControllers.GetAllPosts(db))
		social.GET("/posts/:id", middleware.OptionalToken(cfg.JWTSecret), socialControllers.GetPostByID(db))
		social.GET("/users/:userId/posts", socialControllers.GetUserPosts(db))
		social.GET("/tags", socialControllers.GetAllTags(db))
		social.GET("/tags/popular", socialControllers.GetPopularTags(db))

		protected := social.Group("")
		protected.Use(middleware.ValidateToken(cfg.JWTSecret))
		{
			protected.POST("/posts", socialControllers.CreatePost(db))
			protected.DELETE("/posts/:id", socialControllers.DeletePost(db))
			protected.POST("/posts/:id/like", socialControllers.ToggleLike(db))
			protected.POST("/posts/:id/comments", socialControllers.AddComment(db))
		}
	}
}
