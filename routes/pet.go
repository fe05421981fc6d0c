package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	petControllers "github.com/syxhsssss/pet-management-system/controllers/pet"
)

// SetupPetRoutes registers all "/api/pets/*" endpoints.
func SetupPetRoutes(api *gin.RouterGroup, db *gorm.DB) {
	pets := api.Group("/pets")
	{
		pets.GET("", petControllers.GetAllPets(db))
		pets.GET("/:id", petControllers.GetPetByID(db))
		pets.POST("", petControllers.CreatePet(db))
		pets.PUT("/:id", petControllers.UpdatePet(db))
		pets.DELETE("/:id", petControllers.DeletePet(db))
	}
}
