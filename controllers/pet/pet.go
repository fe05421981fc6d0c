package petControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/syxhsssss/pet-management-system/models"
)

type PetInput struct {
	Name        string  `json:"name" binding:"required"`
	Species     string  `json:"species" binding:"required"`
	Breed       string  `json:"breed"`
	Age         int     `json:"age"`
	Gender      string  `json:"gender"`
	Color       string  `json:"color"`
	Weight      float64 `json:"weight"`
	OwnerName   string  `json:"owner_name"`
	OwnerPhone  string  `json:"owner_phone"`
	Description string  `json:"description"`
	PhotoURL    string  `json:"photo_url"`
}

// GET /api/pets
func GetAllPets(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var pets []models.Pet
		if err := db.Order("created_at DESC").Find(&pets).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch pets"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "data": pets})
	}
}

// GET /api/pets/:id
func GetPetByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var pet models.Pet
		if err := db.First(&pet, "id = ?", c.Param("id")).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Pet not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch pet"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "data": pet})
	}
}

// POST /api/pets
func CreatePet(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input PetInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Name and species are required", "error": err.Error()})
			return
		}

		gender := input.Gender
		if gender == "" {
			gender = "unknown"
		}

		pet := models.Pet{
			Name:        input.Name,
			Species:     input.Species,
			Breed:       input.Breed,
			Age:         input.Age,
			Gender:      gender,
			Color:       input.Color,
			Weight:      input.Weight,
			OwnerName:   input.OwnerName,
			OwnerPhone:  input.OwnerPhone,
			Description: input.Description,
			PhotoURL:    input.PhotoURL,
		}
		if err := db.Create(&pet).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to create pet"})
			return
		}
		c.JSON(http.StatusCreated, gin.H{"success": true, "message": "Pet created", "data": gin.H{"id": pet.ID}})
	}
}

// PUT /api/pets/:id
func UpdatePet(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var pet models.Pet
		if err := db.First(&pet, "id = ?", c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Pet not found"})
			return
		}

		var input PetInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid input", "error": err.Error()})
			return
		}

		pet.Name = input.Name
		pet.Species = input.Species
		pet.Breed = input.Breed
		pet.Age = input.Age
		pet.Gender = input.Gender
		pet.Color = input.Color
		pet.Weight = input.Weight
		pet.OwnerName = input.OwnerName
		pet.OwnerPhone = input.OwnerPhone
		pet.Description = input.Description
		pet.PhotoURL = input.PhotoURL

		if err := db.Save(&pet).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to update pet"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Pet updated"})
	}
}

// DELETE /api/pets/:id
func DeletePet(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		result := db.Delete(&models.Pet{}, "id = ?", c.Param("id"))
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to delete pet"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Pet not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Pet deleted"})
	}
}
