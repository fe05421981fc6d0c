package adoptionControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/syxhsssss/pet-management-system/middleware"
	"github.com/syxhsssss/pet-management-system/models"
)

type CreateAdoptionRequest struct {
	Name         string      `json:"name" binding:"required"`
	Species      string      `json:"species" binding:"required"`
	Breed        string      `json:"breed"`
	Age          int         `json:"age"`
	Gender       string      `json:"gender"`
	Color        string      `json:"color"`
	Location     string      `json:"location"`
	HealthStatus string      `json:"health_status"`
	Vaccinated   bool        `json:"vaccinated"`
	Description  string      `json:"description"`
	Photos       interface{} `json:"photos"`
	ContactPhone string      `json:"contact_phone"`
}

type ApplyRequest struct {
	Name       string `json:"name" binding:"required"`
	Phone      string `json:"phone" binding:"required"`
	Address    string `json:"address"`
	Experience string `json:"experience"`
	Reason     string `json:"reason"`
}

// GET /api/adoptions
func GetAllAdoptions(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		status := c.DefaultQuery("status", string(models.AdoptionStatusAvailable))

		query := db.Preload("Publisher").Where("status = ?", status)
		if species := c.Query("species"); species != "" {
			query = query.Where("species = ?", species)
		}

		var adoptions []models.Adoption
		if err := query.Order("created_at DESC").Find(&adoptions).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch adoptions"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "data": adoptions})
	}
}

// GET /api/adoptions/:id
func GetAdoptionByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var adoption models.Adoption
		if err := db.Preload("Publisher").First(&adoption, "id = ?", c.Param("id")).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Adoption listing not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch adoption"})
			return
		}

		db.Model(&adoption).UpdateColumn("views", gorm.Expr("views + 1"))

		c.JSON(http.StatusOK, gin.H{"success": true, "data": adoption})
	}
}

// POST /api/adoptions
func CreateAdoption(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, _ := middleware.CurrentUserID(c)

		var req CreateAdoptionRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid input", "error": err.Error()})
			return
		}

		photos, err := models.NormalizePhotos(req.Photos)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid photos field", "error": err.Error()})
			return
		}

		gender := req.Gender
		if gender == "" {
			gender = "unknown"
		}

		adoption := models.Adoption{
			PublisherID:  userID,
			Name:         req.Name,
			Species:      req.Species,
			Breed:        req.Breed,
			Age:          req.Age,
			Gender:       gender,
			Color:        req.Color,
			Location:     req.Location,
			HealthStatus: req.HealthStatus,
			Vaccinated:   req.Vaccinated,
			Description:  req.Description,
			Photos:       photos,
			ContactPhone: req.ContactPhone,
			Status:       models.AdoptionStatusAvailable,
		}
		if err := db.Create(&adoption).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to publish adoption"})
			return
		}
		c.JSON(http.StatusCreated, gin.H{"success": true, "message": "Adoption published", "data": gin.H{"id": adoption.ID}})
	}
}

// POST /api/adoptions/:id/apply
func ApplyForAdoption(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, _ := middleware.CurrentUserID(c)

		var req ApplyRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid input", "error": err.Error()})
			return
		}

		var adoption models.Adoption
		if err := db.First(&adoption, "id = ?", c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Adoption listing not found"})
			return
		}

		var count int64
		if err := db.Model(&models.AdoptionApplication{}).
			Where("adoption_id = ? AND applicant_id = ?", adoption.ID, userID).
			Count(&count).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to submit application"})
			return
		}
		if count > 0 {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "You have already applied"})
			return
		}

		app := models.AdoptionApplication{
			AdoptionID:  adoption.ID,
			ApplicantID: userID,
			Name:        req.Name,
			Phone:       req.Phone,
			Address:     req.Address,
			Experience:  req.Experience,
			Reason:      req.Reason,
			Status:      models.ApplicationStatusPending,
		}
		if err := db.Create(&app).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to submit application"})
			return
		}
		c.JSON(http.StatusCreated, gin.H{"success": true, "message": "Application submitted, pending review"})
	}
}

// GET /api/adoptions/applications/my
func GetMyApplications(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, _ := middleware.CurrentUserID(c)

		var apps []models.AdoptionApplication
		if err := db.Preload("Adoption").
			Where("applicant_id = ?", userID).
			Order("created_at DESC").
			Find(&apps).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch applications"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "data": apps})
	}
}

// DELETE /api/adoptions/:id (admin)
func DeleteAdoption(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		result := db.Delete(&models.Adoption{}, "id = ?", c.Param("id"))
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to delete adoption"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Adoption listing not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Adoption deleted"})
	}
}
