package adminControllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/syxhsssss/pet-management-system/middleware"
	"github.com/syxhsssss/pet-management-system/models"
)

type UpdateUserStatusRequest struct {
	Status models.UserStatus `json:"status" binding:"required"`
}

type UpdateUserRoleRequest struct {
	Role models.UserRole `json:"role" binding:"required"`
}

type UpdateOrderStatusRequest struct {
	Status models.OrderStatus `json:"status" binding:"required"`
}

type ReviewApplicationRequest struct {
	Status       models.ApplicationStatus `json:"status" binding:"required"`
	ReviewerNote string                   `json:"reviewer_note"`
}

// GET /api/admin/users
func GetAllUsers(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var users []models.User
		if err := db.Order("created_at DESC").Find(&users).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch users"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "data": users})
	}
}

// PUT /api/admin/users/:id/status
func UpdateUserStatus(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req UpdateUserStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil || !validUserStatus(req.Status) {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid status value"})
			return
		}

		result := db.Model(&models.User{}).Where("id = ?", c.Param("id")).Update("status", req.Status)
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to update status"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "User not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Status updated"})
	}
}

// PUT /api/admin/users/:id/role
func UpdateUserRole(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req UpdateUserRoleRequest
		if err := c.ShouldBindJSON(&req); err != nil ||
			(req.Role != models.RoleUser && req.Role != models.RoleAdmin) {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid role value"})
			return
		}

		if callerID, ok := middleware.CurrentUserID(c); ok && sameID(callerID, c.Param("id")) && req.Role != models.RoleAdmin {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Cannot demote your own account"})
			return
		}

		result := db.Model(&models.User{}).Where("id = ?", c.Param("id")).Update("role", req.Role)
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to update role"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "User not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Role updated"})
	}
}

// DELETE /api/admin/users/:id
func DeleteUser(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		if callerID, ok := middleware.CurrentUserID(c); ok && sameID(callerID, c.Param("id")) {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Cannot delete your own account"})
			return
		}

		result := db.Delete(&models.User{}, "id = ?", c.Param("id"))
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to delete user"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "User not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "User deleted"})
	}
}

// GET /api/admin/posts
func GetAllPosts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var posts []models.Post
		if err := db.Preload("User").Order("created_at DESC").Find(&posts).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch posts"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "data": posts})
	}
}

// DELETE /api/admin/posts/:id
func DeletePost(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		result := db.Delete(&models.Post{}, "id = ?", c.Param("id"))
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to delete post"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Post not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Post deleted"})
	}
}

// GET /api/admin/adoptions
func GetAllAdoptions(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var adoptions []models.Adoption
		if err := db.Preload("Publisher").Order("created_at DESC").Find(&adoptions).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch adoptions"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "data": adoptions})
	}
}

// GET /api/admin/applications
func GetAllApplications(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var apps []models.AdoptionApplication
		if err := db.Preload("Adoption").Preload("Applicant").
			Order("created_at DESC").Find(&apps).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch applications"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "data": apps})
	}
}

// PUT /api/admin/applications/:id/review
func ReviewApplication(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ReviewApplicationRequest
		if err := c.ShouldBindJSON(&req); err != nil ||
			(req.Status != models.ApplicationStatusApproved && req.Status != models.ApplicationStatusRejected) {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid review status"})
			return
		}

		result := db.Model(&models.AdoptionApplication{}).
			Where("id = ?", c.Param("id")).
			Updates(map[string]interface{}{"status": req.Status, "reviewer_note": req.ReviewerNote})
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to review application"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Application not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Application reviewed"})
	}
}

// GET /api/admin/orders
func GetAllOrders(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var orders []models.Order
		if err := db.Preload("User").Preload("Items").
			Order("created_at DESC").Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch orders"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "data": orders})
	}
}

// PUT /api/admin/orders/:id/status
func UpdateOrderStatus(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req UpdateOrderStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil || !validOrderStatus(req.Status) {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid order status"})
			return
		}

		result := db.Model(&models.Order{}).Where("id = ?", c.Param("id")).Update("status", req.Status)
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to update order status"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Order not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Order status updated"})
	}
}

func validUserStatus(s models.UserStatus) bool {
	switch s {
	case models.UserStatusActive, models.UserStatusInactive, models.UserStatusBanned:
		return true
	}
	return false
}

func validOrderStatus(s models.OrderStatus) bool {
	switch s {
	case models.OrderStatusPending, models.OrderStatusPaid, models.OrderStatusShipped,
		models.OrderStatusCompleted, models.OrderStatusCancelled:
		return true
	}
	return false
}

func sameID(callerID uint, param string) bool {
	id, err := strconv.ParseUint(param, 10, 64)
	return err == nil && uint(id) == callerID
}
