package authControllers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/syxhsssss/pet-management-system/auth"
	"github.com/syxhsssss/pet-management-system/middleware"
	"github.com/syxhsssss/pet-management-system/models"
)

type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=3"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Phone    string `json:"phone"`
	Nickname string `json:"nickname"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type UpdateProfileRequest struct {
	Nickname *string `json:"nickname"`
	Phone    *string `json:"phone"`
	Bio      *string `json:"bio"`
	Avatar   *string `json:"avatar"`
}

type ChangePasswordRequest struct {
	OldPassword string `json:"old_password" binding:"required"`
	NewPassword string `json:"new_password" binding:"required,min=6"`
}

// POST /api/auth/register
func Register(db *gorm.DB, secret string, expiry time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req RegisterRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid input", "error": err.Error()})
			return
		}

		var count int64
		if err := db.Model(&models.User{}).
			Where("username = ? OR email = ?", req.Username, req.Email).
			Count(&count).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Registration failed"})
			return
		}
		if count > 0 {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Username or email already registered"})
			return
		}

		hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Registration failed"})
			return
		}

		nickname := req.Nickname
		if nickname == "" {
			nickname = req.Username
		}

		user := models.User{
			Username: req.Username,
			Email:    req.Email,
			Password: string(hashed),
			Phone:    req.Phone,
			Nickname: nickname,
			Avatar:   fmt.Sprintf("https://api.dicebear.com/7.x/avataaars/svg?seed=%s", req.Username),
			Role:     models.RoleUser,
			Status:   models.UserStatusActive,
		}
		if err := db.Create(&user).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Registration failed"})
			return
		}

		token, err := auth.GenerateToken(secret, expiry, user.ID, user.Role)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Registration failed"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"success": true,
			"message": "Registered successfully",
			"data": gin.H{
				"id":       user.ID,
				"username": user.Username,
				"email":    user.Email,
				"nickname": user.Nickname,
				"token":    token,
			},
		})
	}
}

// POST /api/auth/login
func Login(db *gorm.DB, secret string, expiry time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Username and password are required"})
			return
		}

		var user models.User
		err := db.Where("username = ? OR email = ?", req.Username, req.Username).First(&user).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Invalid username or password"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Login failed"})
			return
		}

		if user.Status != models.UserStatusActive {
			c.JSON(http.StatusForbidden, gin.H{"success": false, "message": "Account is disabled"})
			return
		}

		if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)) != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Invalid username or password"})
			return
		}

		token, err := auth.GenerateToken(secret, expiry, user.ID, user.Role)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Login failed"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": "Logged in successfully",
			"data": gin.H{
				"id":       user.ID,
				"username": user.Username,
				"email":    user.Email,
				"nickname": user.Nickname,
				"avatar":   user.Avatar,
				"role":     user.Role,
				"token":    token,
			},
		})
	}
}

// GET /api/auth/me
func GetCurrentUser(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, _ := middleware.CurrentUserID(c)

		var user models.User
		if err := db.First(&user, userID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "User not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "data": user})
	}
}

// PUT /api/auth/profile
func UpdateProfile(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, _ := middleware.CurrentUserID(c)

		var req UpdateProfileRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid input", "error": err.Error()})
			return
		}

		updates := map[string]interface{}{}
		if req.Nickname != nil {
			updates["nickname"] = *req.Nickname
		}
		if req.Phone != nil {
			updates["phone"] = *req.Phone
		}
		if req.Bio != nil {
			updates["bio"] = *req.Bio
		}
		if req.Avatar != nil {
			updates["avatar"] = *req.Avatar
		}
		if len(updates) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Nothing to update"})
			return
		}

		if err := db.Model(&models.User{}).Where("id = ?", userID).Updates(updates).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Update failed"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Profile updated"})
	}
}

// PUT /api/auth/password
func ChangePassword(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, _ := middleware.CurrentUserID(c)

		var req ChangePasswordRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Old and new passwords are required"})
			return
		}

		var user models.User
		if err := db.First(&user, userID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "User not found"})
			return
		}

		if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.OldPassword)) != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Old password is incorrect"})
			return
		}

		hashed, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to change password"})
			return
		}

		if err := db.Model(&user).Update("password", string(hashed)).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to change password"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Password changed"})
	}
}
