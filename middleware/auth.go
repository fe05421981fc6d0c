package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/syxhsssss/pet-management-system/auth"
	"github.com/syxhsssss/pet-management-system/models"
)

// ValidateToken requires a valid bearer token and stores user_id and role
// in the request context.
func ValidateToken(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := bearerToken(c)
		if tokenString == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Authorization header is missing"})
			c.Abort()
			return
		}

		claims, err := auth.ParseToken(secret, tokenString)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Invalid or expired token"})
			c.Abort()
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("role", claims.Role)
		c.Next()
	}
}

// RequireAdmin must run after ValidateToken.
func RequireAdmin(c *gin.Context) {
	role, _ := c.Get("role")
	if role != models.RoleAdmin {
		c.JSON(http.StatusForbidden, gin.H{"success": false, "message": "Admin access required"})
		c.Abort()
		return
	}
	c.Next()
}

// OptionalToken stores the caller's identity when a valid token is present
// and lets the request through either way.
func OptionalToken(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if tokenString := bearerToken(c); tokenString != "" {
			if claims, err := auth.ParseToken(secret, tokenString); err == nil {
				c.Set("user_id", claims.UserID)
				c.Set("role", claims.Role)
			}
		}
		c.Next()
	}
}

// CurrentUserID returns the authenticated user's id from the context.
func CurrentUserID(c *gin.Context) (uint, bool) {
	val, exists := c.Get("user_id")
	if !exists {
		return 0, false
	}
	id, ok := val.(uint)
	return id, ok
}

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	return strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
}
