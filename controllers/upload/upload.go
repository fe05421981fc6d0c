package uploadControllers

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const maxImageSize = 5 << 20 // 5MB

var allowedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

// POST /api/upload/image
//
// Accepts a multipart image, stores it under uploadsDir with a unique name,
// and returns the public URL.
func UploadImage(uploadsDir string) gin.HandlerFunc {
	return func(c *gin.Context) {
		file, err := c.FormFile("image")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Image file is required"})
			return
		}

		ext := strings.ToLower(filepath.Ext(file.Filename))
		if !allowedExtensions[ext] {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Only jpg, jpeg, png, gif and webp files are allowed"})
			return
		}
		if file.Size > maxImageSize {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Image must be 5MB or smaller"})
			return
		}

		if err := os.MkdirAll(uploadsDir, 0755); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to prepare upload folder"})
			return
		}

		filename := fmt.Sprintf("upload-%d-%s%s", time.Now().UnixMilli(), uuid.NewString()[:8], ext)
		if err := c.SaveUploadedFile(file, filepath.Join(uploadsDir, filename)); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to save image"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"success": true,
			"message": "Image uploaded",
			"data":    gin.H{"url": "/uploads/" + filename},
		})
	}
}
