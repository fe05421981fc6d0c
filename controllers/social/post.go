package socialControllers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/syxhsssss/pet-management-system/middleware"
	"github.com/syxhsssss/pet-management-system/models"
)

type CreatePostRequest struct {
	PetID    *uint       `json:"pet_id"`
	Content  string      `json:"content"`
	Images   interface{} `json:"images"` // string, []string or JSON array; normalized at the boundary
	Location string      `json:"location"`
	Tags     []string    `json:"tags"`
}

type CommentRequest struct {
	Content  string `json:"content" binding:"required"`
	ParentID *uint  `json:"parent_id"`
}

// GET /api/social/posts
func GetAllPosts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
		limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
		if page < 1 {
			page = 1
		}
		if limit < 1 || limit > 100 {
			limit = 20
		}

		var posts []models.Post
		if err := db.Preload("User").Preload("Tags").
			Where("is_public = ?", true).
			Order("created_at DESC").
			Limit(limit).Offset((page - 1) * limit).
			Find(&posts).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch posts"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "data": posts})
	}
}

// GET /api/social/posts/:id
func GetPostByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var post models.Post
		if err := db.Preload("User").Preload("Tags").
			First(&post, "id = ?", c.Param("id")).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Post not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch post"})
			return
		}

		var comments []models.Comment
		if err := db.Preload("User").
			Where("post_id = ?", post.ID).
			Order("created_at ASC").
			Find(&comments).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch comments"})
			return
		}

		liked := false
		if userID, ok := middleware.CurrentUserID(c); ok {
			var count int64
			db.Model(&models.Like{}).Where("post_id = ? AND user_id = ?", post.ID, userID).Count(&count)
			liked = count > 0
		}

		db.Model(&post).UpdateColumn("views", gorm.Expr("views + 1"))

		c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{
			"post":       post,
			"comments":   comments,
			"user_liked": liked,
		}})
	}
}

// POST /api/social/posts
//
// The post insert and its tag upserts commit together: a failed tag link
// never leaves a half-tagged post behind.
func CreatePost(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, _ := middleware.CurrentUserID(c)

		var req CreatePostRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid input", "error": err.Error()})
			return
		}

		images, err := models.NormalizePhotos(req.Images)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid images field", "error": err.Error()})
			return
		}

		if strings.TrimSpace(req.Content) == "" && len(images) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Content or images required"})
			return
		}

		post := models.Post{
			UserID:   userID,
			PetID:    req.PetID,
			Content:  req.Content,
			Images:   images,
			Location: req.Location,
			IsPublic: true,
		}

		err = db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Create(&post).Error; err != nil {
				return err
			}
			for _, name := range req.Tags {
				name = strings.TrimSpace(name)
				if name == "" {
					continue
				}
				tag, err := upsertTag(tx, name)
				if err != nil {
					return err
				}
				if err := tx.Model(&post).Association("Tags").Append(tag); err != nil {
					return err
				}
			}
			return nil
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to create post"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{"success": true, "message": "Post published", "data": gin.H{"id": post.ID}})
	}
}

// upsertTag finds a tag by name and bumps its use count, or creates it.
func upsertTag(tx *gorm.DB, name string) (*models.Tag, error) {
	var tag models.Tag
	err := tx.Where("name = ?", name).First(&tag).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		tag = models.Tag{Name: name, UseCount: 1}
		if err := tx.Create(&tag).Error; err != nil {
			return nil, err
		}
		return &tag, nil
	}
	if err != nil {
		return nil, err
	}
	if err := tx.Model(&tag).UpdateColumn("use_count", gorm.Expr("use_count + 1")).Error; err != nil {
		return nil, err
	}
	return &tag, nil
}

// DELETE /api/social/posts/:id
func DeletePost(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, _ := middleware.CurrentUserID(c)

		var post models.Post
		if err := db.First(&post, "id = ? AND user_id = ?", c.Param("id"), userID).Error; err != nil {
			c.JSON(http.StatusForbidden, gin.H{"success": false, "message": "Not allowed to delete this post"})
			return
		}

		if err := db.Delete(&post).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to delete post"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Post deleted"})
	}
}

// POST /api/social/posts/:id/like
func ToggleLike(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, _ := middleware.CurrentUserID(c)
		postID := c.Param("id")

		var post models.Post
		if err := db.First(&post, "id = ?", postID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Post not found"})
			return
		}

		var existing models.Like
		err := db.Where("user_id = ? AND post_id = ?", userID, post.ID).First(&existing).Error

		if errors.Is(err, gorm.ErrRecordNotFound) {
			err = db.Transaction(func(tx *gorm.DB) error {
				if err := tx.Create(&models.Like{UserID: userID, PostID: post.ID}).Error; err != nil {
					return err
				}
				return tx.Model(&post).UpdateColumn("likes_count", gorm.Expr("likes_count + 1")).Error
			})
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to like post"})
				return
			}
			c.JSON(http.StatusOK, gin.H{"success": true, "message": "Liked", "liked": true})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to toggle like"})
			return
		}

		err = db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Delete(&existing).Error; err != nil {
				return err
			}
			return tx.Model(&post).UpdateColumn("likes_count", gorm.Expr("likes_count - 1")).Error
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to unlike post"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Unliked", "liked": false})
	}
}

// POST /api/social/posts/:id/comments
func AddComment(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, _ := middleware.CurrentUserID(c)

		var req CommentRequest
		if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Content) == "" {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Comment content cannot be empty"})
			return
		}

		var post models.Post
		if err := db.First(&post, "id = ?", c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Post not found"})
			return
		}

		comment := models.Comment{
			PostID:   post.ID,
			UserID:   userID,
			Content:  req.Content,
			ParentID: req.ParentID,
		}
		err := db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Create(&comment).Error; err != nil {
				return err
			}
			return tx.Model(&post).UpdateColumn("comments_count", gorm.Expr("comments_count + 1")).Error
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to add comment"})
			return
		}
		c.JSON(http.StatusCreated, gin.H{"success": true, "message": "Comment added", "data": gin.H{"id": comment.ID}})
	}
}

// GET /api/social/users/:userId/posts
func GetUserPosts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var posts []models.Post
		if err := db.Preload("User").Preload("Tags").
			Where("user_id = ? AND is_public = ?", c.Param("userId"), true).
			Order("created_at DESC").
			Find(&posts).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch posts"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "data": posts})
	}
}

// GET /api/social/tags
func GetAllTags(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var tags []models.Tag
		if err := db.Order("use_count DESC, name ASC").Find(&tags).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch tags"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "data": tags})
	}
}

// GET /api/social/tags/popular
func GetPopularTags(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
		if limit < 1 || limit > 100 {
			limit = 10
		}
		var tags []models.Tag
		if err := db.Order("use_count DESC").Limit(limit).Find(&tags).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch tags"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "data": tags})
	}
}
