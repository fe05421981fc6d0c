package socialControllers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/syxhsssss/pet-management-system/models"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_busy_timeout=5000", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{}, &models.Pet{},
		&models.Post{}, &models.Comment{}, &models.Like{}, &models.Tag{},
	))
	return db
}

func createTestUser(t *testing.T, db *gorm.DB) models.User {
	t.Helper()
	suffix := uuid.NewString()[:8]
	user := models.User{
		Username: "user-" + suffix,
		Email:    suffix + "@example.com",
		Password: "irrelevant",
		Nickname: "User " + suffix,
		Role:     models.RoleUser,
		Status:   models.UserStatusActive,
	}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func asUser(userID uint) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("user_id", userID)
		c.Next()
	}
}

func socialRouter(db *gorm.DB, userID uint) *gin.Engine {
	r := gin.New()
	r.POST("/posts", asUser(userID), CreatePost(db))
	r.DELETE("/posts/:id", asUser(userID), DeletePost(db))
	r.POST("/posts/:id/like", asUser(userID), ToggleLike(db))
	r.POST("/posts/:id/comments", asUser(userID), AddComment(db))
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreatePostUpsertsTags(t *testing.T) {
	db := setupDB(t)
	user := createTestUser(t, db)
	r := socialRouter(db, user.ID)

	w := doJSON(t, r, http.MethodPost, "/posts", gin.H{
		"content": "First walk in the park",
		"tags":    []string{"walkies", "puppy"},
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodPost, "/posts", gin.H{
		"content": "Back again",
		"tags":    []string{"walkies", " "},
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var walkies models.Tag
	require.NoError(t, db.Where("name = ?", "walkies").First(&walkies).Error)
	assert.Equal(t, 2, walkies.UseCount)

	var puppy models.Tag
	require.NoError(t, db.Where("name = ?", "puppy").First(&puppy).Error)
	assert.Equal(t, 1, puppy.UseCount)

	var tagCount int64
	db.Model(&models.Tag{}).Count(&tagCount)
	assert.EqualValues(t, 2, tagCount, "blank tags are dropped, duplicates reuse the row")

	var post models.Post
	require.NoError(t, db.Preload("Tags").Order("id DESC").First(&post).Error)
	assert.Len(t, post.Tags, 1)
}

func TestCreatePostNormalizesImages(t *testing.T) {
	db := setupDB(t)
	user := createTestUser(t, db)
	r := socialRouter(db, user.ID)

	// Comma-joined string input gets stored as a proper list.
	w := doJSON(t, r, http.MethodPost, "/posts", gin.H{
		"images": "a.jpg, b.jpg",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var post models.Post
	require.NoError(t, db.Order("id DESC").First(&post).Error)
	assert.Equal(t, models.PhotoList{"a.jpg", "b.jpg"}, post.Images)
}

func TestCreatePostRequiresContentOrImages(t *testing.T) {
	db := setupDB(t)
	user := createTestUser(t, db)
	r := socialRouter(db, user.ID)

	w := doJSON(t, r, http.MethodPost, "/posts", gin.H{"content": "   "})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestToggleLike(t *testing.T) {
	db := setupDB(t)
	author := createTestUser(t, db)
	liker := createTestUser(t, db)

	post := models.Post{UserID: author.ID, Content: "hello", IsPublic: true}
	require.NoError(t, db.Create(&post).Error)

	r := socialRouter(db, liker.ID)
	path := "/posts/" + strconv.Itoa(int(post.ID)) + "/like"

	w := doJSON(t, r, http.MethodPost, path, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var reloaded models.Post
	require.NoError(t, db.First(&reloaded, post.ID).Error)
	assert.Equal(t, 1, reloaded.LikesCount)

	// Second toggle removes the like and restores the count.
	w = doJSON(t, r, http.MethodPost, path, nil)
	require.Equal(t, http.StatusOK, w.Code)

	require.NoError(t, db.First(&reloaded, post.ID).Error)
	assert.Equal(t, 0, reloaded.LikesCount)

	var likeCount int64
	db.Model(&models.Like{}).Count(&likeCount)
	assert.Zero(t, likeCount)
}

func TestAddCommentBumpsCounter(t *testing.T) {
	db := setupDB(t)
	user := createTestUser(t, db)
	post := models.Post{UserID: user.ID, Content: "hello", IsPublic: true}
	require.NoError(t, db.Create(&post).Error)

	r := socialRouter(db, user.ID)
	w := doJSON(t, r, http.MethodPost, "/posts/"+strconv.Itoa(int(post.ID))+"/comments", gin.H{"content": "Cute!"})
	require.Equal(t, http.StatusCreated, w.Code)

	var reloaded models.Post
	require.NoError(t, db.First(&reloaded, post.ID).Error)
	assert.Equal(t, 1, reloaded.CommentsCount)

	w = doJSON(t, r, http.MethodPost, "/posts/"+strconv.Itoa(int(post.ID))+"/comments", gin.H{"content": "  "})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeletePostOwnerOnly(t *testing.T) {
	db := setupDB(t)
	author := createTestUser(t, db)
	stranger := createTestUser(t, db)
	post := models.Post{UserID: author.ID, Content: "mine", IsPublic: true}
	require.NoError(t, db.Create(&post).Error)

	path := "/posts/" + strconv.Itoa(int(post.ID))

	w := doJSON(t, socialRouter(db, stranger.ID), http.MethodDelete, path, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doJSON(t, socialRouter(db, author.ID), http.MethodDelete, path, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var count int64
	db.Model(&models.Post{}).Where("id = ?", post.ID).Count(&count)
	assert.Zero(t, count)
}
