package shopControllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/syxhsssss/pet-management-system/models"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// asUser injects the authenticated identity the way the JWT middleware does.
func asUser(userID uint) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("user_id", userID)
		c.Next()
	}
}

func cartRouter(db *gorm.DB, userID uint) *gin.Engine {
	r := gin.New()
	r.GET("/cart", asUser(userID), GetCart(db))
	r.POST("/cart", asUser(userID), AddToCart(db))
	r.PUT("/cart/:id", asUser(userID), UpdateCartItem(db))
	r.DELETE("/cart/:id", asUser(userID), RemoveFromCart(db))
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

func TestAddToCartMergesDuplicateProduct(t *testing.T) {
	db := setupDB(t)
	user := createTestUser(t, db)
	product := createTestProduct(t, db, "Dog Food", "10.00", 20)
	r := cartRouter(db, user.ID)

	w := doJSON(t, r, http.MethodPost, "/cart", gin.H{"product_id": product.ID, "quantity": 2})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodPost, "/cart", gin.H{"product_id": product.ID, "quantity": 3})
	require.Equal(t, http.StatusOK, w.Code)

	var items []models.CartItem
	require.NoError(t, db.Where("user_id = ?", user.ID).Find(&items).Error)
	require.Len(t, items, 1, "re-adding must not duplicate the row")
	assert.Equal(t, 5, items[0].Quantity)
}

func TestAddToCartRejectsInsufficientStock(t *testing.T) {
	db := setupDB(t)
	user := createTestUser(t, db)
	product := createTestProduct(t, db, "Cat Tree", "99.00", 1)
	r := cartRouter(db, user.ID)

	w := doJSON(t, r, http.MethodPost, "/cart", gin.H{"product_id": product.ID, "quantity": 2})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var count int64
	db.Model(&models.CartItem{}).Count(&count)
	assert.Zero(t, count)
}

func TestAddToCartUnknownProduct(t *testing.T) {
	db := setupDB(t)
	user := createTestUser(t, db)
	r := cartRouter(db, user.ID)

	w := doJSON(t, r, http.MethodPost, "/cart", gin.H{"product_id": 4242, "quantity": 1})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateCartItemScopedToOwner(t *testing.T) {
	db := setupDB(t)
	owner := createTestUser(t, db)
	other := createTestUser(t, db)
	product := createTestProduct(t, db, "Leash", "5.00", 10)

	item := models.CartItem{UserID: owner.ID, ProductID: product.ID, Quantity: 1}
	require.NoError(t, db.Create(&item).Error)

	// Another user cannot touch the row.
	w := doJSON(t, cartRouter(db, other.ID), http.MethodPut, "/cart/"+strconv.Itoa(int(item.ID)), gin.H{"quantity": 9})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, cartRouter(db, owner.ID), http.MethodPut, "/cart/"+strconv.Itoa(int(item.ID)), gin.H{"quantity": 4})
	require.Equal(t, http.StatusOK, w.Code)

	var reloaded models.CartItem
	require.NoError(t, db.First(&reloaded, item.ID).Error)
	assert.Equal(t, 4, reloaded.Quantity)
}

func TestRemoveFromCart(t *testing.T) {
	db := setupDB(t)
	user := createTestUser(t, db)
	product := createTestProduct(t, db, "Bowl", "3.00", 10)

	item := models.CartItem{UserID: user.ID, ProductID: product.ID, Quantity: 1}
	require.NoError(t, db.Create(&item).Error)

	r := cartRouter(db, user.ID)
	w := doJSON(t, r, http.MethodDelete, "/cart/"+strconv.Itoa(int(item.ID)), nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodDelete, "/cart/"+strconv.Itoa(int(item.ID)), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetCartJoinsProductFields(t *testing.T) {
	db := setupDB(t)
	user := createTestUser(t, db)
	product := createTestProduct(t, db, "Scratcher", "15.00", 7)
	require.NoError(t, db.Create(&models.CartItem{UserID: user.ID, ProductID: product.ID, Quantity: 2}).Error)

	w := doJSON(t, cartRouter(db, user.ID), http.MethodGet, "/cart", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success bool `json:"success"`
		Data    []struct {
			ProductID uint   `json:"product_id"`
			Quantity  int    `json:"quantity"`
			Name      string `json:"name"`
			Stock     int    `json:"stock"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.True(t, resp.Success)
	require.Len(t, resp.Data, 1)
	assert.Equal(t, "Scratcher", resp.Data[0].Name)
	assert.Equal(t, 7, resp.Data[0].Stock)
	assert.Equal(t, 2, resp.Data[0].Quantity)
}
