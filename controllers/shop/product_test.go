package shopControllers

import (
	"net/http"
	"strconv"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func productRouter(db *gorm.DB) *gin.Engine {
	r := gin.New()
	r.PUT("/products/:id", UpdateProduct(db))
	return r
}

func TestUpdateProductRejectsUnknownStatus(t *testing.T) {
	db := setupDB(t)
	product := createTestProduct(t, db, "Chew Toy", "4.50", 10)
	r := productRouter(db)
	path := "/products/" + strconv.Itoa(int(product.ID))

	w := doJSON(t, r, http.MethodPut, path, gin.H{
		"name":   "Chew Toy",
		"price":  "4.50",
		"stock":  10,
		"status": "retired",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	reloaded := reloadProduct(t, db, product.ID)
	assert.Equal(t, product.Status, reloaded.Status)
}

func TestUpdateProductAcceptsKnownStatus(t *testing.T) {
	db := setupDB(t)
	product := createTestProduct(t, db, "Chew Toy", "4.50", 10)
	r := productRouter(db)
	path := "/products/" + strconv.Itoa(int(product.ID))

	w := doJSON(t, r, http.MethodPut, path, gin.H{
		"name":   "Chew Toy",
		"price":  "4.50",
		"stock":  10,
		"status": "inactive",
	})
	require.Equal(t, http.StatusOK, w.Code)

	reloaded := reloadProduct(t, db, product.ID)
	assert.Equal(t, "inactive", string(reloaded.Status))
}
