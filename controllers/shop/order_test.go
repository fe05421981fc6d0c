package shopControllers

import (
	"fmt"
	"path/filepath"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/syxhsssss/pet-management-system/models"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()

	// File-backed DB: concurrent writers wait out _busy_timeout on the file
	// lock instead of failing with a table-lock error the way shared-cache
	// memory connections do, and immediate transactions serialize them.
	dsn := fmt.Sprintf("file:%s?_busy_timeout=5000&_txlock=immediate",
		filepath.Join(t.TempDir(), "shop.db"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Product{},
		&models.CartItem{},
		&models.Order{},
		&models.OrderItem{},
	))
	return db
}

func createTestUser(t *testing.T, db *gorm.DB) models.User {
	t.Helper()
	user := models.User{
		Username: "buyer-" + uuid.NewString()[:8],
		Email:    uuid.NewString()[:8] + "@example.com",
		Password: "hash",
		Role:     models.RoleUser,
		Status:   models.UserStatusActive,
	}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func createTestProduct(t *testing.T, db *gorm.DB, name, price string, stock int) models.Product {
	t.Helper()
	p := models.Product{
		Name:   name,
		Price:  decimal.RequireFromString(price),
		Stock:  stock,
		Status: models.ProductStatusActive,
	}
	require.NoError(t, db.Create(&p).Error)
	return p
}

func shippingRequest(items ...OrderLine) PlaceOrderRequest {
	return PlaceOrderRequest{
		Items:           items,
		ShippingAddress: "1 Main St",
		RecipientName:   "Sam",
		RecipientPhone:  "555-0100",
	}
}

func reloadProduct(t *testing.T, db *gorm.DB, id uint) models.Product {
	t.Helper()
	var p models.Product
	require.NoError(t, db.First(&p, id).Error)
	return p
}

func TestPlaceOrderSuccess(t *testing.T) {
	db := setupDB(t)
	user := createTestUser(t, db)
	product := createTestProduct(t, db, "Dog Food", "10.00", 5)

	order, err := PlaceOrder(db, user.ID, shippingRequest(OrderLine{ProductID: product.ID, Quantity: 3}))
	require.NoError(t, err)
	require.NotNil(t, order)
	assert.NotEmpty(t, order.OrderNo)
	assert.True(t, order.TotalAmount.Equal(decimal.RequireFromString("30.00")),
		"total was %s", order.TotalAmount)

	after := reloadProduct(t, db, product.ID)
	assert.Equal(t, 2, after.Stock)
	assert.Equal(t, 3, after.Sales)

	var items []models.OrderItem
	require.NoError(t, db.Where("order_id = ?", order.ID).Find(&items).Error)
	require.Len(t, items, 1)
	assert.Equal(t, "Dog Food", items[0].ProductName)
	assert.Equal(t, 3, items[0].Quantity)
	assert.True(t, items[0].Price.Equal(decimal.RequireFromString("10.00")))
	assert.True(t, items[0].Subtotal.Equal(decimal.RequireFromString("30.00")))
}

func TestPlaceOrderOutOfStock(t *testing.T) {
	db := setupDB(t)
	user := createTestUser(t, db)
	product := createTestProduct(t, db, "Cat Tree", "10.00", 2)

	order, err := PlaceOrder(db, user.ID, shippingRequest(OrderLine{ProductID: product.ID, Quantity: 3}))
	require.ErrorIs(t, err, ErrOutOfStock)
	assert.Nil(t, order)

	after := reloadProduct(t, db, product.ID)
	assert.Equal(t, 2, after.Stock)
	assert.Equal(t, 0, after.Sales)

	var orderCount int64
	db.Model(&models.Order{}).Count(&orderCount)
	assert.Zero(t, orderCount)
}

func TestPlaceOrderTwoLines(t *testing.T) {
	db := setupDB(t)
	user := createTestUser(t, db)
	productA := createTestProduct(t, db, "Leash", "5.00", 10)
	productB := createTestProduct(t, db, "Collar", "7.00", 10)
	productC := createTestProduct(t, db, "Bowl", "3.00", 10)

	// Cart holds both purchased products plus one unrelated item.
	for _, p := range []models.Product{productA, productB, productC} {
		require.NoError(t, db.Create(&models.CartItem{UserID: user.ID, ProductID: p.ID, Quantity: 1}).Error)
	}

	order, err := PlaceOrder(db, user.ID, shippingRequest(
		OrderLine{ProductID: productA.ID, Quantity: 2},
		OrderLine{ProductID: productB.ID, Quantity: 1},
	))
	require.NoError(t, err)
	assert.True(t, order.TotalAmount.Equal(decimal.RequireFromString("17.00")),
		"total was %s", order.TotalAmount)

	var items []models.OrderItem
	require.NoError(t, db.Where("order_id = ?", order.ID).Find(&items).Error)
	assert.Len(t, items, 2)

	var remaining []models.CartItem
	require.NoError(t, db.Where("user_id = ?", user.ID).Find(&remaining).Error)
	require.Len(t, remaining, 1)
	assert.Equal(t, productC.ID, remaining[0].ProductID)
}

func TestPlaceOrderEmptyItems(t *testing.T) {
	db := setupDB(t)
	user := createTestUser(t, db)

	_, err := PlaceOrder(db, user.ID, shippingRequest())
	require.ErrorIs(t, err, ErrEmptyOrder)
}

func TestPlaceOrderInvalidQuantity(t *testing.T) {
	db := setupDB(t)
	user := createTestUser(t, db)
	product := createTestProduct(t, db, "Toy", "4.00", 5)

	for _, qty := range []int{0, -1} {
		_, err := PlaceOrder(db, user.ID, shippingRequest(OrderLine{ProductID: product.ID, Quantity: qty}))
		require.ErrorIs(t, err, ErrInvalidQuantity)
	}

	after := reloadProduct(t, db, product.ID)
	assert.Equal(t, 5, after.Stock)
}

func TestPlaceOrderUnknownProductRollsBackEverything(t *testing.T) {
	db := setupDB(t)
	user := createTestUser(t, db)
	product := createTestProduct(t, db, "Brush", "6.00", 8)
	require.NoError(t, db.Create(&models.CartItem{UserID: user.ID, ProductID: product.ID, Quantity: 2}).Error)

	// Valid first line, unknown second line: nothing may commit.
	_, err := PlaceOrder(db, user.ID, shippingRequest(
		OrderLine{ProductID: product.ID, Quantity: 2},
		OrderLine{ProductID: 99999, Quantity: 1},
	))
	require.ErrorIs(t, err, ErrProductNotFound)

	after := reloadProduct(t, db, product.ID)
	assert.Equal(t, 8, after.Stock)
	assert.Equal(t, 0, after.Sales)

	var orderCount, itemCount, cartCount int64
	db.Model(&models.Order{}).Count(&orderCount)
	db.Model(&models.OrderItem{}).Count(&itemCount)
	db.Model(&models.CartItem{}).Where("user_id = ?", user.ID).Count(&cartCount)
	assert.Zero(t, orderCount)
	assert.Zero(t, itemCount)
	assert.Equal(t, int64(1), cartCount)
}

func TestPlaceOrderInactiveProduct(t *testing.T) {
	db := setupDB(t)
	user := createTestUser(t, db)
	product := createTestProduct(t, db, "Old Toy", "4.00", 5)
	require.NoError(t, db.Model(&product).Update("status", models.ProductStatusInactive).Error)

	_, err := PlaceOrder(db, user.ID, shippingRequest(OrderLine{ProductID: product.ID, Quantity: 1}))
	require.ErrorIs(t, err, ErrProductNotFound)
}

func TestPlaceOrderDuplicateLines(t *testing.T) {
	db := setupDB(t)
	user := createTestUser(t, db)

	t.Run("combined quantity within stock", func(t *testing.T) {
		product := createTestProduct(t, db, "Treats", "2.50", 5)

		order, err := PlaceOrder(db, user.ID, shippingRequest(
			OrderLine{ProductID: product.ID, Quantity: 2},
			OrderLine{ProductID: product.ID, Quantity: 2},
		))
		require.NoError(t, err)
		assert.True(t, order.TotalAmount.Equal(decimal.RequireFromString("10.00")))

		after := reloadProduct(t, db, product.ID)
		assert.Equal(t, 1, after.Stock)
		assert.Equal(t, 4, after.Sales)

		var items []models.OrderItem
		require.NoError(t, db.Where("order_id = ?", order.ID).Find(&items).Error)
		assert.Len(t, items, 2)
	})

	t.Run("combined quantity exceeds stock", func(t *testing.T) {
		product := createTestProduct(t, db, "Catnip", "2.50", 5)

		_, err := PlaceOrder(db, user.ID, shippingRequest(
			OrderLine{ProductID: product.ID, Quantity: 3},
			OrderLine{ProductID: product.ID, Quantity: 3},
		))
		require.ErrorIs(t, err, ErrOutOfStock)

		after := reloadProduct(t, db, product.ID)
		assert.Equal(t, 5, after.Stock)
		assert.Equal(t, 0, after.Sales)
	})
}

func TestPlaceOrderPriceSnapshotSurvivesCatalogEdit(t *testing.T) {
	db := setupDB(t)
	user := createTestUser(t, db)
	product := createTestProduct(t, db, "Bed", "20.00", 5)

	order, err := PlaceOrder(db, user.ID, shippingRequest(OrderLine{ProductID: product.ID, Quantity: 1}))
	require.NoError(t, err)

	require.NoError(t, db.Model(&models.Product{}).
		Where("id = ?", product.ID).
		Update("price", decimal.RequireFromString("35.00")).Error)

	var item models.OrderItem
	require.NoError(t, db.Where("order_id = ?", order.ID).First(&item).Error)
	assert.True(t, item.Price.Equal(decimal.RequireFromString("20.00")))

	var reloaded models.Order
	require.NoError(t, db.First(&reloaded, order.ID).Error)
	assert.True(t, reloaded.TotalAmount.Equal(decimal.RequireFromString("20.00")))
}

func TestPlaceOrderConcurrentOversell(t *testing.T) {
	db := setupDB(t)
	userA := createTestUser(t, db)
	userB := createTestUser(t, db)

	// Repeated rounds: the race only bites when the two transactions
	// actually overlap, and the loser must always see an out-of-stock
	// error, never a lock failure.
	const rounds = 10
	for round := 0; round < rounds; round++ {
		product := createTestProduct(t, db, fmt.Sprintf("Limited Edition %d", round), "50.00", 5)

		// Both orders want the entire stock; exactly one may win.
		results := make([]error, 2)
		var wg sync.WaitGroup
		for i, user := range []models.User{userA, userB} {
			wg.Add(1)
			go func(i int, userID uint) {
				defer wg.Done()
				_, err := PlaceOrder(db, userID, shippingRequest(OrderLine{ProductID: product.ID, Quantity: 5}))
				results[i] = err
			}(i, user.ID)
		}
		wg.Wait()

		successes := 0
		for _, err := range results {
			if err == nil {
				successes++
			} else {
				require.ErrorIs(t, err, ErrOutOfStock)
			}
		}
		require.Equal(t, 1, successes)

		after := reloadProduct(t, db, product.ID)
		assert.Equal(t, 0, after.Stock)
		assert.Equal(t, 5, after.Sales)
	}

	var orderCount int64
	db.Model(&models.Order{}).Count(&orderCount)
	assert.Equal(t, int64(rounds), orderCount)
}

func TestGenerateOrderNo(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		no := generateOrderNo()
		assert.True(t, len(no) > 10)
		assert.Equal(t, "PET", no[:3])
		assert.False(t, seen[no], "order numbers must be unique")
		seen[no] = true
	}
}
