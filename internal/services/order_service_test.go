package services_test

import (
	"fmt"
	"regexp"
	"testing"

	"sneakerhub/internal/database"
	"sneakerhub/internal/models"
	"sneakerhub/internal/repository"
	"sneakerhub/internal/services"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var orderNumberPattern = regexp.MustCompile(`^SH\d{9}$`)

func setupTestDB(t *testing.T) *gorm.DB {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := database.AutoMigrate(db); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return db
}

func newOrderService(db *gorm.DB) services.OrderService {
	return services.NewOrderService(
		repository.NewOrderRepository(db),
		repository.NewUserRepository(db),
		nil,
	)
}

func seedCheckout(t *testing.T, db *gorm.DB) (user models.User, productA, productB models.Product) {
	user = models.User{FirstName: "Test", LastName: "Buyer", Email: "buyer@example.com", Phone: "555", Password: "x", Role: "user"}
	assert.NoError(t, db.Create(&user).Error)

	productA = models.Product{Name: "Air Max 90", Price: 100, Stock: 5, Brand: "Nike"}
	productB = models.Product{Name: "Old Skool", Price: 50, Stock: 1, Brand: "Vans"}
	assert.NoError(t, db.Create(&productA).Error)
	assert.NoError(t, db.Create(&productB).Error)

	assert.NoError(t, db.Create(&models.CartItem{UserID: user.ID, ProductID: productA.ID, Quantity: 2}).Error)
	assert.NoError(t, db.Create(&models.CartItem{UserID: user.ID, ProductID: productB.ID, Quantity: 1}).Error)
	return user, productA, productB
}

func TestPlaceOrder(t *testing.T) {
	db := setupTestDB(t)
	orderService := newOrderService(db)
	user, productA, productB := seedCheckout(t, db)

	order, err := orderService.PlaceOrder(user.ID, "CARD", nil, "123 Test Street")
	assert.NoError(t, err)
	assert.Greater(t, order.ID, uint(0))
	assert.Equal(t, 250.0, order.TotalAmount)
	assert.Regexp(t, orderNumberPattern, order.OrderNumber)
	assert.Equal(t, "pending", order.Status)
	assert.Equal(t, "Paid", order.PaymentStatus)
	assert.Equal(t, "123 Test Street", order.DeliveryAddress)

	// Stock decremented by exactly the ordered quantities
	var a, b models.Product
	assert.NoError(t, db.First(&a, productA.ID).Error)
	assert.NoError(t, db.First(&b, productB.ID).Error)
	assert.Equal(t, 3, a.Stock)
	assert.Equal(t, 0, b.Stock)

	// Cart emptied
	var cartCount int64
	db.Model(&models.CartItem{}).Where("user_id = ?", user.ID).Count(&cartCount)
	assert.Equal(t, int64(0), cartCount)

	// One order with two item snapshots
	var items []models.OrderItem
	assert.NoError(t, db.Where("order_id = ?", order.ID).Find(&items).Error)
	assert.Len(t, items, 2)

	var itemTotal float64
	for _, item := range items {
		itemTotal += item.Price * float64(item.Quantity)
	}
	assert.Equal(t, order.TotalAmount, itemTotal)
}

func TestPlaceOrderPaymentStatus(t *testing.T) {
	db := setupTestDB(t)
	orderService := newOrderService(db)
	user, productA, _ := seedCheckout(t, db)

	t.Run("COD stays pending", func(t *testing.T) {
		order, err := orderService.PlaceOrder(user.ID, "COD", nil, "addr")
		assert.NoError(t, err)
		assert.Equal(t, "Pending", order.PaymentStatus)
	})

	t.Run("GCASH is settled at checkout", func(t *testing.T) {
		assert.NoError(t, db.Create(&models.CartItem{UserID: user.ID, ProductID: productA.ID, Quantity: 1}).Error)

		order, err := orderService.PlaceOrder(user.ID, "GCASH", nil, "addr")
		assert.NoError(t, err)
		assert.Equal(t, "Paid", order.PaymentStatus)
	})
}

func TestPlaceOrderEmptyCart(t *testing.T) {
	db := setupTestDB(t)
	orderService := newOrderService(db)

	user := models.User{FirstName: "No", LastName: "Cart", Email: "empty@example.com", Phone: "555", Password: "x", Role: "user"}
	assert.NoError(t, db.Create(&user).Error)

	_, err := orderService.PlaceOrder(user.ID, "CARD", nil, "addr")
	assert.ErrorIs(t, err, services.ErrEmptyCart)

	// Nothing written
	var orderCount, itemCount int64
	db.Model(&models.Order{}).Count(&orderCount)
	db.Model(&models.OrderItem{}).Count(&itemCount)
	assert.Equal(t, int64(0), orderCount)
	assert.Equal(t, int64(0), itemCount)
}

func TestUpdateStatus(t *testing.T) {
	db := setupTestDB(t)
	orderService := newOrderService(db)
	user, _, _ := seedCheckout(t, db)

	order, err := orderService.PlaceOrder(user.ID, "CARD", nil, "addr")
	assert.NoError(t, err)

	t.Run("rejects unknown status", func(t *testing.T) {
		_, err := orderService.UpdateStatus(order.ID, "teleported")
		assert.ErrorIs(t, err, services.ErrInvalidStatus)
	})

	t.Run("reports previous status", func(t *testing.T) {
		previous, err := orderService.UpdateStatus(order.ID, "shipped")
		assert.NoError(t, err)
		assert.Equal(t, "pending", previous)

		var stored models.Order
		assert.NoError(t, db.First(&stored, order.ID).Error)
		assert.Equal(t, "shipped", stored.Status)
	})

	t.Run("any status may follow any other", func(t *testing.T) {
		previous, err := orderService.UpdateStatus(order.ID, "pending")
		assert.NoError(t, err)
		assert.Equal(t, "shipped", previous)
	})
}

func TestHistoryByUser(t *testing.T) {
	db := setupTestDB(t)
	orderService := newOrderService(db)
	user, _, _ := seedCheckout(t, db)

	order, err := orderService.PlaceOrder(user.ID, "CARD", nil, "addr")
	assert.NoError(t, err)

	history, err := orderService.HistoryByUser(user.ID)
	assert.NoError(t, err)
	assert.Len(t, history, 1)
	assert.Equal(t, order.OrderNumber, history[0].OrderNumber)
	assert.Len(t, history[0].Items, 2)
	assert.NotEmpty(t, history[0].Items[0].ProductName)
}
