package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"testing"
	"time"

	"sneakerhub/internal/auth"
	"sneakerhub/internal/database"
	"sneakerhub/internal/handlers"
	"sneakerhub/internal/middleware"
	"sneakerhub/internal/models"
	"sneakerhub/internal/repository"
	"sneakerhub/internal/services"
	"sneakerhub/pkg/imagestore"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type testEnv struct {
	router *gin.Engine
	db     *gorm.DB
	tokens *auth.Manager
	users  services.UserService
}

// setupEnv wires the full application against an in-memory database, with
// caching disabled.
func setupEnv(t *testing.T) *testEnv {
	gin.SetMode(gin.TestMode)

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

	images, err := imagestore.New(t.TempDir())
	if err != nil {
		t.Fatalf("failed to create image store: %v", err)
	}

	tokens := auth.NewManager("test-secret-key", time.Hour)

	userRepo := repository.NewUserRepository(db)
	productRepo := repository.NewProductRepository(db)
	cartRepo := repository.NewCartRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)
	statsRepo := repository.NewStatsRepository(db)

	userService := services.NewUserService(userRepo)
	productService := services.NewProductService(productRepo)
	cartService := services.NewCartService(cartRepo, productRepo)
	orderService := services.NewOrderService(orderRepo, userRepo, nil)
	settingsService := services.NewSettingsService(settingsRepo, nil, 0)
	reportService := services.NewReportService(statsRepo, userRepo, nil, 0)

	authHandler := handlers.NewAuthHandler(userService, tokens)
	profileHandler := handlers.NewProfileHandler(userService, orderService, cartService)
	productHandler := handlers.NewProductHandler(productService)
	cartHandler := handlers.NewCartHandler(cartService)
	orderHandler := handlers.NewOrderHandler(orderService)
	adminHandler := handlers.NewAdminHandler(productService, orderService, reportService, images)
	settingsHandler := handlers.NewSettingsHandler(settingsService)

	router := gin.New()

	router.POST("/signup", authHandler.Signup)
	router.POST("/login", authHandler.Login)
	router.GET("/products", productHandler.List)
	router.GET("/settings", settingsHandler.Get)

	authed := router.Group("", middleware.RequireAuth(tokens))
	{
		authed.GET("/profile/current", profileHandler.Current)
		authed.POST("/cart", cartHandler.Add)
		authed.GET("/cart", cartHandler.List)
		authed.PUT("/cart/:productId", cartHandler.UpdateQuantity)
		authed.POST("/orders", orderHandler.Create)
		authed.GET("/my-orders", orderHandler.MyOrders)
	}

	self := router.Group("", middleware.RequireAuth(tokens), middleware.RequireSelf())
	{
		self.GET("/profile/:userId", profileHandler.Get)
		self.PUT("/profile/:userId", profileHandler.Update)
		self.PUT("/profile/:userId/password", profileHandler.ChangePassword)
		self.GET("/orders/:userId", profileHandler.Orders)
		self.GET("/cart/:userId", profileHandler.Cart)
	}

	admin := router.Group("/admin", middleware.RequireAuth(tokens), middleware.RequireAdmin())
	{
		admin.GET("/stats", adminHandler.Stats)
		admin.GET("/users", adminHandler.Users)
		admin.GET("/orders", adminHandler.Orders)
		admin.GET("/orders/:id", adminHandler.OrderDetails)
		admin.PUT("/orders/:id", adminHandler.UpdateOrderStatus)
		admin.GET("/products", adminHandler.Products)
		admin.POST("/products", adminHandler.CreateProduct)
		admin.PUT("/products/:id", adminHandler.UpdateProduct)
		admin.DELETE("/products/:id", adminHandler.DeleteProduct)
		admin.GET("/settings", settingsHandler.Get)
		admin.PUT("/settings", settingsHandler.Update)
	}

	return &testEnv{router: router, db: db, tokens: tokens, users: userService}
}

// createUser registers an account directly through the user service and
// returns it with a valid token.
func (e *testEnv) createUser(t *testing.T, email, role string) (*models.User, string) {
	user := &models.User{
		FirstName: "Test",
		LastName:  "User",
		Email:     email,
		Phone:     "5551234567",
		Role:      role,
	}
	if err := e.users.Register(user, "Password123!"); err != nil {
		t.Fatalf("failed to register %s: %v", email, err)
	}

	token, err := e.tokens.Generate(user)
	if err != nil {
		t.Fatalf("failed to generate token for %s: %v", email, err)
	}
	return user, token
}

func (e *testEnv) createProduct(t *testing.T, name string, price float64, stock int) *models.Product {
	product := &models.Product{Name: name, Price: price, Stock: stock, Brand: "Nike"}
	if err := e.db.Create(product).Error; err != nil {
		t.Fatalf("failed to create product %s: %v", name, err)
	}
	return product
}

func (e *testEnv) addToCart(t *testing.T, userID, productID uint, quantity int) {
	err := e.db.Create(&models.CartItem{UserID: userID, ProductID: productID, Quantity: quantity}).Error
	if err != nil {
		t.Fatalf("failed to add cart item: %v", err)
	}
}

// request performs an HTTP request against the test router. A non-nil body is
// JSON encoded; a non-empty token is sent as a bearer token.
func (e *testEnv) request(t *testing.T, method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal request body: %v", err)
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	recorder := httptest.NewRecorder()
	e.router.ServeHTTP(recorder, req)
	return recorder
}

func decodeBody(t *testing.T, recorder *httptest.ResponseRecorder) map[string]interface{} {
	var body map[string]interface{}
	assert.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	return body
}
