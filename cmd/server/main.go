package main

import (
	"log"
	"time"

	"sneakerhub/internal/auth"
	"sneakerhub/internal/config"
	"sneakerhub/internal/database"
	"sneakerhub/internal/handlers"
	"sneakerhub/internal/middleware"
	"sneakerhub/internal/migrations"
	"sneakerhub/internal/redis"
	"sneakerhub/internal/repository"
	"sneakerhub/internal/services"
	"sneakerhub/pkg/imagestore"

	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Create default admin user and settings on first run
	if err := migrations.EnsureDefaults(db); err != nil {
		log.Printf("Warning: Failed to ensure default data: %v", err)
	}

	// Initialize Redis
	redisClient, err := redis.Initialize(cfg.RedisURL)
	if err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}

	// Initialize image store for product uploads
	images, err := imagestore.New(cfg.UploadDir)
	if err != nil {
		log.Fatal("Failed to initialize image store:", err)
	}

	// Initialize token manager
	tokens := auth.NewManager(cfg.JWTSecret, time.Duration(cfg.TokenTTLHours)*time.Hour)
	cacheTTL := time.Duration(cfg.CacheTTL) * time.Second

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	productRepo := repository.NewProductRepository(db)
	cartRepo := repository.NewCartRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)
	statsRepo := repository.NewStatsRepository(db)

	// Initialize services
	userService := services.NewUserService(userRepo)
	productService := services.NewProductService(productRepo)
	cartService := services.NewCartService(cartRepo, productRepo)
	orderService := services.NewOrderService(orderRepo, userRepo, redisClient)
	settingsService := services.NewSettingsService(settingsRepo, redisClient, cacheTTL)
	reportService := services.NewReportService(statsRepo, userRepo, redisClient, cacheTTL)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(userService, tokens)
	profileHandler := handlers.NewProfileHandler(userService, orderService, cartService)
	productHandler := handlers.NewProductHandler(productService)
	cartHandler := handlers.NewCartHandler(cartService)
	orderHandler := handlers.NewOrderHandler(orderService)
	adminHandler := handlers.NewAdminHandler(productService, orderService, reportService, images)
	settingsHandler := handlers.NewSettingsHandler(settingsService)

	// Setup routes
	router := gin.Default()
	router.Static("/uploads", images.Dir())

	// Public routes
	router.POST("/signup", authHandler.Signup)
	router.POST("/login", authHandler.Login)
	router.GET("/products", productHandler.List)
	router.GET("/settings", settingsHandler.Get)

	// Authenticated user routes
	authed := router.Group("", middleware.RequireAuth(tokens))
	{
		authed.GET("/profile/current", profileHandler.Current)
		authed.POST("/cart", cartHandler.Add)
		authed.GET("/cart", cartHandler.List)
		authed.PUT("/cart/:productId", cartHandler.UpdateQuantity)
		authed.POST("/orders", orderHandler.Create)
		authed.GET("/my-orders", orderHandler.MyOrders)
	}

	// Owner-scoped routes
	self := router.Group("", middleware.RequireAuth(tokens), middleware.RequireSelf())
	{
		self.GET("/profile/:userId", profileHandler.Get)
		self.PUT("/profile/:userId", profileHandler.Update)
		self.PUT("/profile/:userId/password", profileHandler.ChangePassword)
		self.GET("/orders/:userId", profileHandler.Orders)
		self.GET("/cart/:userId", profileHandler.Cart)
	}

	// Admin routes
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

	// Start server
	log.Printf("Server starting on port %s", cfg.ServerPort)
	if err := router.Run(":" + cfg.ServerPort); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
