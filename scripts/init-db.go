package main

import (
	"fmt"
	"log"

	"sneakerhub/internal/config"
	"sneakerhub/internal/database"
	"sneakerhub/internal/migrations"
	"sneakerhub/internal/models"
	"sneakerhub/internal/repository"
)

func main() {
	fmt.Println("Initializing database...")

	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Force recreate all tables
	fmt.Println("Dropping existing tables...")
	err = db.Migrator().DropTable(
		&models.User{},
		&models.Product{},
		&models.CartItem{},
		&models.Order{},
		&models.OrderItem{},
		&models.StoreSettings{},
	)
	if err != nil {
		log.Printf("Warning: Error dropping tables: %v", err)
	}

	// Recreate schema and default rows
	if err := migrations.RunMigrations(db); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Seed a small starting catalog
	fmt.Println("Seeding sample products...")
	productRepo := repository.NewProductRepository(db)

	catalog := []models.Product{
		{Name: "Air Max 90", Description: "Classic running silhouette", Price: 120.00, Stock: 25, Brand: "Nike"},
		{Name: "Ultraboost 22", Description: "Responsive everyday trainer", Price: 180.00, Stock: 18, Brand: "Adidas"},
		{Name: "Classic Leather", Description: "Timeless low-top", Price: 80.00, Stock: 30, Brand: "Reebok"},
		{Name: "Old Skool", Description: "Skate staple with side stripe", Price: 65.00, Stock: 40, Brand: "Vans"},
		{Name: "Suede Classic", Description: "Street icon since 1968", Price: 70.00, Stock: 22, Brand: "Puma"},
	}
	for i := range catalog {
		if err := productRepo.Create(&catalog[i]); err != nil {
			log.Printf("Warning: Failed to seed product %q: %v", catalog[i].Name, err)
		}
	}

	fmt.Println("Database initialization completed successfully!")
	fmt.Println("Admin login: admin@sneakerhub.com / Adminsneakerhub123!")
}
