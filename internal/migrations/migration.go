package migrations

import (
	"errors"
	"log"

	"sneakerhub/internal/database"
	"sneakerhub/internal/models"
	"sneakerhub/internal/repository"
	"sneakerhub/internal/services"

	"gorm.io/gorm"
)

// RunMigrations creates the schema and the default rows the store needs to
// come up on an empty database.
func RunMigrations(db *gorm.DB) error {
	log.Println("Running database migrations...")

	if err := database.AutoMigrate(db); err != nil {
		return err
	}

	if err := EnsureDefaults(db); err != nil {
		log.Printf("Warning: Failed to create default data: %v", err)
	}

	log.Println("Database migrations completed successfully!")
	return nil
}

// EnsureDefaults creates the admin account and the store settings row when
// they are missing. Existing rows are left alone.
func EnsureDefaults(db *gorm.DB) error {
	userRepo := repository.NewUserRepository(db)
	userService := services.NewUserService(userRepo)

	_, err := userRepo.GetByEmail("admin@sneakerhub.com")
	if errors.Is(err, gorm.ErrRecordNotFound) {
		log.Println("Creating default admin user...")
		admin := &models.User{
			FirstName: "Admin",
			LastName:  "User",
			Email:     "admin@sneakerhub.com",
			Phone:     "1234567890",
			Role:      string(models.RoleAdmin),
		}
		if err := userService.Register(admin, "Adminsneakerhub123!"); err != nil {
			log.Printf("Warning: Failed to create default admin user: %v", err)
		} else {
			log.Println("Default admin user created")
		}
	} else if err != nil {
		return err
	}

	settingsRepo := repository.NewSettingsRepository(db)
	_, err = settingsRepo.Get()
	if errors.Is(err, gorm.ErrRecordNotFound) {
		log.Println("Creating default store settings...")
		if err := settingsRepo.Create(models.DefaultStoreSettings()); err != nil {
			log.Printf("Warning: Failed to create default settings: %v", err)
		} else {
			log.Println("Default settings created")
		}
	} else if err != nil {
		return err
	}

	return nil
}
