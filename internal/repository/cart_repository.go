package repository

import (
	"sneakerhub/internal/models"

	"gorm.io/gorm"
)

type CartRepository interface {
	GetItem(userID, productID uint) (*models.CartItem, error)
	Create(item *models.CartItem) error
	AddQuantity(userID, productID uint, quantity int) error
	SetQuantity(userID, productID uint, quantity int) error
	Remove(userID, productID uint) error
	GetLines(userID uint) ([]models.CartLine, error)
	Clear(userID uint) error
}

type cartRepository struct {
	db *gorm.DB
}

func NewCartRepository(db *gorm.DB) CartRepository {
	return &cartRepository{db: db}
}

func (r *cartRepository) GetItem(userID, productID uint) (*models.CartItem, error) {
	var item models.CartItem
	err := r.db.Where("user_id = ? AND product_id = ?", userID, productID).First(&item).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *cartRepository) Create(item *models.CartItem) error {
	return r.db.Create(item).Error
}

func (r *cartRepository) AddQuantity(userID, productID uint, quantity int) error {
	return r.db.Model(&models.CartItem{}).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Update("quantity", gorm.Expr("quantity + ?", quantity)).Error
}

func (r *cartRepository) SetQuantity(userID, productID uint, quantity int) error {
	return r.db.Model(&models.CartItem{}).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Update("quantity", quantity).Error
}

func (r *cartRepository) Remove(userID, productID uint) error {
	return r.db.Where("user_id = ? AND product_id = ?", userID, productID).Delete(&models.CartItem{}).Error
}

func (r *cartRepository) GetLines(userID uint) ([]models.CartLine, error) {
	var lines []models.CartLine
	err := r.db.Table("cart_items").
		Select("cart_items.id, cart_items.user_id, cart_items.product_id, cart_items.quantity, products.name, products.price, products.stock, products.image_url").
		Joins("JOIN products ON products.id = cart_items.product_id AND products.deleted_at IS NULL").
		Where("cart_items.user_id = ?", userID).
		Scan(&lines).Error
	return lines, err
}

func (r *cartRepository) Clear(userID uint) error {
	return r.db.Where("user_id = ?", userID).Delete(&models.CartItem{}).Error
}
