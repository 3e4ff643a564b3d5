package services

import (
	"errors"

	"sneakerhub/internal/models"
	"sneakerhub/internal/repository"

	"gorm.io/gorm"
)

var ErrInsufficientStock = errors.New("not enough stock available")

type CartService interface {
	AddItem(userID, productID uint, quantity int) error
	GetCart(userID uint) ([]models.CartLine, float64, error)
	UpdateQuantity(userID, productID uint, quantity int) error
}

type cartService struct {
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
}

func NewCartService(cartRepo repository.CartRepository, productRepo repository.ProductRepository) CartService {
	return &cartService{cartRepo: cartRepo, productRepo: productRepo}
}

func (s *cartService) AddItem(userID, productID uint, quantity int) error {
	product, err := s.productRepo.GetByID(productID)
	if err != nil {
		return err
	}

	if product.Stock < quantity {
		return ErrInsufficientStock
	}

	// Adding a product already in the cart bumps its quantity.
	_, err = s.cartRepo.GetItem(userID, productID)
	if err == nil {
		return s.cartRepo.AddQuantity(userID, productID, quantity)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	return s.cartRepo.Create(&models.CartItem{
		UserID:    userID,
		ProductID: productID,
		Quantity:  quantity,
	})
}

func (s *cartService) GetCart(userID uint) ([]models.CartLine, float64, error) {
	lines, err := s.cartRepo.GetLines(userID)
	if err != nil {
		return nil, 0, err
	}

	var total float64
	for _, line := range lines {
		total += line.Price * float64(line.Quantity)
	}
	return lines, total, nil
}

func (s *cartService) UpdateQuantity(userID, productID uint, quantity int) error {
	// Setting quantity to zero (or below) removes the line.
	if quantity <= 0 {
		return s.cartRepo.Remove(userID, productID)
	}
	return s.cartRepo.SetQuantity(userID, productID, quantity)
}
