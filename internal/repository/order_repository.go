package repository

import (
	"errors"

	"sneakerhub/internal/models"

	"gorm.io/gorm"
)

// ErrEmptyCart is returned by CreateFromCart when the user has nothing to
// check out; nothing is written in that case.
var ErrEmptyCart = errors.New("cart is empty")

type OrderRepository interface {
	// CreateFromCart converts the user's cart into an order atomically:
	// it reads the cart joined with current product prices, computes the
	// total, inserts the header and one item per cart line, decrements
	// product stock, and clears the cart. Any failure rolls back the lot.
	// The caller fills UserID, OrderNumber and the payment fields.
	CreateFromCart(order *models.Order) ([]models.OrderItem, error)

	GetByID(id uint) (*models.Order, error)
	GetByUserID(userID uint) ([]models.Order, error)
	GetAll() ([]models.Order, error)
	GetItems(orderID uint) ([]models.OrderItem, error)
	GetItemDetails(orderID uint) ([]models.OrderItemDetail, error)
	AllItemDetails() ([]models.OrderItemDetail, error)
	ListRowsByUser(userID uint) ([]models.UserOrderRow, error)
	UpdateStatus(id uint, status string) (previous string, err error)
	StatsForUser(userID uint) (*models.UserOrderStats, error)
}

type orderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepository{db: db}
}

func (r *orderRepository) CreateFromCart(order *models.Order) ([]models.OrderItem, error) {
	var items []models.OrderItem

	err := r.db.Transaction(func(tx *gorm.DB) error {
		var lines []models.CartLine
		err := tx.Table("cart_items").
			Select("cart_items.product_id, cart_items.quantity, products.price, products.stock").
			Joins("JOIN products ON products.id = cart_items.product_id AND products.deleted_at IS NULL").
			Where("cart_items.user_id = ?", order.UserID).
			Scan(&lines).Error
		if err != nil {
			return err
		}

		if len(lines) == 0 {
			return ErrEmptyCart
		}

		var total float64
		for _, line := range lines {
			total += line.Price * float64(line.Quantity)
		}
		order.TotalAmount = total

		if err := tx.Create(order).Error; err != nil {
			return err
		}

		for _, line := range lines {
			item := models.OrderItem{
				OrderID:   order.ID,
				ProductID: line.ProductID,
				Quantity:  line.Quantity,
				Price:     line.Price,
			}
			if err := tx.Create(&item).Error; err != nil {
				return err
			}
			items = append(items, item)

			err := tx.Model(&models.Product{}).
				Where("id = ?", line.ProductID).
				Update("stock", gorm.Expr("stock - ?", line.Quantity)).Error
			if err != nil {
				return err
			}
		}

		return tx.Where("user_id = ?", order.UserID).Delete(&models.CartItem{}).Error
	})
	if err != nil {
		return nil, err
	}

	return items, nil
}

func (r *orderRepository) GetByID(id uint) (*models.Order, error) {
	var order models.Order
	err := r.db.First(&order, id).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *orderRepository) GetByUserID(userID uint) ([]models.Order, error) {
	var orders []models.Order
	err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&orders).Error
	return orders, err
}

func (r *orderRepository) GetAll() ([]models.Order, error) {
	var orders []models.Order
	err := r.db.Order("created_at DESC").Find(&orders).Error
	return orders, err
}

func (r *orderRepository) GetItems(orderID uint) ([]models.OrderItem, error) {
	var items []models.OrderItem
	err := r.db.Where("order_id = ?", orderID).Find(&items).Error
	return items, err
}

func (r *orderRepository) GetItemDetails(orderID uint) ([]models.OrderItemDetail, error) {
	var details []models.OrderItemDetail
	err := r.db.Table("order_items").
		Select("order_items.order_id, order_items.product_id, order_items.quantity, order_items.price, products.name as product_name, products.image_url as product_image").
		Joins("JOIN products ON products.id = order_items.product_id").
		Where("order_items.order_id = ?", orderID).
		Scan(&details).Error
	return details, err
}

func (r *orderRepository) AllItemDetails() ([]models.OrderItemDetail, error) {
	var details []models.OrderItemDetail
	err := r.db.Table("order_items").
		Select("order_items.order_id, order_items.product_id, order_items.quantity, order_items.price, products.name as product_name, products.image_url as product_image").
		Joins("JOIN products ON products.id = order_items.product_id").
		Scan(&details).Error
	return details, err
}

func (r *orderRepository) ListRowsByUser(userID uint) ([]models.UserOrderRow, error) {
	var rows []models.UserOrderRow
	err := r.db.Table("orders").
		Select("orders.id, orders.order_number, orders.total_amount, orders.status, orders.payment_method, orders.payment_status, orders.delivery_address, orders.created_at, order_items.quantity, order_items.price, products.name as product_name, products.image_url as product_image").
		Joins("JOIN order_items ON order_items.order_id = orders.id").
		Joins("JOIN products ON products.id = order_items.product_id").
		Where("orders.user_id = ? AND orders.deleted_at IS NULL", userID).
		Order("orders.created_at DESC").
		Scan(&rows).Error
	return rows, err
}

func (r *orderRepository) UpdateStatus(id uint, status string) (string, error) {
	var order models.Order
	if err := r.db.First(&order, id).Error; err != nil {
		return "", err
	}

	previous := order.Status
	err := r.db.Model(&models.Order{}).Where("id = ?", id).Update("status", status).Error
	if err != nil {
		return "", err
	}
	return previous, nil
}

func (r *orderRepository) StatsForUser(userID uint) (*models.UserOrderStats, error) {
	var stats models.UserOrderStats
	err := r.db.Model(&models.Order{}).
		Select("COUNT(*) as total_orders, COALESCE(SUM(total_amount), 0) as total_spent, MAX(created_at) as last_order_date").
		Where("user_id = ?", userID).
		Scan(&stats).Error
	if err != nil {
		return nil, err
	}
	return &stats, nil
}
