package services

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"sneakerhub/internal/models"
	"sneakerhub/internal/repository"

	"gorm.io/datatypes"
)

var (
	// ErrEmptyCart mirrors the repository sentinel so handlers only deal
	// with the service layer.
	ErrEmptyCart     = repository.ErrEmptyCart
	ErrInvalidStatus = errors.New("invalid status value")
)

// StatsCache is the slice of the redis client the order and report services
// need; a nil cache disables caching.
type StatsCache interface {
	GetDashboardStats() (*models.DashboardStats, error)
	SetDashboardStats(stats *models.DashboardStats, ttl time.Duration) error
	DeleteDashboardStats() error
}

type OrderService interface {
	PlaceOrder(userID uint, paymentMethod string, paymentDetails datatypes.JSON, deliveryAddress string) (*models.Order, error)
	ListRowsByUser(userID uint) ([]models.UserOrderRow, error)
	HistoryByUser(userID uint) ([]models.OrderWithItems, error)
	StatsForUser(userID uint) (*models.UserOrderStats, error)
	AdminList() ([]models.AdminOrderRow, error)
	AdminGet(orderID uint) (*models.AdminOrderDetail, error)
	UpdateStatus(orderID uint, status string) (previous string, err error)
}

type orderService struct {
	orderRepo repository.OrderRepository
	userRepo  repository.UserRepository
	cache     StatsCache
}

func NewOrderService(orderRepo repository.OrderRepository, userRepo repository.UserRepository, cache StatsCache) OrderService {
	return &orderService{orderRepo: orderRepo, userRepo: userRepo, cache: cache}
}

func (s *orderService) PlaceOrder(userID uint, paymentMethod string, paymentDetails datatypes.JSON, deliveryAddress string) (*models.Order, error) {
	order := &models.Order{
		UserID:          userID,
		OrderNumber:     generateOrderNumber(),
		Status:          string(models.OrderPending),
		PaymentMethod:   paymentMethod,
		PaymentStatus:   paymentStatusFor(paymentMethod),
		PaymentDetails:  paymentDetails,
		DeliveryAddress: deliveryAddress,
	}

	if _, err := s.orderRepo.CreateFromCart(order); err != nil {
		return nil, err
	}

	if s.cache != nil {
		s.cache.DeleteDashboardStats()
	}

	return order, nil
}

// generateOrderNumber builds SH + a 6-digit time-derived component + a
// 3-digit random component. Uniqueness is best-effort here; the unique
// constraint on orders.order_number rejects the rare collision and the
// whole checkout rolls back.
func generateOrderNumber() string {
	timestamp := time.Now().UnixMilli() % 1000000
	return fmt.Sprintf("SH%06d%03d", timestamp, rand.Intn(1000))
}

// Cash on delivery is collected later; card and GCash are treated as settled
// at checkout.
func paymentStatusFor(method string) string {
	if method == string(models.PaymentCOD) {
		return string(models.PaymentPending)
	}
	return string(models.PaymentPaid)
}

func (s *orderService) ListRowsByUser(userID uint) ([]models.UserOrderRow, error) {
	return s.orderRepo.ListRowsByUser(userID)
}

func (s *orderService) HistoryByUser(userID uint) ([]models.OrderWithItems, error) {
	orders, err := s.orderRepo.GetByUserID(userID)
	if err != nil {
		return nil, err
	}

	history := make([]models.OrderWithItems, 0, len(orders))
	for _, order := range orders {
		items, err := s.orderRepo.GetItemDetails(order.ID)
		if err != nil {
			return nil, err
		}
		history = append(history, models.OrderWithItems{Order: order, Items: items})
	}
	return history, nil
}

func (s *orderService) StatsForUser(userID uint) (*models.UserOrderStats, error) {
	return s.orderRepo.StatsForUser(userID)
}

func (s *orderService) AdminList() ([]models.AdminOrderRow, error) {
	orders, err := s.orderRepo.GetAll()
	if err != nil {
		return nil, err
	}

	users, err := s.userRepo.GetAll()
	if err != nil {
		return nil, err
	}
	usersByID := make(map[uint]models.User, len(users))
	for _, user := range users {
		usersByID[user.ID] = user
	}

	details, err := s.orderRepo.AllItemDetails()
	if err != nil {
		return nil, err
	}
	namesByOrder := make(map[uint][]string)
	for _, detail := range details {
		namesByOrder[detail.OrderID] = append(namesByOrder[detail.OrderID], detail.ProductName)
	}

	rows := make([]models.AdminOrderRow, 0, len(orders))
	for _, order := range orders {
		user := usersByID[order.UserID]
		rows = append(rows, models.AdminOrderRow{
			Order:        order,
			Email:        user.Email,
			FirstName:    user.FirstName,
			LastName:     user.LastName,
			ProductNames: namesByOrder[order.ID],
		})
	}
	return rows, nil
}

func (s *orderService) AdminGet(orderID uint) (*models.AdminOrderDetail, error) {
	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByID(order.UserID)
	if err != nil {
		return nil, err
	}

	items, err := s.orderRepo.GetItemDetails(order.ID)
	if err != nil {
		return nil, err
	}

	return &models.AdminOrderDetail{
		Order:     *order,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Items:     items,
	}, nil
}

func (s *orderService) UpdateStatus(orderID uint, status string) (string, error) {
	if !models.IsValidOrderStatus(status) {
		return "", ErrInvalidStatus
	}
	return s.orderRepo.UpdateStatus(orderID, status)
}
