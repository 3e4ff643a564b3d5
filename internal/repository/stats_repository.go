package repository

import (
	"sneakerhub/internal/models"

	"gorm.io/gorm"
)

// StatusCount is a per-status order count and amount for one customer.
type StatusCount struct {
	Status      string
	OrderCount  int64
	StatusTotal float64
}

// StatusQuantity is a per-status purchased item quantity for one customer.
type StatusQuantity struct {
	Status        string
	TotalQuantity int64
}

type StatsRepository interface {
	DashboardStats() (*models.DashboardStats, error)
	StatusBreakdown(userID uint) ([]StatusCount, error)
	ItemQuantities(userID uint) ([]StatusQuantity, error)
}

type statsRepository struct {
	db *gorm.DB
}

func NewStatsRepository(db *gorm.DB) StatsRepository {
	return &statsRepository{db: db}
}

func (r *statsRepository) DashboardStats() (*models.DashboardStats, error) {
	var stats models.DashboardStats

	err := r.db.Model(&models.Order{}).
		Select("COALESCE(SUM(total_amount), 0)").
		Scan(&stats.TotalSales).Error
	if err != nil {
		return nil, err
	}

	if err := r.db.Model(&models.Order{}).Count(&stats.TotalOrders).Error; err != nil {
		return nil, err
	}

	err = r.db.Model(&models.User{}).
		Where("role = ?", string(models.RoleUser)).
		Count(&stats.TotalCustomers).Error
	if err != nil {
		return nil, err
	}

	if err := r.db.Model(&models.Product{}).Count(&stats.TotalProducts).Error; err != nil {
		return nil, err
	}

	return &stats, nil
}

func (r *statsRepository) StatusBreakdown(userID uint) ([]StatusCount, error) {
	var rows []StatusCount
	err := r.db.Model(&models.Order{}).
		Select("status, COUNT(*) as order_count, COALESCE(SUM(total_amount), 0) as status_total").
		Where("user_id = ?", userID).
		Group("status").
		Scan(&rows).Error
	return rows, err
}

func (r *statsRepository) ItemQuantities(userID uint) ([]StatusQuantity, error) {
	var rows []StatusQuantity
	err := r.db.Model(&models.Order{}).
		Select("orders.status, COALESCE(SUM(order_items.quantity), 0) as total_quantity").
		Joins("LEFT JOIN order_items ON order_items.order_id = orders.id").
		Where("orders.user_id = ?", userID).
		Group("orders.status").
		Scan(&rows).Error
	return rows, err
}
