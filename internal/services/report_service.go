package services

import (
	"time"

	"sneakerhub/internal/models"
	"sneakerhub/internal/repository"
)

type ReportService interface {
	DashboardStats() (*models.DashboardStats, error)
	CustomerSummaries() ([]models.CustomerSummary, error)
}

type reportService struct {
	statsRepo repository.StatsRepository
	userRepo  repository.UserRepository
	cache     StatsCache
	cacheTTL  time.Duration
}

func NewReportService(statsRepo repository.StatsRepository, userRepo repository.UserRepository, cache StatsCache, cacheTTL time.Duration) ReportService {
	return &reportService{statsRepo: statsRepo, userRepo: userRepo, cache: cache, cacheTTL: cacheTTL}
}

func (s *reportService) DashboardStats() (*models.DashboardStats, error) {
	if s.cache != nil {
		if cached, err := s.cache.GetDashboardStats(); err == nil {
			return cached, nil
		}
	}

	stats, err := s.statsRepo.DashboardStats()
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		s.cache.SetDashboardStats(stats, s.cacheTTL)
	}
	return stats, nil
}

func (s *reportService) CustomerSummaries() ([]models.CustomerSummary, error) {
	customers, err := s.userRepo.GetCustomers()
	if err != nil {
		return nil, err
	}

	summaries := make([]models.CustomerSummary, 0, len(customers))
	for _, customer := range customers {
		breakdown, err := s.statsRepo.StatusBreakdown(customer.ID)
		if err != nil {
			return nil, err
		}
		quantities, err := s.statsRepo.ItemQuantities(customer.ID)
		if err != nil {
			return nil, err
		}

		quantityByStatus := make(map[string]int64, len(quantities))
		var totalItems int64
		for _, q := range quantities {
			quantityByStatus[q.Status] = q.TotalQuantity
			totalItems += q.TotalQuantity
		}

		// Every status appears in the distribution, zero-filled.
		distribution := make(map[string]models.StatusBucket, len(models.OrderStatuses))
		for _, status := range models.OrderStatuses {
			distribution[status] = models.StatusBucket{}
		}

		var totalOrders int64
		var totalSpent float64
		for _, row := range breakdown {
			totalOrders += row.OrderCount
			totalSpent += row.StatusTotal
			if _, ok := distribution[row.Status]; ok {
				distribution[row.Status] = models.StatusBucket{
					Count: row.OrderCount,
					Total: row.StatusTotal,
					Items: quantityByStatus[row.Status],
				}
			}
		}

		summary := models.OrderSummary{
			TotalOrders: totalOrders,
			TotalSpent:  totalSpent,
			TotalItems:  totalItems,
		}
		if totalOrders > 0 {
			summary.AverageOrderValue = totalSpent / float64(totalOrders)
		}

		summaries = append(summaries, models.CustomerSummary{
			ID:                      customer.ID,
			FirstName:               customer.FirstName,
			LastName:                customer.LastName,
			Email:                   customer.Email,
			Phone:                   customer.Phone,
			Role:                    customer.Role,
			CreatedAt:               customer.CreatedAt,
			OrderStatusDistribution: distribution,
			OrderSummary:            summary,
		})
	}
	return summaries, nil
}
