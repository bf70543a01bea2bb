package dashboard

import (
	"context"

	"bizpulse-api/src/internal/cache"
	"bizpulse-api/src/internal/models"

	"github.com/sirupsen/logrus"
)

type Service interface {
	Stats(ctx context.Context, userID string) (*models.DashboardStats, error)
	Activities() []Activity
}

type service struct {
	cache cache.Service
}

func NewService(cacheService cache.Service) Service {
	return &service{cache: cacheService}
}

// Stats is served from the per-user cache when present. Cache failures only
// cost a recomputation.
func (s *service) Stats(ctx context.Context, userID string) (*models.DashboardStats, error) {
	cached, err := s.cache.GetDashboardStats(ctx, userID)
	if err != nil {
		logrus.WithError(err).Warn("Failed to read dashboard stats from cache")
	}
	if cached != nil {
		return cached, nil
	}

	stats := computeStats()

	if err := s.cache.SaveDashboardStats(ctx, userID, stats); err != nil {
		logrus.WithError(err).Warn("Failed to cache dashboard stats")
	}

	return stats, nil
}

func (s *service) Activities() []Activity {
	out := make([]Activity, len(recentActivities))
	copy(out, recentActivities)
	return out
}

func computeStats() *models.DashboardStats {
	return &models.DashboardStats{
		MonthlyRevenue: 145000,
		RevenueTarget:  200000,
		ActiveCustomer: 324,
		GrowthRate:     23.5,
		AIEfficiency:   87.0,
	}
}
