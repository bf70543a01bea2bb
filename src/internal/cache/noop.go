package cache

import (
	"context"

	"bizpulse-api/src/internal/models"
)

type noopService struct{}

// NewNoopService is used when redis is not configured; every lookup misses.
func NewNoopService() Service {
	return noopService{}
}

func (noopService) GetSession(context.Context, string) (*models.Session, error) { return nil, nil }

func (noopService) CacheSession(context.Context, *models.Session) error { return nil }

func (noopService) RevokeSession(context.Context, string) error { return nil }

func (noopService) GetDashboardStats(context.Context, string) (*models.DashboardStats, error) {
	return nil, nil
}

func (noopService) SaveDashboardStats(context.Context, string, *models.DashboardStats) error {
	return nil
}
