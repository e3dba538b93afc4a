package services

import (
	"context"

	"boulevard/internal/models/response_models"
	"boulevard/internal/repositories"
	"boulevard/pkg/utils"
)

type DashboardService interface {
	Stats(ctx context.Context) (*response_models.DashboardResponse, error)
}

type dashboardService struct {
	dashboard repositories.DashboardRepository
}

func NewDashboardService(dashboard repositories.DashboardRepository) DashboardService {
	return &dashboardService{dashboard: dashboard}
}

func (s *dashboardService) Stats(ctx context.Context) (*response_models.DashboardResponse, error) {
	stats, err := s.dashboard.Collect(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return stats, nil
}
