package dashboard_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"boulevard/internal/repositories"
	"boulevard/internal/services"
)

var Module = fx.Provide(
	provideDashboardRepo, provideDashboardService)

func provideDashboardRepo(db *gorm.DB) repositories.DashboardRepository {
	return repositories.NewDashboardRepository(db)
}

func provideDashboardService(dashboard repositories.DashboardRepository) services.DashboardService {
	return services.NewDashboardService(dashboard)
}
