package repositories

import (
	"context"
	"time"

	"gorm.io/gorm"

	"boulevard/internal/models/db_models"
	"boulevard/internal/models/response_models"
)

type DashboardRepository interface {
	Collect(ctx context.Context) (*response_models.DashboardResponse, error)
}

type dashboardRepository struct {
	db *gorm.DB
}

func NewDashboardRepository(db *gorm.DB) DashboardRepository {
	return &dashboardRepository{db: db}
}

func (r *dashboardRepository) Collect(ctx context.Context) (*response_models.DashboardResponse, error) {
	var out response_models.DashboardResponse
	db := r.db.WithContext(ctx)

	counts := []struct {
		dst   *int64
		query *gorm.DB
	}{
		{&out.TotalUsers, db.Model(&db_models.User{})},
		{&out.TotalEstablishments, db.Model(&db_models.Establishment{})},
		{&out.PendingEstablishments, db.Model(&db_models.Establishment{}).Where("status = ?", db_models.StatusPending)},
		{&out.ApprovedEstablishments, db.Model(&db_models.Establishment{}).Where("status = ?", db_models.StatusApproved)},
		{&out.RejectedEstablishments, db.Model(&db_models.Establishment{}).Where("status = ?", db_models.StatusRejected)},
		{&out.EmbeddedEstablishments, db.Model(&db_models.Establishment{}).Where("embedding IS NOT NULL")},
		{&out.TotalComments, db.Model(&db_models.Comment{})},
		{&out.ActivePromotions, db.Model(&db_models.Promotion{}).Where("status = ? AND end_date >= ?", db_models.PromotionActive, time.Now())},
	}
	for _, c := range counts {
		if err := c.query.Count(c.dst).Error; err != nil {
			return nil, err
		}
	}
	return &out, nil
}
