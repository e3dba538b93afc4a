package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"boulevard/internal/models/db_models"
)

type ScheduleRepository interface {
	Create(ctx context.Context, schedule *db_models.Schedule) error
	Update(ctx context.Context, schedule *db_models.Schedule) error
	GetByID(ctx context.Context, id string) (*db_models.Schedule, error)
	ListByEstablishment(ctx context.Context, establishmentID uuid.UUID) ([]db_models.Schedule, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type scheduleRepository struct {
	db *gorm.DB
}

func NewScheduleRepository(db *gorm.DB) ScheduleRepository {
	return &scheduleRepository{db: db}
}

func (r *scheduleRepository) Create(ctx context.Context, schedule *db_models.Schedule) error {
	return r.db.WithContext(ctx).Create(schedule).Error
}

func (r *scheduleRepository) Update(ctx context.Context, schedule *db_models.Schedule) error {
	return r.db.WithContext(ctx).Save(schedule).Error
}

func (r *scheduleRepository) GetByID(ctx context.Context, id string) (*db_models.Schedule, error) {
	var schedule db_models.Schedule
	err := r.db.WithContext(ctx).First(&schedule, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &schedule, nil
}

func (r *scheduleRepository) ListByEstablishment(ctx context.Context, establishmentID uuid.UUID) ([]db_models.Schedule, error) {
	var schedules []db_models.Schedule
	err := r.db.WithContext(ctx).
		Where("establishment_id = ?", establishmentID).
		Find(&schedules).Error
	if err != nil {
		return nil, err
	}
	return schedules, nil
}

func (r *scheduleRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&db_models.Schedule{}, "id = ?", id).Error
}
