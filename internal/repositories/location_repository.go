package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"boulevard/internal/models/db_models"
)

type LocationRepository interface {
	Create(ctx context.Context, location *db_models.Location) error
	Update(ctx context.Context, location *db_models.Location) error
	GetByID(ctx context.Context, id string) (*db_models.Location, error)
	ListByEstablishment(ctx context.Context, establishmentID uuid.UUID) ([]db_models.Location, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type locationRepository struct {
	db *gorm.DB
}

func NewLocationRepository(db *gorm.DB) LocationRepository {
	return &locationRepository{db: db}
}

func (r *locationRepository) Create(ctx context.Context, location *db_models.Location) error {
	return r.db.WithContext(ctx).Create(location).Error
}

func (r *locationRepository) Update(ctx context.Context, location *db_models.Location) error {
	return r.db.WithContext(ctx).Save(location).Error
}

func (r *locationRepository) GetByID(ctx context.Context, id string) (*db_models.Location, error) {
	var location db_models.Location
	err := r.db.WithContext(ctx).First(&location, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &location, nil
}

func (r *locationRepository) ListByEstablishment(ctx context.Context, establishmentID uuid.UUID) ([]db_models.Location, error) {
	var locations []db_models.Location
	err := r.db.WithContext(ctx).
		Where("establishment_id = ?", establishmentID).
		Find(&locations).Error
	if err != nil {
		return nil, err
	}
	return locations, nil
}

func (r *locationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&db_models.Location{}, "id = ?", id).Error
}
