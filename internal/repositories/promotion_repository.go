package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"boulevard/internal/models/db_models"
)

type PromotionRepository interface {
	Create(ctx context.Context, promotion *db_models.Promotion) error
	Update(ctx context.Context, promotion *db_models.Promotion) error
	GetByID(ctx context.Context, id string) (*db_models.Promotion, error)
	ListByEstablishment(ctx context.Context, establishmentID uuid.UUID) ([]db_models.Promotion, error)
	ListActive(ctx context.Context) ([]db_models.Promotion, error)
	Delete(ctx context.Context, id uuid.UUID) error
	ExpireOverdue(ctx context.Context) (int64, error)
}

type promotionRepository struct {
	db *gorm.DB
}

func NewPromotionRepository(db *gorm.DB) PromotionRepository {
	return &promotionRepository{db: db}
}

func (r *promotionRepository) Create(ctx context.Context, promotion *db_models.Promotion) error {
	return r.db.WithContext(ctx).Create(promotion).Error
}

func (r *promotionRepository) Update(ctx context.Context, promotion *db_models.Promotion) error {
	return r.db.WithContext(ctx).Save(promotion).Error
}

func (r *promotionRepository) GetByID(ctx context.Context, id string) (*db_models.Promotion, error) {
	var promotion db_models.Promotion
	err := r.db.WithContext(ctx).First(&promotion, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &promotion, nil
}

func (r *promotionRepository) ListByEstablishment(ctx context.Context, establishmentID uuid.UUID) ([]db_models.Promotion, error) {
	var promotions []db_models.Promotion
	err := r.db.WithContext(ctx).
		Where("establishment_id = ?", establishmentID).
		Order("start_date DESC").
		Find(&promotions).Error
	if err != nil {
		return nil, err
	}
	return promotions, nil
}

func (r *promotionRepository) ListActive(ctx context.Context) ([]db_models.Promotion, error) {
	var promotions []db_models.Promotion
	now := time.Now()
	err := r.db.WithContext(ctx).
		Where("status = ? AND start_date <= ? AND end_date >= ?", db_models.PromotionActive, now, now).
		Order("start_date DESC").
		Find(&promotions).Error
	if err != nil {
		return nil, err
	}
	return promotions, nil
}

func (r *promotionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&db_models.Promotion{}, "id = ?", id).Error
}

func (r *promotionRepository) ExpireOverdue(ctx context.Context) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&db_models.Promotion{}).
		Where("status = ? AND end_date < ?", db_models.PromotionActive, time.Now()).
		Update("status", db_models.PromotionExpired)
	return result.RowsAffected, result.Error
}
