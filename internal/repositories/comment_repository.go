package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"boulevard/internal/models/db_models"
)

type CommentRepository interface {
	Create(ctx context.Context, comment *db_models.Comment) error
	GetByID(ctx context.Context, id string) (*db_models.Comment, error)
	ListByEstablishment(ctx context.Context, establishmentID uuid.UUID) ([]db_models.Comment, error)
	Delete(ctx context.Context, id uuid.UUID) error
	AverageRating(ctx context.Context, establishmentID uuid.UUID) (float64, int64, error)
}

type commentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) Create(ctx context.Context, comment *db_models.Comment) error {
	return r.db.WithContext(ctx).Create(comment).Error
}

func (r *commentRepository) GetByID(ctx context.Context, id string) (*db_models.Comment, error) {
	var comment db_models.Comment
	err := r.db.WithContext(ctx).Preload("User").First(&comment, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &comment, nil
}

func (r *commentRepository) ListByEstablishment(ctx context.Context, establishmentID uuid.UUID) ([]db_models.Comment, error) {
	var comments []db_models.Comment
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("establishment_id = ?", establishmentID).
		Order("created_at DESC").
		Find(&comments).Error
	if err != nil {
		return nil, err
	}
	return comments, nil
}

func (r *commentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&db_models.Comment{}, "id = ?", id).Error
}

// AverageRating ignores zero ratings, which mark text-only comments.
func (r *commentRepository) AverageRating(ctx context.Context, establishmentID uuid.UUID) (float64, int64, error) {
	var result struct {
		Avg   float64
		Count int64
	}
	err := r.db.WithContext(ctx).
		Model(&db_models.Comment{}).
		Select("COALESCE(AVG(rating), 0) AS avg, COUNT(*) AS count").
		Where("establishment_id = ? AND rating > 0", establishmentID).
		Scan(&result).Error
	if err != nil {
		return 0, 0, err
	}
	return result.Avg, result.Count, nil
}
