package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"

	"boulevard/internal/models/db_models"
)

type EstablishmentRepository interface {
	Create(ctx context.Context, est *db_models.Establishment) (uuid.UUID, error)
	Update(ctx context.Context, est *db_models.Establishment) error
	Delete(ctx context.Context, id uuid.UUID) error

	GetByID(ctx context.Context, id string) (*db_models.Establishment, error)
	GetByOwner(ctx context.Context, ownerID string) (*db_models.Establishment, error)
	List(ctx context.Context) ([]db_models.Establishment, error)
	ListByStatus(ctx context.Context, status string) ([]db_models.Establishment, error)
	SearchByText(ctx context.Context, query string) ([]db_models.Establishment, error)

	FindEmbedded(ctx context.Context, categoryIDs, typeIDs []uuid.UUID) ([]db_models.Establishment, error)
	FindMissingEmbedding(ctx context.Context) ([]db_models.Establishment, error)
	UpdateEmbedding(ctx context.Context, id uuid.UUID, vec pgvector.Vector) error
	ClearEmbedding(ctx context.Context, id uuid.UUID) error

	ReplaceCategories(ctx context.Context, est *db_models.Establishment, categories []db_models.Category) error
	ReplaceTypes(ctx context.Context, est *db_models.Establishment, types []db_models.BusinessType) error
	AddFollower(ctx context.Context, est *db_models.Establishment, user *db_models.User) error
	RemoveFollower(ctx context.Context, est *db_models.Establishment, user *db_models.User) error
	AddLike(ctx context.Context, est *db_models.Establishment, user *db_models.User) error
	RemoveLike(ctx context.Context, est *db_models.Establishment, user *db_models.User) error
	ListFollowers(ctx context.Context, id uuid.UUID) ([]db_models.User, error)
}

type establishmentRepository struct {
	db *gorm.DB
}

func NewEstablishmentRepository(db *gorm.DB) EstablishmentRepository {
	return &establishmentRepository{db: db}
}

// escapeLike neutralizes ILIKE wildcards in user input so queries like
// "100%" or "a(b" match literally instead of blowing up or over-matching.
func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

func (r *establishmentRepository) Create(ctx context.Context, est *db_models.Establishment) (uuid.UUID, error) {
	if err := r.db.WithContext(ctx).Create(est).Error; err != nil {
		return uuid.Nil, err
	}
	return est.ID, nil
}

func (r *establishmentRepository) Update(ctx context.Context, est *db_models.Establishment) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Omit("Categories", "Types", "Followers", "Likes", "Comments", "Promotions").Save(est)
		if result.Error != nil {
			return fmt.Errorf("failed to update establishment: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

func (r *establishmentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	err := r.db.WithContext(ctx).Delete(&db_models.Establishment{}, "id = ?", id).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return nil
}

// ------------------- Reads -------------------
// Read helpers return a nil model and nil error when no rows match.

func (r *establishmentRepository) preloaded(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("Locations").
		Preload("Schedules").
		Preload("Categories").
		Preload("Types").
		Preload("Comments").
		Preload("Likes").
		Preload("Followers")
}

func (r *establishmentRepository) GetByID(ctx context.Context, id string) (*db_models.Establishment, error) {
	var est db_models.Establishment
	err := r.preloaded(ctx).
		Preload("Comments.User").
		First(&est, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &est, nil
}

func (r *establishmentRepository) GetByOwner(ctx context.Context, ownerID string) (*db_models.Establishment, error) {
	var est db_models.Establishment
	err := r.preloaded(ctx).
		Preload("Comments.User").
		First(&est, "owner_id = ?", ownerID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &est, nil
}

func (r *establishmentRepository) List(ctx context.Context) ([]db_models.Establishment, error) {
	var ests []db_models.Establishment
	if err := r.preloaded(ctx).Find(&ests).Error; err != nil {
		return nil, err
	}
	return ests, nil
}

func (r *establishmentRepository) ListByStatus(ctx context.Context, status string) ([]db_models.Establishment, error) {
	var ests []db_models.Establishment
	if err := r.preloaded(ctx).Where("status = ?", status).Find(&ests).Error; err != nil {
		return nil, err
	}
	return ests, nil
}

func (r *establishmentRepository) SearchByText(ctx context.Context, query string) ([]db_models.Establishment, error) {
	var ests []db_models.Establishment
	pattern := "%" + escapeLike(query) + "%"
	err := r.preloaded(ctx).
		Where("name ILIKE ? OR description ILIKE ?", pattern, pattern).
		Find(&ests).Error
	if err != nil {
		return nil, err
	}
	return ests, nil
}

func (r *establishmentRepository) FindEmbedded(ctx context.Context, categoryIDs, typeIDs []uuid.UUID) ([]db_models.Establishment, error) {
	q := r.preloaded(ctx).Where("establishments.embedding IS NOT NULL")

	if len(categoryIDs) > 0 || len(typeIDs) > 0 {
		q = q.Distinct("establishments.*").
			Joins("LEFT JOIN establishment_categories ec ON ec.establishment_id = establishments.id").
			Joins("LEFT JOIN establishment_types et ON et.establishment_id = establishments.id")
		switch {
		case len(categoryIDs) > 0 && len(typeIDs) > 0:
			q = q.Where("ec.category_id IN ? OR et.business_type_id IN ?", categoryIDs, typeIDs)
		case len(categoryIDs) > 0:
			q = q.Where("ec.category_id IN ?", categoryIDs)
		default:
			q = q.Where("et.business_type_id IN ?", typeIDs)
		}
	}

	var ests []db_models.Establishment
	if err := q.Find(&ests).Error; err != nil {
		return nil, err
	}
	return ests, nil
}

func (r *establishmentRepository) FindMissingEmbedding(ctx context.Context) ([]db_models.Establishment, error) {
	var ests []db_models.Establishment
	err := r.db.WithContext(ctx).
		Preload("Categories").
		Preload("Types").
		Where("embedding IS NULL").
		Find(&ests).Error
	if err != nil {
		return nil, err
	}
	return ests, nil
}

func (r *establishmentRepository) UpdateEmbedding(ctx context.Context, id uuid.UUID, vec pgvector.Vector) error {
	return r.db.WithContext(ctx).
		Model(&db_models.Establishment{}).
		Where("id = ?", id).
		Update("embedding", vec).Error
}

func (r *establishmentRepository) ClearEmbedding(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).
		Model(&db_models.Establishment{}).
		Where("id = ?", id).
		Update("embedding", nil).Error
}

func (r *establishmentRepository) ReplaceCategories(ctx context.Context, est *db_models.Establishment, categories []db_models.Category) error {
	return r.db.WithContext(ctx).Model(est).Association("Categories").Replace(categories)
}

func (r *establishmentRepository) ReplaceTypes(ctx context.Context, est *db_models.Establishment, types []db_models.BusinessType) error {
	return r.db.WithContext(ctx).Model(est).Association("Types").Replace(types)
}

func (r *establishmentRepository) AddFollower(ctx context.Context, est *db_models.Establishment, user *db_models.User) error {
	return r.db.WithContext(ctx).Model(est).Association("Followers").Append(user)
}

func (r *establishmentRepository) RemoveFollower(ctx context.Context, est *db_models.Establishment, user *db_models.User) error {
	return r.db.WithContext(ctx).Model(est).Association("Followers").Delete(user)
}

func (r *establishmentRepository) AddLike(ctx context.Context, est *db_models.Establishment, user *db_models.User) error {
	return r.db.WithContext(ctx).Model(est).Association("Likes").Append(user)
}

func (r *establishmentRepository) RemoveLike(ctx context.Context, est *db_models.Establishment, user *db_models.User) error {
	return r.db.WithContext(ctx).Model(est).Association("Likes").Delete(user)
}

func (r *establishmentRepository) ListFollowers(ctx context.Context, id uuid.UUID) ([]db_models.User, error) {
	var followers []db_models.User
	err := r.db.WithContext(ctx).
		Model(&db_models.Establishment{BaseModel: db_models.BaseModel{ID: id}}).
		Association("Followers").
		Find(&followers)
	if err != nil {
		return nil, err
	}
	return followers, nil
}
